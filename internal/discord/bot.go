package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	notifyMu      sync.Mutex
	dailyNotified *expirable.LRU[string, struct{}]
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
	APIURL  string
	APIKey  string
}

// New creates a new Discord bot with the economy commands registered
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsDirectMessages

	registry := NewCommandRegistry()
	registry.Register(EconomyCommand())
	registry.Register(AddItemCommand())

	return &Bot{
		Session:       s,
		Client:        NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:         cfg.AppID,
		GuildID:       cfg.GuildID,
		Registry:      registry,
		dailyNotified: expirable.NewLRU[string, struct{}](DailyNotifyCacheSize, nil, DailyNotifyWindow),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.voiceStateUpdate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn(LogMsgSessionCloseFailed, "error", err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(s, i, b.Client)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}
