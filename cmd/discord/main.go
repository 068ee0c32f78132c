package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/SpinEconomy_Go/internal/discord"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.NewConfig(
		getEnv("LOG_LEVEL", "info"),
		getEnv("LOG_FORMAT", "text"),
		"spineconomy-discord",
		getEnv("VERSION", "dev"),
		getEnv("ENVIRONMENT", "dev"),
		false,
	))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	httpServer.Start()
	defer httpServer.Stop()

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered on a previous run keep working.
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the bot configuration from the environment.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	guildID := os.Getenv("DISCORD_GUILD_ID")
	if guildID == "" {
		slog.Warn("DISCORD_GUILD_ID not set, commands will be registered globally")
	}

	apiURL := getEnv("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:   token,
		AppID:   appID,
		GuildID: guildID,
		APIURL:  apiURL,
		APIKey:  apiKey,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
