package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SpinEconomy_Go/internal/handler"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes a slash command interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		RecordCommand()
		h(s, i, client)
	}
}

// RegisterCommands registers or updates commands with Discord. Commands are
// scoped to the configured guild when one is set. Unchanged commands are
// left alone to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands, "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds), "forced", forceUpdate)
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}

	return true
}

// deferResponse acknowledges an interaction with an ephemeral deferred message.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// deferUpdate acknowledges a component interaction that will edit the message it sits on.
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// respondError replaces the deferred response with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	empty := []discordgo.MessageComponent{}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &message,
		Embeds:     &[]*discordgo.MessageEmbed{},
		Components: &empty,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError logs err and shows the user a readable version of it.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	slog.Error(LogMsgActionFailed, "action", action, "error", err)
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API errors to friendly messages
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgGenericError
	}

	switch {
	case apiErr.StatusCode == http.StatusTooManyRequests:
		if apiErr.Message != "" {
			return MsgCooldownActive + "\n" + apiErr.Message
		}
		return MsgCooldownActive
	case apiErr.StatusCode == http.StatusServiceUnavailable:
		return MsgUnavailable
	case apiErr.Message == handler.ErrMsgNotEnoughMoneyError:
		return MsgInsufficientFunds
	case apiErr.Message == handler.ErrMsgAlreadyClaimedError:
		return MsgAlreadyClaimed
	case apiErr.Message == handler.ErrMsgShopItemNotFoundError:
		return MsgItemNotFound
	case apiErr.Message == handler.ErrMsgRoleNotOwnedError:
		return MsgRoleNotOwned
	case apiErr.Message == handler.ErrMsgGameNotFoundError:
		return MsgGameNotFound
	case apiErr.Message == handler.ErrMsgNotYourGameError:
		return MsgNotYourGame
	case apiErr.Message != "":
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}

// sendEmbed replaces the deferred response with an embed and optional components.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}
