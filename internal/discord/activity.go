package discord

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// messageCreate rewards chat activity in guild channels.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	b.recordActivity(s, m.Author.ID, domain.ActivityChat)
}

// voiceStateUpdate rewards joining a voice channel. Moves and mute toggles
// do not count.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.VoiceState == nil || v.ChannelID == "" {
		return
	}
	if v.BeforeUpdate != nil && v.BeforeUpdate.ChannelID != "" {
		return
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}
	b.recordActivity(s, v.UserID, domain.ActivityVoice)
}

func (b *Bot) recordActivity(s *discordgo.Session, userID string, source domain.ActivitySource) {
	ctx, cancel := apiContext()
	defer cancel()

	result, err := b.Client.GrantActivity(ctx, userID, source)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return
		}
		slog.Warn(LogMsgActivityFailed, "user_id", userID, "source", source, "error", err)
		return
	}

	if result.DailyReady {
		b.notifyDailyReady(s, userID)
	}
}

// notifyDailyReady DMs the user that their daily reward can be claimed,
// at most once per DailyNotifyWindow.
func (b *Bot) notifyDailyReady(s *discordgo.Session, userID string) {
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()

	if b.dailyNotified.Contains(userID) {
		return
	}

	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		slog.Warn(LogMsgDailyDMFailed, "user_id", userID, "error", err)
		return
	}
	if _, err := s.ChannelMessageSendEmbed(ch.ID, dailyReadyEmbed()); err != nil {
		slog.Warn(LogMsgDailyDMFailed, "user_id", userID, "error", err)
		return
	}
	b.dailyNotified.Add(userID, struct{}{})
}
