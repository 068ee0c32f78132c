package cooldown

import (
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case ActionName(domain.ActivityChat):
		return DefaultChatCooldown
	case ActionName(domain.ActivityVoice):
		return DefaultVoiceCooldown
	default:
		return DefaultCooldownDuration
	}
}

// ActionName is the cooldown key of an activity source.
func ActionName(source domain.ActivitySource) string {
	return ActionPrefixActivity + string(source)
}
