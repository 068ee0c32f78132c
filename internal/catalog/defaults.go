package catalog

import "github.com/osse101/SpinEconomy_Go/internal/domain"

// Defaults returns the catalogs a fresh install starts with. Role references
// are empty until an operator fills them in for their server.
func Defaults() File {
	return File{
		Version: FileVersion,
		Shop: []domain.ShopItem{
			{ID: "spin_1", Name: "Single Spin", Description: "Get 1 extra spin", Price: 50, Type: domain.EffectSpins, Quantity: 1, Emoji: "🎲"},
			{ID: "spin_5", Name: "5 Spins Pack", Description: "Get 5 extra spins", Price: 200, Type: domain.EffectSpins, Quantity: 5, Emoji: "🎰"},
			{ID: "xp_boost", Name: "XP Boost", Description: "Gain 100 XP instantly", Price: 100, Type: domain.EffectXP, Quantity: 100, Emoji: "⭐"},
			{ID: "currency_pack", Name: "Currency Pack", Description: "Get 200 coins", Price: 150, Type: domain.EffectCurrency, Quantity: 200, Emoji: "💰"},
		},
		Rewards: []domain.RewardCategory{
			{
				Key: "colors", Name: "Colors", Rarity: "common", Weight: 70,
				Items: []domain.RewardItem{
					{ID: "red", Name: "Red", Emoji: "🔴"},
					{ID: "blue", Name: "Blue", Emoji: "🔵"},
					{ID: "green", Name: "Green", Emoji: "🟢"},
					{ID: "purple", Name: "Purple", Emoji: "🟣"},
					{ID: "yellow", Name: "Yellow", Emoji: "🟡"},
				},
			},
			{
				Key: "badges", Name: "Badges", Rarity: "rare", Weight: 0.25,
				Items: []domain.RewardItem{
					{ID: "vip", Name: "VIP", Emoji: "💎"},
					{ID: "legend", Name: "Legend", Emoji: "🏆"},
					{ID: "champion", Name: "Champion", Emoji: "🥇"},
				},
			},
			{
				Key: "misc", Name: "Miscellaneous", Rarity: "epic", Weight: 0.15,
				Items: []domain.RewardItem{
					{ID: "special_user", Name: "Special User", Emoji: "✨"},
					{ID: "early_supporter", Name: "Early Supporter", Emoji: "🌟"},
					{ID: "currency_master", Name: "Currency Master", Emoji: "💰"},
				},
			},
		},
	}
}
