package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
)

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatCoins renders an amount with thousands separators, e.g. "1,250 coins"
func formatCoins(n int) string {
	return printer.Sprintf("%d coins", n)
}

func formatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// formatHand renders cards with suit glyphs, e.g. "A♠ 10♥"
func formatHand(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// createEmbed creates a standard embed; an empty footer defaults to FooterSpinEconomy
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterSpinEconomy
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

func profileEmbed(username string, p *domain.Profile) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("%s's Profile", username), "", ColorInfo, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "💰 Coins", Value: formatNumber(p.Currency), Inline: true},
		{Name: "⭐ Level", Value: fmt.Sprintf("%d (%s XP to next)", p.Level, formatNumber(p.XPToNextLevel)), Inline: true},
		{Name: "🎡 Spins", Value: formatNumber(p.Spins), Inline: true},
		{Name: "🎭 Roles Won", Value: formatNumber(p.InventoryCount), Inline: true},
	}
	return embed
}

func dailyEmbed(r *economy.DailyResult) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("You claimed %s and %s XP.", formatCoins(r.Reward), formatNumber(r.XP))
	embed := createEmbed("📅 Daily Reward", desc, ColorSuccess, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: formatCoins(r.Currency), Inline: true},
		{Name: "⭐ Level", Value: formatNumber(r.Level), Inline: true},
		{Name: "Next Claim", Value: fmt.Sprintf("<t:%d:R>", r.NextClaimAt.Unix()), Inline: true},
	}
	return embed
}

func dailyReadyEmbed() *discordgo.MessageEmbed {
	return createEmbed("📅 Daily Reward Ready", "Your daily reward is waiting. Open the economy panel and hit **Daily** to claim it!", ColorGold, "")
}

func previewEmbed(p *economy.Preview) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, c := range p.Categories {
		fmt.Fprintf(&sb, "**%s** (%s) · %s · %d roles\n", c.Name, titleCase.String(c.Rarity), c.Percentage, c.ItemCount)
	}
	embed := createEmbed("🎡 Role Spinner", sb.String(), ColorGold, "")
	for n, cost := range p.SpinCosts {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("x%d", n+1),
			Value:  formatCoins(cost),
			Inline: true,
		})
	}
	return embed
}

func spinResultEmbed(r *economy.SpinResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, res := range r.Results {
		emoji := res.Item.Emoji
		if emoji == "" {
			emoji = "🎭"
		}
		fmt.Fprintf(&sb, "%s **%s** · %s\n", emoji, res.Item.Name, res.CategoryName)
	}
	if len(r.Results) == 0 {
		sb.WriteString("The wheel came up empty.")
	}

	embed := createEmbed("🎉 Spin Results", sb.String(), ColorSuccess, "")
	paid := "Free spins used: " + formatNumber(r.SpinsUsed)
	if r.Cost > 0 {
		paid = "Paid " + formatCoins(r.Cost)
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Cost", Value: paid, Inline: true},
		{Name: "Balance", Value: formatCoins(r.Currency), Inline: true},
	}
	return embed
}

func shopEmbed(items []domain.ShopItem) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%s **%s** · %s\n%s\n", itemEmoji(item.Emoji), item.Name, formatCoins(item.Price), item.Description)
	}
	if len(items) == 0 {
		sb.WriteString("The shop is empty.")
	}
	return createEmbed("🛒 Shop", sb.String(), ColorInfo, "")
}

func purchaseEmbed(r *domain.PurchaseResult) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("You bought %s **%s** for %s.", itemEmoji(r.Item.Emoji), r.Item.Name, formatCoins(r.Price))
	if r.Warning != "" {
		desc += "\n⚠️ " + r.Warning
	}
	embed := createEmbed("✅ Purchase Complete", desc, ColorSuccess, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: formatCoins(r.CurrencyBalance), Inline: true},
	}
	return embed
}

func inventoryEmbed(inv *InventoryResponse) *discordgo.MessageEmbed {
	embed := createEmbed("🎒 Your Roles", "", ColorInfo, "")
	for _, cat := range inv.Categories {
		names := make([]string, len(cat.Items))
		for i, item := range cat.Items {
			names[i] = itemEmoji(item.Emoji) + " " + item.Name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%d)", cat.Name, len(cat.Items)),
			Value: strings.Join(names, "\n"),
		})
	}
	if len(embed.Fields) == 0 {
		embed.Description = "You have not won any roles yet. Spin the wheel!"
	}
	return embed
}

func blackjackEmbed(v *domain.BlackjackView) *discordgo.MessageEmbed {
	settled := v.State == domain.StateSettled

	dealerName := "Dealer's Hand"
	dealerValue := formatHand(v.DealerHand) + " ?"
	if settled {
		dealerName = fmt.Sprintf("Dealer's Hand (%d)", v.DealerValue)
		dealerValue = formatHand(v.DealerHand)
	}

	color := ColorInfo
	desc := ""
	if settled {
		switch {
		case v.Outcome.PlayerWon():
			color = ColorSuccess
			desc = "You win " + formatCoins(v.Payout) + "!"
			if v.Natural {
				desc = "Blackjack! " + desc
			}
			if v.Outcome == domain.OutcomeDealerBust {
				desc = "Dealer busts! " + desc
			}
		case v.Outcome == domain.OutcomePush:
			color = ColorPush
			desc = "It's a tie!"
		case v.Outcome == domain.OutcomePlayerBust:
			color = ColorLoss
			desc = "Bust! You lose " + formatCoins(-v.Payout) + "."
		default:
			color = ColorLoss
			desc = "You lose " + formatCoins(-v.Payout) + "."
		}
		desc += "\nBalance: " + formatCoins(v.Balance)
	}

	embed := createEmbed("🃏 Blackjack", desc, color, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: fmt.Sprintf("Your Hand (%d)", v.PlayerValue), Value: formatHand(v.PlayerHand)},
		{Name: dealerName, Value: dealerValue},
	}
	return embed
}

func rouletteMenuEmbed() *discordgo.MessageEmbed {
	embed := createEmbed("🎰 Roulette", "Choose your bet! Zero is green and loses every bet.", ColorCasino, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Red/Black", Value: "Pays the table multiplier", Inline: true},
		{Name: "Odd/Even", Value: "Pays the table multiplier", Inline: true},
		{Name: "Stake", Value: formatCoins(DefaultRouletteAmount), Inline: true},
	}
	return embed
}

func rouletteResultEmbed(r *domain.RouletteResult) *discordgo.MessageEmbed {
	color := ColorLoss
	outcome := "Lost " + formatCoins(r.Amount)
	if r.Won {
		color = ColorSuccess
		outcome = "Won " + formatCoins(r.Delta) + "!"
	}
	desc := fmt.Sprintf("The ball landed on **%d** (%s)", r.Number, titleCase.String(string(r.Color)))
	embed := createEmbed("🎰 Roulette Result", desc, color, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Your Bet", Value: fmt.Sprintf("%s · %s", r.BetType, formatCoins(r.Amount)), Inline: true},
		{Name: "Result", Value: outcome, Inline: true},
		{Name: "New Balance", Value: formatCoins(r.Balance), Inline: true},
	}
	return embed
}

func itemEmoji(emoji string) string {
	if emoji == "" {
		return domain.DefaultShopEmoji
	}
	return emoji
}
