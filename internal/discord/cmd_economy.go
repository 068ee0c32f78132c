package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// EconomyCommand posts the economy panel
func EconomyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandEconomy,
		Description: "Open the economy panel",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *APIClient) {
		embed := createEmbed(
			"🏦 Economy",
			"Earn coins by chatting and hanging out in voice. Spend them on spins, shop items and games.",
			ColorGold, "")

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: panelComponents(),
			},
		}); err != nil {
			slog.Error(LogMsgPanelSendFailed, "error", err)
		}
	}

	return cmd, handler
}

func panelComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "👤 Profile", Style: discordgo.SecondaryButton, CustomID: ButtonProfile},
			discordgo.Button{Label: "🎡 Spin", Style: discordgo.PrimaryButton, CustomID: ButtonSpin},
			discordgo.Button{Label: "🛒 Shop", Style: discordgo.PrimaryButton, CustomID: ButtonShop},
			discordgo.Button{Label: "🎒 Inventory", Style: discordgo.SecondaryButton, CustomID: ButtonInventory},
			discordgo.Button{Label: "📅 Daily", Style: discordgo.SuccessButton, CustomID: ButtonClaimDaily},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🃏 Blackjack", Style: discordgo.DangerButton, CustomID: ButtonPlayBlackjack},
			discordgo.Button{Label: "🎰 Roulette", Style: discordgo.DangerButton, CustomID: ButtonPlayRoulette},
		}},
	}
}
