package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// handleComponent routes button and select menu interactions by custom ID.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	id := data.CustomID

	switch {
	case id == ButtonProfile:
		b.showProfile(s, i)
	case id == ButtonSpin:
		b.showSpinMenu(s, i)
	case id == ButtonShop:
		b.showShop(s, i)
	case id == ButtonInventory:
		b.showInventory(s, i)
	case id == ButtonClaimDaily:
		b.claimDaily(s, i)
	case id == ButtonPlayBlackjack:
		b.startBlackjack(s, i)
	case id == ButtonPlayRoulette:
		b.showRouletteMenu(s, i)
	case id == SelectShop:
		if len(data.Values) == 0 {
			return
		}
		b.purchase(s, i, data.Values[0])
	case strings.HasPrefix(id, PrefixSpin):
		b.spin(s, i, strings.TrimPrefix(id, PrefixSpin))
	case strings.HasPrefix(id, PrefixClaimRole):
		b.claimRole(s, i, strings.TrimPrefix(id, PrefixClaimRole))
	case strings.HasPrefix(id, PrefixBJHit):
		b.blackjackMove(s, i, strings.TrimPrefix(id, PrefixBJHit), false)
	case strings.HasPrefix(id, PrefixBJStand):
		b.blackjackMove(s, i, strings.TrimPrefix(id, PrefixBJStand), true)
	case strings.HasPrefix(id, PrefixRoulette):
		b.playRoulette(s, i, strings.TrimPrefix(id, PrefixRoulette))
	default:
		slog.Warn(LogMsgUnknownComponent, "custom_id", id)
	}
}

func apiContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), APIRequestTimeout)
}

func (b *Bot) showProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	profile, err := b.Client.GetProfile(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "profile", err)
		return
	}
	sendEmbed(s, i, profileEmbed(user.Username, profile))
}

func (b *Bot) showSpinMenu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	preview, err := b.Client.GetRewardPreview(ctx)
	if err != nil {
		respondFriendlyError(s, i, "spin preview", err)
		return
	}
	sendEmbed(s, i, previewEmbed(preview), spinButtons(preview.SpinCosts))
}

func spinButtons(costs []int) discordgo.ActionsRow {
	row := discordgo.ActionsRow{}
	for n, cost := range costs {
		if n >= MaxSpinButtons {
			break
		}
		row.Components = append(row.Components, discordgo.Button{
			Label:    fmt.Sprintf("Spin x%d (%s)", n+1, formatNumber(cost)),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("%s%d", PrefixSpin, n+1),
		})
	}
	return row
}

func (b *Bot) spin(s *discordgo.Session, i *discordgo.InteractionCreate, payload string) {
	count, err := strconv.Atoi(payload)
	if err != nil || count < 1 || count > MaxSpinButtons {
		slog.Warn(LogMsgUnknownComponent, "custom_id", PrefixSpin+payload)
		return
	}
	if !deferUpdate(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	result, err := b.Client.Spin(ctx, user.ID, count)
	if err != nil {
		respondFriendlyError(s, i, "spin", err)
		return
	}
	sendEmbed(s, i, spinResultEmbed(result))
}

func (b *Bot) showShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	items, err := b.Client.ListShop(ctx)
	if err != nil {
		respondFriendlyError(s, i, "shop", err)
		return
	}
	if len(items) == 0 {
		sendEmbed(s, i, shopEmbed(items))
		return
	}
	sendEmbed(s, i, shopEmbed(items), shopSelect(items))
}

func shopSelect(items []domain.ShopItem) discordgo.ActionsRow {
	options := make([]discordgo.SelectMenuOption, 0, len(items))
	for _, item := range items {
		if len(options) >= MaxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("%s %s (%s)", itemEmoji(item.Emoji), item.Name, formatNumber(item.Price)),
			Value:       item.ID,
			Description: truncate(item.Description, 100),
		})
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			MenuType:    discordgo.StringSelectMenu,
			CustomID:    SelectShop,
			Placeholder: "Choose an item to buy",
			Options:     options,
		},
	}}
}

func (b *Bot) purchase(s *discordgo.Session, i *discordgo.InteractionCreate, itemID string) {
	if !deferUpdate(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	result, err := b.Client.Purchase(ctx, user.ID, itemID)
	if err != nil {
		respondFriendlyError(s, i, "purchase", err)
		return
	}
	sendEmbed(s, i, purchaseEmbed(result))
}

func (b *Bot) showInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	inv, err := b.Client.GetInventory(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "inventory", err)
		return
	}

	row := claimButtons(inv)
	if len(row.Components) == 0 {
		sendEmbed(s, i, inventoryEmbed(inv))
		return
	}
	sendEmbed(s, i, inventoryEmbed(inv), row)
}

// claimButtons offers one claim button per distinct role, capped at MaxClaimButtons.
func claimButtons(inv *InventoryResponse) discordgo.ActionsRow {
	row := discordgo.ActionsRow{}
	seen := make(map[string]bool)
	for _, cat := range inv.Categories {
		for _, item := range cat.Items {
			if item.RoleID == "" || seen[item.RoleID] {
				continue
			}
			if len(row.Components) >= MaxClaimButtons {
				return row
			}
			seen[item.RoleID] = true
			row.Components = append(row.Components, discordgo.Button{
				Label:    truncate(itemEmoji(item.Emoji)+" "+item.Name, 80),
				Style:    discordgo.SuccessButton,
				CustomID: PrefixClaimRole + item.RoleID,
			})
		}
	}
	return row
}

func (b *Bot) claimRole(s *discordgo.Session, i *discordgo.InteractionCreate, roleID string) {
	if !deferResponse(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}
	if i.GuildID == "" {
		respondError(s, i, MsgGuildOnly)
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	claim, err := b.Client.ClaimRole(ctx, user.ID, roleID)
	if err != nil {
		respondFriendlyError(s, i, "claim role", err)
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, user.ID, claim.RoleID); err != nil {
		slog.Error(LogMsgRoleGrantFailed, "user_id", user.ID, "role_id", claim.RoleID, "error", err)
		respondError(s, i, MsgRoleGrantFailed)
		return
	}

	desc := fmt.Sprintf("You equipped %s **%s**.", itemEmoji(claim.Item.Emoji), claim.Item.Name)
	sendEmbed(s, i, createEmbed("🎭 Role Claimed", desc, ColorSuccess, ""))
}

func (b *Bot) claimDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	result, err := b.Client.ClaimDaily(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "daily", err)
		return
	}
	sendEmbed(s, i, dailyEmbed(result))
}

func (b *Bot) startBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	view, err := b.Client.StartBlackjack(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "blackjack", err)
		return
	}
	sendBlackjack(s, i, view)
}

func (b *Bot) blackjackMove(s *discordgo.Session, i *discordgo.InteractionCreate, gameID string, stand bool) {
	if !deferUpdate(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	var view *domain.BlackjackView
	var err error
	if stand {
		view, err = b.Client.BlackjackStand(ctx, user.ID, gameID)
	} else {
		view, err = b.Client.BlackjackHit(ctx, user.ID, gameID)
	}
	if err != nil {
		respondFriendlyError(s, i, "blackjack move", err)
		return
	}
	sendBlackjack(s, i, view)
}

// sendBlackjack shows the hand, with Hit/Stand buttons while it is still live.
func sendBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate, view *domain.BlackjackView) {
	if view.State == domain.StateSettled {
		sendEmbed(s, i, blackjackEmbed(view))
		return
	}
	sendEmbed(s, i, blackjackEmbed(view), blackjackButtons(view.GameID))
}

func blackjackButtons(gameID string) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Hit", Style: discordgo.PrimaryButton, CustomID: PrefixBJHit + gameID},
		discordgo.Button{Label: "Stand", Style: discordgo.SecondaryButton, CustomID: PrefixBJStand + gameID},
	}}
}

func (b *Bot) showRouletteMenu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}
	sendEmbed(s, i, rouletteMenuEmbed(), rouletteButtons(DefaultRouletteAmount))
}

func rouletteButtons(amount int) discordgo.ActionsRow {
	button := func(bet domain.RouletteBet, style discordgo.ButtonStyle) discordgo.Button {
		return discordgo.Button{
			Label:    fmt.Sprintf("%s (%d)", titleCase.String(string(bet)), amount),
			Style:    style,
			CustomID: fmt.Sprintf("%s%s_%d", PrefixRoulette, bet, amount),
		}
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		button(domain.BetRed, discordgo.DangerButton),
		button(domain.BetBlack, discordgo.SecondaryButton),
		button(domain.BetOdd, discordgo.PrimaryButton),
		button(domain.BetEven, discordgo.PrimaryButton),
	}}
}

// parseRouletteID splits a "<bet>_<amount>" payload.
func parseRouletteID(payload string) (domain.RouletteBet, int, error) {
	betPart, amountPart, ok := strings.Cut(payload, "_")
	if !ok {
		return "", 0, fmt.Errorf("malformed roulette id %q", payload)
	}
	bet := domain.RouletteBet(betPart)
	if !bet.IsValid() {
		return "", 0, fmt.Errorf("unknown bet type %q", betPart)
	}
	amount, err := strconv.Atoi(amountPart)
	if err != nil || amount < 1 {
		return "", 0, fmt.Errorf("invalid amount %q", amountPart)
	}
	return bet, amount, nil
}

func (b *Bot) playRoulette(s *discordgo.Session, i *discordgo.InteractionCreate, payload string) {
	bet, amount, err := parseRouletteID(payload)
	if err != nil {
		slog.Warn(LogMsgUnknownComponent, "custom_id", PrefixRoulette+payload, "error", err)
		return
	}
	if !deferUpdate(s, i) {
		return
	}
	user := getInteractionUser(i)
	if user == nil {
		return
	}

	ctx, cancel := apiContext()
	defer cancel()

	result, err := b.Client.PlayRoulette(ctx, user.ID, bet, amount)
	if err != nil {
		respondFriendlyError(s, i, "roulette", err)
		return
	}
	sendEmbed(s, i, rouletteResultEmbed(result))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
