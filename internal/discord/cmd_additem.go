package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// AddItemCommand returns the catalog authoring command
func AddItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minOne := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:                     CommandAddItem,
		Description:              "Add a new item to the shop (Admin only)",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "id",
				Description: "Unique ID for the item",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Display name of the item",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "price",
				Description: "Price in coins",
				Required:    true,
				MinValue:    &minOne,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "type",
				Description: "Type of item",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Spins", Value: string(domain.EffectSpins)},
					{Name: "XP", Value: string(domain.EffectXP)},
					{Name: "Currency", Value: string(domain.EffectCurrency)},
					{Name: "Role - Colors", Value: "role_colors"},
					{Name: "Role - Badges", Value: "role_badges"},
					{Name: "Role - Misc", Value: "role_misc"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Amount/quantity of the item",
				Required:    true,
				MinValue:    &minOne,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Description of the item",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "emoji",
				Description: "Emoji for the item",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "Discord role to give (required for role types)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}
		if !isAdmin(i) {
			respondError(s, i, MsgAdminOnly)
			return
		}

		req := addItemRequest(i.ApplicationCommandData().Options)
		if req.Type.IsRole() && req.RoleID == "" {
			respondError(s, i, MsgRoleMissing)
			return
		}

		ctx, cancel := apiContext()
		defer cancel()

		result, err := client.AddCatalogItem(ctx, req)
		if err != nil {
			respondFriendlyError(s, i, "add item", err)
			return
		}
		sendEmbed(s, i, addItemEmbed(req, result))
	}

	return cmd, handler
}

func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// addItemRequest reads the command options into an authoring request.
func addItemRequest(options []*discordgo.ApplicationCommandInteractionDataOption) shop.AddItemRequest {
	var req shop.AddItemRequest
	for _, opt := range options {
		switch opt.Name {
		case "id":
			req.ID = opt.StringValue()
		case "name":
			req.Name = opt.StringValue()
		case "price":
			req.Price = int(opt.IntValue())
		case "type":
			req.Type = domain.EffectType(opt.StringValue())
		case "quantity":
			req.Quantity = int(opt.IntValue())
		case "description":
			req.Description = opt.StringValue()
		case "emoji":
			req.Emoji = opt.StringValue()
		case "role":
			req.RoleID = fmt.Sprint(opt.Value)
		}
	}
	return req
}

func addItemEmbed(req shop.AddItemRequest, result *shop.AddItemResult) *discordgo.MessageEmbed {
	emoji := itemEmoji(req.Emoji)
	if result.Target == shop.TargetRewards {
		embed := createEmbed("✅ Role Added to Spinner!",
			fmt.Sprintf("The role has been added to the %s category and will now appear in spins!", result.Category),
			ColorSuccess, FooterSpinEconomyAdmin)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Role", Value: fmt.Sprintf("%s <@&%s>", emoji, req.RoleID), Inline: true},
			{Name: "Category", Value: result.Category, Inline: true},
			{Name: "ID", Value: req.ID, Inline: true},
		}
		return embed
	}

	embed := createEmbed("✅ Item Added Successfully!", "", ColorSuccess, FooterSpinEconomyAdmin)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "ID", Value: req.ID, Inline: true},
		{Name: "Name", Value: emoji + " " + req.Name, Inline: true},
		{Name: "Price", Value: formatCoins(req.Price), Inline: true},
		{Name: "Type", Value: string(req.Type), Inline: true},
		{Name: "Quantity", Value: formatNumber(req.Quantity), Inline: true},
		{Name: "Description", Value: req.Description},
	}
	return embed
}
