package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinEconomy_Go/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not an API error", errors.New("dial tcp: refused"), MsgGenericError},
		{"insufficient funds", &APIError{StatusCode: http.StatusBadRequest, Message: handler.ErrMsgNotEnoughMoneyError}, MsgInsufficientFunds},
		{"wrapped insufficient funds", fmt.Errorf("max retries exceeded: %w", &APIError{StatusCode: http.StatusBadRequest, Message: handler.ErrMsgNotEnoughMoneyError}), MsgInsufficientFunds},
		{"already claimed", &APIError{StatusCode: http.StatusConflict, Message: handler.ErrMsgAlreadyClaimedError}, MsgAlreadyClaimed},
		{"game not found", &APIError{StatusCode: http.StatusNotFound, Message: handler.ErrMsgGameNotFoundError}, MsgGameNotFound},
		{"not your game", &APIError{StatusCode: http.StatusForbidden, Message: handler.ErrMsgNotYourGameError}, MsgNotYourGame},
		{"cooldown with detail", &APIError{StatusCode: http.StatusTooManyRequests, Message: "try again in 30s"}, MsgCooldownActive + "\ntry again in 30s"},
		{"cooldown bare", &APIError{StatusCode: http.StatusTooManyRequests}, MsgCooldownActive},
		{"store down", &APIError{StatusCode: http.StatusServiceUnavailable, Message: "try again"}, MsgUnavailable},
		{"other message passes through", &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid bet type"}, "❌ Invalid bet type"},
		{"no message", &APIError{StatusCode: http.StatusTeapot}, MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestCommandsEqual(t *testing.T) {
	economyCmd, _ := EconomyCommand()
	addItemCmd, _ := AddItemCommand()
	changed, _ := AddItemCommand()
	changed.Options[0].Description = "something else"

	tests := []struct {
		name     string
		existing []*discordgo.ApplicationCommand
		desired  []*discordgo.ApplicationCommand
		want     bool
	}{
		// CASE 1: BEST CASE
		{"same set", []*discordgo.ApplicationCommand{economyCmd, addItemCmd}, []*discordgo.ApplicationCommand{addItemCmd, economyCmd}, true},
		// CASE 2: drift triggers a re-register
		{"missing command", []*discordgo.ApplicationCommand{economyCmd}, []*discordgo.ApplicationCommand{economyCmd, addItemCmd}, false},
		{"changed option", []*discordgo.ApplicationCommand{economyCmd, changed}, []*discordgo.ApplicationCommand{economyCmd, addItemCmd}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandsEqual(tt.existing, tt.desired))
		})
	}
}

func TestCommandRegistry_Handle(t *testing.T) {
	registry := NewCommandRegistry()
	cmd := &discordgo.ApplicationCommand{Name: "ping", Description: "ping"}
	calls := 0
	registry.Register(cmd, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		calls++
	})
	before := commandCounter.Load()

	registry.Handle(nil, commandInteraction("ping", 0), nil)
	registry.Handle(nil, commandInteraction("unknown", 0), nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, before+1, commandCounter.Load())
	assert.NotZero(t, lastCommandNano.Load())
}

func TestEconomyCommand_PostsPanel(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handle := EconomyCommand()

	handle(ctx.Session, commandInteraction(CommandEconomy, 0), ctx.APIClient)

	assert.True(t, ctx.HasCall(http.MethodPost, "/interactions/interaction-1/token-1/callback"))
	ids := []string{}
	for _, row := range panelComponents() {
		for _, c := range row.(discordgo.ActionsRow).Components {
			ids = append(ids, c.(discordgo.Button).CustomID)
		}
	}
	assert.Equal(t, []string{
		ButtonProfile, ButtonSpin, ButtonShop, ButtonInventory, ButtonClaimDaily,
		ButtonPlayBlackjack, ButtonPlayRoulette,
	}, ids)
}
