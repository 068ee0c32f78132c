package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Economy event types
const (
	ActivityRewarded Type = "account.activity_rewarded"
	DailyClaimed     Type = "account.daily_claimed"
	ItemPurchased    Type = "shop.item_purchased"
	SpinCompleted    Type = "spinner.spin_completed"
	RoleClaimed      Type = "account.role_claimed"
	GameSettled      Type = "game.settled"
	CatalogItemAdded Type = "catalog.item_added"
)

// AllTypes lists every event type the economy publishes.
var AllTypes = []Type{
	ActivityRewarded,
	DailyClaimed,
	ItemPurchased,
	SpinCompleted,
	RoleClaimed,
	GameSettled,
	CatalogItemAdded,
}

// Typed event payloads for type safety

// ActivityRewardedPayloadV1 is published when chat or voice activity pays out
type ActivityRewardedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Source    string `json:"source"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// DailyClaimedPayloadV1 is published after a successful daily claim
type DailyClaimedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Currency  int    `json:"currency"`
	XP        int    `json:"xp"`
	Timestamp int64  `json:"timestamp"`
}

// ItemPurchasedPayloadV1 is published after a shop purchase
type ItemPurchasedPayloadV1 struct {
	UserID    string `json:"user_id"`
	ItemID    string `json:"item_id"`
	Effect    string `json:"effect"`
	Price     int    `json:"price"`
	Warning   string `json:"warning,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SpinCompletedPayloadV1 is published after a spin batch is applied
type SpinCompletedPayloadV1 struct {
	UserID    string                `json:"user_id"`
	Cost      int                   `json:"cost"`
	SpinsUsed int                   `json:"spins_used"`
	Rewards   []domain.RewardResult `json:"rewards"`
	Timestamp int64                 `json:"timestamp"`
}

// RoleClaimedPayloadV1 is published when a role claim token is issued
type RoleClaimedPayloadV1 struct {
	UserID    string `json:"user_id"`
	RoleID    string `json:"role_id"`
	Category  string `json:"category"`
	Timestamp int64  `json:"timestamp"`
}

// GameSettledPayloadV1 is published when a game round changes a balance
type GameSettledPayloadV1 struct {
	UserID    string `json:"user_id"`
	Game      string `json:"game"`
	Outcome   string `json:"outcome"`
	Delta     int    `json:"delta"`
	Timestamp int64  `json:"timestamp"`
}

// CatalogItemAddedPayloadV1 is published after an admin adds a catalog entry
type CatalogItemAddedPayloadV1 struct {
	ItemID    string `json:"item_id"`
	Target    string `json:"target"`
	Category  string `json:"category,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewActivityRewardedEvent creates an activity reward event
func NewActivityRewardedEvent(userID string, source domain.ActivitySource, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActivityRewarded,
		Payload: ActivityRewardedPayloadV1{
			UserID:    userID,
			Source:    string(source),
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDailyClaimedEvent creates a daily claim event
func NewDailyClaimedEvent(userID string, currency, xp int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyClaimed,
		Payload: DailyClaimedPayloadV1{
			UserID:    userID,
			Currency:  currency,
			XP:        xp,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemPurchasedEvent creates a purchase event
func NewItemPurchasedEvent(userID string, result *domain.PurchaseResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: ItemPurchasedPayloadV1{
			UserID:    userID,
			ItemID:    result.Item.ID,
			Effect:    string(result.Item.Type),
			Price:     result.Price,
			Warning:   result.Warning,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSpinCompletedEvent creates a spin event
func NewSpinCompletedEvent(userID string, cost, spinsUsed int, rewards []domain.RewardResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: SpinCompletedPayloadV1{
			UserID:    userID,
			Cost:      cost,
			SpinsUsed: spinsUsed,
			Rewards:   rewards,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRoleClaimedEvent creates a role claim event
func NewRoleClaimedEvent(claim domain.RoleClaim) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoleClaimed,
		Payload: RoleClaimedPayloadV1{
			UserID:    claim.UserID,
			RoleID:    claim.RoleID,
			Category:  claim.CategoryKey,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewGameSettledEvent creates a game settlement event
func NewGameSettledEvent(userID, game, outcome string, delta int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameSettled,
		Payload: GameSettledPayloadV1{
			UserID:    userID,
			Game:      game,
			Outcome:   outcome,
			Delta:     delta,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyGame: game,
		},
	}
}

// NewCatalogItemAddedEvent creates a catalog authoring event
func NewCatalogItemAddedEvent(itemID, target, category string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogItemAdded,
		Payload: CatalogItemAddedPayloadV1{
			ItemID:    itemID,
			Target:    target,
			Category:  category,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// DeliveryError lists the subscribers that failed for one event. Retrying
// only Failed leaves subscribers that already handled the event alone.
type DeliveryError struct {
	Type   Type
	Failed []Handler
	Errs   []error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf(ErrMsgHandlerErrorFormat, len(e.Errs), e.Type, e.Errs)
}

func (e *DeliveryError) Unwrap() []error {
	return e.Errs
}

// Publish runs every subscriber synchronously. Failures come back as a
// *DeliveryError.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	return deliverTo(ctx, event, handlers)
}

func deliverTo(ctx context.Context, event Event, handlers []Handler) error {
	var failed *DeliveryError
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			if failed == nil {
				failed = &DeliveryError{Type: event.Type}
			}
			failed.Failed = append(failed.Failed, handler)
			failed.Errs = append(failed.Errs, err)
		}
	}

	if failed != nil {
		return failed
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
