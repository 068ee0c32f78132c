package economy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/concurrency"
	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/cooldown"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/repository"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
	"github.com/osse101/SpinEconomy_Go/internal/spinner"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// UpdateFunc transforms a loaded account. Returning a nil account with a nil
// error skips the save.
type UpdateFunc func(acc *domain.Account) (*domain.Account, error)

// Preview is the spinner odds plus the batch prices.
type Preview struct {
	Categories []domain.CategoryPreview `json:"categories"`
	SpinCosts  []int                    `json:"spin_costs"`
}

// Service defines the account-facing economy operations
type Service interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GrantActivity(ctx context.Context, userID string, source domain.ActivitySource) (*ActivityResult, error)
	ClaimDaily(ctx context.Context, userID string) (*DailyResult, error)
	DailyStatus(ctx context.Context, userID string) (*DailyStatus, error)
	Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error)
	Spin(ctx context.Context, userID string, count int) (*SpinResult, error)
	Preview(ctx context.Context) *Preview
	ClaimRole(ctx context.Context, userID, roleID string) (*domain.RoleClaim, error)
	ListInventory(ctx context.Context, userID string) ([]domain.InventoryCategory, error)
	Update(ctx context.Context, userID string, fn UpdateFunc) (*domain.Account, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	store     repository.AccountStore
	locks     *concurrency.LockManager
	shop      *shop.Catalog
	rewards   *spinner.Catalog
	rng       utils.RandomSource
	cooldowns cooldown.Service
	publisher *event.Publisher
	cfg       config.EconomyConfig
	now       func() time.Time
}

// NewService creates a new economy service. bus may be nil.
func NewService(
	store repository.AccountStore,
	locks *concurrency.LockManager,
	shopCatalog *shop.Catalog,
	rewards *spinner.Catalog,
	rng utils.RandomSource,
	cooldowns cooldown.Service,
	bus event.Bus,
	cfg config.EconomyConfig,
) Service {
	return &service{
		store:     store,
		locks:     locks,
		shop:      shopCatalog,
		rewards:   rewards,
		rng:       rng,
		cooldowns: cooldowns,
		publisher: event.NewPublisher(bus, event.DefaultPublisherConfig()),
		cfg:       cfg,
		now:       time.Now,
	}
}

// Update runs fn under the user's lock between a load and a save. Nothing is
// saved when fn fails, and a failed save leaves the stored account untouched.
func (s *service) Update(ctx context.Context, userID string, fn UpdateFunc) (*domain.Account, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(userID)
	defer unlock()

	acc, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		log.Error(LogMsgLoadAccountFailed, "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	next, err := fn(acc.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		return acc, nil
	}

	next.UpdatedAt = s.now()
	if err := s.store.SaveAccount(ctx, next); err != nil {
		log.Error(LogMsgSaveAccountFailed, "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	return next, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	acc, err := s.Update(ctx, userID, readOnly)
	if err != nil {
		return nil, err
	}
	profile := acc.Profile()
	return &profile, nil
}

func (s *service) GrantActivity(ctx context.Context, userID string, source domain.ActivitySource) (*ActivityResult, error) {
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidActivity, source)
	}
	log := logger.FromContext(ctx)

	minAmount, maxAmount := s.activityRange(source)
	var result *ActivityResult

	err := s.cooldowns.EnforceCooldown(ctx, userID, cooldown.ActionName(source), func() error {
		amount := utils.RandomInt(s.rng, minAmount, maxAmount)
		acc, err := s.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
			return GrantActivityReward(acc, amount)
		})
		if err != nil {
			return err
		}
		result = &ActivityResult{
			Source:     source,
			Amount:     amount,
			Currency:   acc.Currency,
			DailyReady: DailyStatusAt(acc, s.now()).Ready,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgActivityRewarded, "user_id", userID, "source", source, "amount", result.Amount)
	s.publish(ctx, event.NewActivityRewardedEvent(userID, source, result.Amount))
	return result, nil
}

func (s *service) ClaimDaily(ctx context.Context, userID string) (*DailyResult, error) {
	var result *DailyResult
	_, err := s.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		next, res, err := ClaimDaily(acc, s.now(), s.cfg.DailyReward, s.cfg.DailyXP)
		result = res
		return next, err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgDailyClaimed, "user_id", userID, "reward", result.Reward, "xp", result.XP)
	s.publish(ctx, event.NewDailyClaimedEvent(userID, result.Reward, result.XP))
	return result, nil
}

func (s *service) DailyStatus(ctx context.Context, userID string) (*DailyStatus, error) {
	acc, err := s.Update(ctx, userID, readOnly)
	if err != nil {
		return nil, err
	}
	status := DailyStatusAt(acc, s.now())
	return &status, nil
}

func (s *service) Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	item, err := s.shop.Get(itemID)
	if err != nil {
		return nil, err
	}

	var result *domain.PurchaseResult
	_, err = s.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		next, res, err := Purchase(acc, item)
		result = res
		return next, err
	})
	if err != nil {
		return nil, err
	}

	if result.Warning != "" {
		log.Warn(LogMsgUnknownEffectPurchased, "user_id", userID, "item_id", item.ID, "type", item.Type)
	}
	log.Info(LogMsgItemPurchased, "user_id", userID, "item_id", item.ID, "price", result.Price)
	s.publish(ctx, event.NewItemPurchasedEvent(userID, result))
	return result, nil
}

// Spin draws a batch of count rewards. Owned spins are consumed before
// currency. An empty catalog fails the whole batch with nothing charged.
func (s *service) Spin(ctx context.Context, userID string, count int) (*SpinResult, error) {
	cost, ok := s.cfg.SpinCost(count)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSpinCount, count)
	}

	var result *SpinResult
	_, err := s.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		free, charge := SpinCharge(cost, count, acc.Spins)
		if acc.Currency < charge {
			return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, charge, acc.Currency)
		}

		results, err := spinner.DrawBatch(s.rewards.Snapshot(), s.rng, count)
		if err != nil {
			return nil, err
		}

		next, err := SpendSpins(acc, free)
		if err != nil {
			return nil, err
		}
		next, err = ApplySpinResults(next, results, charge)
		if err != nil {
			return nil, err
		}

		result = &SpinResult{
			Results:   results,
			Cost:      charge,
			SpinsUsed: free,
			Currency:  next.Currency,
			Spins:     next.Spins,
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSpinCompleted, "user_id", userID, "count", count, "cost", result.Cost, "spins_used", result.SpinsUsed)
	s.publish(ctx, event.NewSpinCompletedEvent(userID, result.Cost, result.SpinsUsed, result.Results))
	return result, nil
}

func (s *service) Preview(_ context.Context) *Preview {
	costs := make([]int, 0, config.MaxSpinBatch)
	for n := 1; n <= config.MaxSpinBatch; n++ {
		cost, _ := s.cfg.SpinCost(n)
		costs = append(costs, cost)
	}
	return &Preview{
		Categories: spinner.Preview(s.rewards.Snapshot()),
		SpinCosts:  costs,
	}
}

func (s *service) ClaimRole(ctx context.Context, userID, roleID string) (*domain.RoleClaim, error) {
	acc, err := s.Update(ctx, userID, readOnly)
	if err != nil {
		return nil, err
	}

	claim, err := ResolveRoleClaim(acc, roleID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRoleClaimIssued, "user_id", userID, "role_id", roleID)
	s.publish(ctx, event.NewRoleClaimedEvent(*claim))
	return claim, nil
}

func (s *service) ListInventory(ctx context.Context, userID string) ([]domain.InventoryCategory, error) {
	acc, err := s.Update(ctx, userID, readOnly)
	if err != nil {
		return nil, err
	}
	return ListInventory(acc, s.rewards.Categories()), nil
}

// Shutdown waits for in-flight event publishing
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgEconomyShuttingDown)
	return s.publisher.Shutdown(ctx)
}

func (s *service) activityRange(source domain.ActivitySource) (int, int) {
	if source == domain.ActivityVoice {
		return s.cfg.VoiceMin, s.cfg.VoiceMax
	}
	return s.cfg.ChatMin, s.cfg.ChatMax
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	s.publisher.Publish(ctx, evt)
}

func readOnly(*domain.Account) (*domain.Account, error) {
	return nil, nil
}

// storeError makes sure infrastructure failures surface as ErrStoreUnavailable.
func storeError(err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
