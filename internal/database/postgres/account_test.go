package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/SpinEconomy_Go/internal/database"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) func() {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return func() {
		pool.Close()
		terminate()
	}
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestAccountStore_GetUnknownReturnsDefault(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	store := NewAccountStore(testPool)

	acc, err := store.GetAccount(ctx, "pg-unknown")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCurrency, acc.Currency)
	assert.NotNil(t, acc.Inventory)

	var count int
	require.NoError(t, testPool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts WHERE user_id = $1", "pg-unknown").Scan(&count))
	assert.Equal(t, 0, count, "defaults are not persisted on read")
}

func TestAccountStore_SaveRoundTrip(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	store := NewAccountStore(testPool)

	claimed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	acc := domain.NewAccount("pg-user1")
	acc.Username = "alice"
	acc.Currency = 42
	acc.XP = 250
	acc.Spins = 3
	acc.LastDailyClaimAt = &claimed
	acc.Inventory["colors"] = []domain.RewardItem{{ID: "red", Name: "Red", RoleID: "r1"}}
	require.NoError(t, store.SaveAccount(ctx, acc))

	got, err := store.GetAccount(ctx, "pg-user1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 42, got.Currency)
	assert.Equal(t, 250, got.XP)
	assert.Equal(t, 3, got.Spins)
	require.NotNil(t, got.LastDailyClaimAt)
	assert.True(t, claimed.Equal(*got.LastDailyClaimAt))
	assert.Equal(t, acc.Inventory, got.Inventory)

	// Overwrite
	got.Currency = 0
	got.Inventory = nil
	require.NoError(t, store.SaveAccount(ctx, got))
	again, err := store.GetAccount(ctx, "pg-user1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Currency)
	assert.Empty(t, again.Inventory)
}

func TestAccountStore_RejectsNegativeCurrency(t *testing.T) {
	requireDatabase(t)
	store := NewAccountStore(testPool)

	acc := domain.NewAccount("pg-negative")
	acc.Currency = -1
	err := store.SaveAccount(context.Background(), acc)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAccountStore_ConcurrentSaves(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	store := NewAccountStore(testPool)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			acc := domain.NewAccount(fmt.Sprintf("pg-concurrent-%d", n))
			acc.Currency = n
			assert.NoError(t, store.SaveAccount(ctx, acc))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		acc, err := store.GetAccount(ctx, fmt.Sprintf("pg-concurrent-%d", i))
		require.NoError(t, err)
		assert.Equal(t, i, acc.Currency)
	}
}

func TestAccountStore_Ping(t *testing.T) {
	requireDatabase(t)
	assert.NoError(t, NewAccountStore(testPool).Ping(context.Background()))
}

func TestAccountStore_SaveRequiresUserID(t *testing.T) {
	store := NewAccountStore(nil)
	assert.ErrorIs(t, store.SaveAccount(context.Background(), &domain.Account{}), domain.ErrInvalidUserID)
	assert.ErrorIs(t, store.SaveAccount(context.Background(), nil), domain.ErrInvalidUserID)
}
