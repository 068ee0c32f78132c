package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/blackjack"
	"github.com/osse101/SpinEconomy_Go/internal/bootstrap"
	"github.com/osse101/SpinEconomy_Go/internal/concurrency"
	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/eventlog"
	"github.com/osse101/SpinEconomy_Go/internal/roulette"
	"github.com/osse101/SpinEconomy_Go/internal/scheduler"
	"github.com/osse101/SpinEconomy_Go/internal/server"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
	"github.com/osse101/SpinEconomy_Go/internal/worker"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
	workerCount     = 2
	workerQueueSize = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	stores, err := bootstrap.InitializeStores(startCtx, cfg)
	if err != nil {
		return err
	}

	catalogs, err := bootstrap.LoadCatalogs(startCtx, cfg.CatalogPath)
	if err != nil {
		stores.Close()
		return err
	}

	rng, err := utils.NewSecureSource()
	if err != nil {
		stores.Close()
		return err
	}

	bus, eventLog, err := bootstrap.InitializeEventSystem(stores.EventLog)
	if err != nil {
		stores.Close()
		return err
	}

	economySvc := economy.NewService(
		stores.Accounts,
		concurrency.NewLockManager(),
		catalogs.Shop,
		catalogs.Rewards,
		rng,
		stores.Cooldowns,
		bus,
		cfg.Economy,
	)
	blackjackSvc := blackjack.NewEngine(economySvc, rng, bus, cfg.Games)
	rouletteSvc := roulette.NewService(economySvc, rng, bus, cfg.Games.RouletteMultiplier, cfg.Games.RouletteDefaultBet)
	admin := shop.NewAdmin(catalogs.Shop, catalogs.Rewards, catalogs.File, bus)

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.Games.SessionSweepInterval, worker.NewSessionSweepJob(blackjackSvc))
	sched.Schedule(cfg.EventLog.CleanupInterval, eventlog.NewCleanupJob(eventLog, cfg.EventLog.RetentionDays))

	srv := server.NewServer(
		server.Config{
			Host:           cfg.Host,
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
		},
		server.Services{
			Economy:   economySvc,
			Blackjack: blackjackSvc,
			Roulette:  rouletteSvc,
			Shop:      catalogs.Shop,
			Admin:     admin,
			History:   eventLog,
			Health:    stores.Health,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		Scheduler:        sched,
		WorkerPool:       pool,
		EconomyService:   economySvc,
		BlackjackService: blackjackSvc,
		RouletteService:  rouletteSvc,
		CatalogAdmin:     admin,
		Stores:           stores,
	})
	return runErr
}
