package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SpinEconomy_Go/internal/blackjack"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/roulette"
	"github.com/osse101/SpinEconomy_Go/internal/scheduler"
	"github.com/osse101/SpinEconomy_Go/internal/server"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
	"github.com/osse101/SpinEconomy_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any field may be nil.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	WorkerPool       *worker.Pool
	EconomyService   economy.Service
	BlackjackService blackjack.Service
	RouletteService  roulette.Service
	CatalogAdmin     *shop.Admin
	Stores           *Stores
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new sweeps)
// 3. Application services (flush pending events)
// 4. Stores (close connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	// Game engines settle through the economy service, so they go first
	shutdownService(ctx, ServiceNameBlackjack, components.BlackjackService)
	shutdownService(ctx, ServiceNameRoulette, components.RouletteService)
	shutdownService(ctx, ServiceNameEconomy, components.EconomyService)
	if components.CatalogAdmin != nil {
		shutdownService(ctx, ServiceNameCatalogAdmin, components.CatalogAdmin)
	}

	if components.Stores != nil {
		components.Stores.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// shutdownService shuts down a service and logs any errors.
func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if service == nil {
		return
	}
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
