// Command fraction is an exact fraction calculator and prime printer.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/fraction/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fraction/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fraction/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/fraction/internal/adapters/driving/cli"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
	"github.com/custodia-labs/fraction/internal/core/services"
	"github.com/custodia-labs/fraction/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	home, err := file.DefaultDir()
	if err != nil {
		logger.Warn("%v", err)
	}

	configStore := openConfigStore(home)
	historyStore, closeHistory := openHistoryStore(home)
	defer closeHistory()

	settings := services.NewSettingsService(configStore)
	cli.Configure(&cli.Services{
		Calculator: services.NewCalculatorService(historyStore, settings),
		Primes:     services.NewPrimeService(settings),
		History:    services.NewHistoryService(historyStore),
		Settings:   settings,
	})
	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// openConfigStore returns the TOML store, or an in-memory store when the
// config directory is unusable.
func openConfigStore(home string) driven.ConfigStore {
	if home != "" {
		store, err := file.NewConfigStore(home)
		if err == nil {
			return store
		}
		logger.Warn("Using in-memory settings: %v", err)
	}
	return memory.NewConfigStore()
}

// openHistoryStore returns the SQLite history, or an in-memory history when
// the database cannot be opened. The returned func releases the database.
func openHistoryStore(home string) (driven.HistoryStore, func()) {
	if home != "" {
		store, err := sqlite.NewStore(filepath.Join(home, "data"))
		if err == nil {
			return store.HistoryStore(), func() {
				if err := store.Close(); err != nil {
					logger.Warn("Closing history database: %v", err)
				}
			}
		}
		logger.Warn("Using in-memory history: %v", err)
	}
	return memory.NewHistoryStore(), func() {}
}
