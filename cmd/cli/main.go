package main

import (
	"os"
	"strings"

	"github.com/nimasrn/ngo-backend/internal/config"
	"github.com/nimasrn/ngo-backend/internal/repository"
	"github.com/nimasrn/ngo-backend/migrations"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"github.com/nimasrn/ngo-backend/pkg/logger"
)

// main applies the schema and exits.
//
//	cli --env=.env
func main() {
	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if cfg.DBDriver == db.DriverPostgres {
		if err = db.Migrate(cfg.WriteDB(), migrations.FS); err != nil {
			logger.Error("migration: error running migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migration: done", "driver", cfg.DBDriver)
		return
	}

	store, err := db.CreateReadWrite(cfg.WriteDB(), cfg.WriteDB(), cfg.DBDebug)
	if err != nil {
		logger.Error("migration: failed connecting to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err = store.AutoMigrate(repository.Entities()...); err != nil {
		logger.Error("migration: auto-migrate failed", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	logger.Info("migration: done", "driver", cfg.DBDriver)
}

func getEnvPath() string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, "--env=") {
			path := strings.TrimPrefix(v, "--env=")
			if _, err := os.Stat(path); err != nil {
				logger.Error("failed to open the passed env file", "error", err)
				return ""
			}
			return path
		}
	}
	if _, err := os.Stat(".env"); err != nil {
		return ""
	}
	return ".env"
}
