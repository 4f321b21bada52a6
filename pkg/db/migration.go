package db

import (
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Migrate applies the goose migrations found in migrations to the postgres
// database described by cfg.
func Migrate(cfg Config, migrations fs.FS) error {
	if cfg.Driver != "" && cfg.Driver != DriverPostgres {
		return errors.Errorf("goose migrations target postgres, got driver %q", cfg.Driver)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(logger.GetLogger().Named("goose"))
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	sqlDB, err := newSqlConnection(cfg)
	if err != nil {
		return errors.Wrap(err, "open migration connection")
	}
	defer sqlDB.Close()

	if err = goose.Up(sqlDB, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}
