package db

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type txContextKey string

const txKey txContextKey = "trx"

// DB holds a read and a write handle. Both point at the same pool unless a
// read replica is configured.
type DB struct {
	read  *gorm.DB
	write *gorm.DB
}

// New wraps already opened gorm handles.
func New(read, write *gorm.DB) *DB {
	if read == nil {
		read = write
	}
	return &DB{read: read, write: write}
}

// GormConfig is shared by every dialect so timestamps and error translation
// behave the same in tests and production.
func GormConfig(withDebug bool) *gorm.Config {
	level := gormlogger.Warn
	if withDebug {
		level = gormlogger.Info
	}
	return &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(level),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func Open(config Config, withDebug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(config.postgresDSN())
	case DriverMySQL:
		dialector = mysql.Open(config.mysqlDSN())
	case DriverSQLite:
		dialector = sqlite.Open(config.sqlitePath())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, GormConfig(withDebug))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", config.Driver)
	}
	return db, nil
}

// CreateReadWrite opens the primary and, when readConfig names a different
// host, a separate read handle.
func CreateReadWrite(readConfig Config, writeConfig Config, withDebug bool) (*DB, error) {
	write, err := Open(writeConfig, withDebug)
	if err != nil {
		return nil, err
	}
	if readConfig.Host == "" || readConfig == writeConfig {
		return New(write, write), nil
	}
	read, err := Open(readConfig, withDebug)
	if err != nil {
		return nil, err
	}
	return New(read, write), nil
}

func (r *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.write.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, txKey, tx)
		return fn(ctx)
	})
}

func (r *DB) Write(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok {
		return tx
	}
	return r.write.WithContext(ctx)
}

func (r *DB) Read(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok {
		return tx
	}
	return r.read.WithContext(ctx)
}

// Dialect reports the gorm dialector name: postgres, mysql or sqlite.
func (r *DB) Dialect() string {
	return r.read.Dialector.Name()
}

// Ping checks both handles.
func (r *DB) Ping(ctx context.Context) error {
	for _, g := range []*gorm.DB{r.write, r.read} {
		sqlDB, err := g.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying pools.
func (r *DB) Close() error {
	seen := map[*gorm.DB]bool{}
	for _, g := range []*gorm.DB{r.write, r.read} {
		if seen[g] {
			continue
		}
		seen[g] = true
		sqlDB, err := g.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
	}
	return nil
}

// AutoMigrate creates missing tables for the given entities. Used for the
// mysql and sqlite dialects; postgres goes through goose migrations.
func (r *DB) AutoMigrate(entities ...interface{}) error {
	return r.write.AutoMigrate(entities...)
}
