// Package testutil builds throwaway stores for tests: an in-memory sqlite
// database with the full schema and a miniredis-backed redis adapter.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/repository"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"github.com/nimasrn/ngo-backend/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory sqlite database migrated with every
// entity and closes it when the test ends.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()
	g, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig(false))
	require.NoError(t, err)

	// every pooled connection to ":memory:" would get its own empty database
	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	d := db.New(g, g)
	require.NoError(t, d.AutoMigrate(repository.Entities()...))
	return d
}

func SetupTestRedis(t *testing.T) (*miniredis.Miniredis, redis.RedisAdapter) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := redis.NewRedisAdapter("test:", &goredis.UniversalOptions{
		Addrs: []string{mr.Addr()},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mr, adapter
}

func CreateTestUser(t *testing.T, d *db.DB, name, email string) *model.User {
	t.Helper()
	u, err := repository.NewUserRepository(d).Create(context.Background(), &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         model.RoleStaff,
	})
	require.NoError(t, err)
	return u
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func Ptr[T any](v T) *T {
	return &v
}
