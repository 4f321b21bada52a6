package main

import (
	"os"
	"strings"

	"github.com/nimasrn/ngo-backend/internal/auth"
	"github.com/nimasrn/ngo-backend/internal/config"
	"github.com/nimasrn/ngo-backend/internal/handlers"
	"github.com/nimasrn/ngo-backend/internal/repository"
	"github.com/nimasrn/ngo-backend/internal/server"
	"github.com/nimasrn/ngo-backend/migrations"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/nimasrn/ngo-backend/pkg/prom"
	"github.com/nimasrn/ngo-backend/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()

	if err = logger.Configure(cfg.AppEnv, cfg.LogLevel); err != nil {
		logger.Error("failed to configure logger", "error", err)
		return
	}
	defer logger.Sync()
	logger.Info("starting api", "version", version, "commit", commit, "date", date, "env", cfg.AppEnv)

	handlers.ShowErrorDetails = !cfg.IsProduction()

	if cfg.MetricsAddr != "" {
		host, _ := os.Hostname()
		if err = prom.Create(prometheus.DefaultRegisterer, host, cfg.AppEnv, cfg.PromNamespace); err != nil {
			logger.Error("failed to register metrics", "error", err)
			return
		}
		go prom.ListenAndServer(cfg.MetricsAddr, cfg.MetricsURI)
	}

	if cfg.DBDriver == db.DriverPostgres {
		if err = db.Migrate(cfg.WriteDB(), migrations.FS); err != nil {
			logger.Error("failed running migrations", "error", err)
			return
		}
	}

	store, err := db.CreateReadWrite(cfg.ReadDB(), cfg.WriteDB(), cfg.DBDebug)
	if err != nil {
		logger.Error("failed connecting to database", "error", err, "driver", cfg.DBDriver)
		return
	}
	defer store.Close()

	if cfg.DBDriver != db.DriverPostgres && cfg.DBAutoMigrate {
		if err = store.AutoMigrate(repository.Entities()...); err != nil {
			logger.Error("failed migrating schema", "error", err, "driver", cfg.DBDriver)
			return
		}
	}

	rdb, err := redis.NewRedisAdapter(cfg.RedisKeyPrefix, &goredis.UniversalOptions{
		Addrs:      []string{cfg.RedisAddr},
		ClientName: cfg.AppName,
		DB:         cfg.RedisDatabase,
		Username:   cfg.RedisUsername,
		Password:   cfg.RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}
	defer rdb.Close()

	s := server.New(server.Dependencies{
		DB:           store,
		Redis:        rdb,
		Tokens:       auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL),
		CheckoutURL:  cfg.PaymentCheckoutURL,
		CorsOrigins:  cfg.CorsOrigins(),
		ReadTimeout:  cfg.HttpReadTimeout,
		WriteTimeout: cfg.HttpWriteTimeout,
	})

	stopped := make(chan struct{})
	s.CloseOnSignal(func() { close(stopped) })

	if err = s.ListenAndServe(":" + cfg.Port); err != nil {
		logger.Error("error in running http-server", "error", err)
		return
	}
	<-stopped
}

func argContainsEnvPath() string {
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
	return ""
}
