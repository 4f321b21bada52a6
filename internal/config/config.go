package config

import (
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/pkg/errors"
)

const EnvProduction = "production"

var config *Config

// Config holds every setting the binaries read. Nothing else in the
// repository reads the environment directly.
type Config struct {
	AppEnv  string `env:"APP_ENV,default=development"`
	AppName string `env:"APP_NAME,default=ngo-backend"`

	Port               string        `env:"PORT,default=5000"`
	HttpReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT,default=10s"`
	HttpWriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT,default=10s"`
	CorsAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS,default=*"`

	DBDriver      string `env:"DB_DRIVER,default=postgres"`
	DBHost        string `env:"DB_HOST,default=localhost"`
	DBPort        string `env:"DB_PORT,default=5432"`
	DBUser        string `env:"DB_USER,default=postgres"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME,default=ngo"`
	DBSSLMode     string `env:"DB_SSLMODE,default=disable"`
	DBReadHost    string `env:"DB_READ_HOST"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE,default=true"`
	DBSQLitePath  string `env:"DB_SQLITE_PATH"`
	DBDebug       bool   `env:"DB_DEBUG,default=false"`

	RedisAddr      string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisUsername  string `env:"REDIS_USER"`
	RedisPassword  string `env:"REDIS_PASS"`
	RedisDatabase  int    `env:"REDIS_DATABASE,default=0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX,default=ngo:"`

	JWTSecret string        `env:"JWT_SECRET,required=true"`
	JWTIssuer string        `env:"JWT_ISSUER,default=ngo-backend"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=24h"`

	PaymentCheckoutURL string `env:"PAYMENT_CHECKOUT_URL,default=https://payment-gateway.com/checkout"`

	MetricsAddr   string `env:"METRICS_ADDR"`
	MetricsURI    string `env:"METRICS_URI,default=/metrics"`
	PromNamespace string `env:"PROM_NAMESPACE,default=ngo"`

	LogLevel string `env:"LOG_LEVEL,default=info"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	config = c
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	switch c.DBDriver {
	case db.DriverPostgres, db.DriverMySQL, db.DriverSQLite:
	default:
		return errors.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// CorsOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) CorsOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CorsAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) WriteDB() db.Config {
	return db.Config{
		Driver:     c.DBDriver,
		User:       c.DBUser,
		Host:       c.DBHost,
		Port:       c.DBPort,
		Password:   c.DBPassword,
		Database:   c.DBName,
		SSLMode:    c.DBSSLMode,
		SQLitePath: c.DBSQLitePath,
	}
}

// ReadDB is the write config with the host swapped for DB_READ_HOST when set.
func (c *Config) ReadDB() db.Config {
	cfg := c.WriteDB()
	if c.DBReadHost == "" {
		cfg.Host = ""
		return cfg
	}
	cfg.Host = c.DBReadHost
	return cfg
}

func Get() *Config {
	if config == nil {
		panic("config is not initialized")
	}
	return config
}

// Set installs c as the process configuration. Used by tests and tools
// that build Config by hand.
func Set(c *Config) {
	config = c
}
