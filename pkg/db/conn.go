package db

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
)

type Config struct {
	Driver     string
	User       string
	Host       string
	Port       string
	Password   string
	Database   string
	SSLMode    string
	SQLitePath string
}

func (c Config) postgresDSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	q.Set("TimeZone", "UTC")
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c Config) mysqlDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		c.User, url.QueryEscape(c.Password), c.Host, c.Port, c.Database)
}

func (c Config) sqlitePath() string {
	if c.SQLitePath == "" {
		return "file::memory:?cache=shared"
	}
	return c.SQLitePath
}

// newSqlConnection opens a plain database/sql handle through lib/pq for goose.
func newSqlConnection(config Config) (*sql.DB, error) {
	return sql.Open("postgres", config.postgresDSN())
}
