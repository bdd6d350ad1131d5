package config

import (
	"fmt"
	"time"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"fixly"`
	Password string `env:"PASSWORD" envDefault:"fixly"`
	Name     string `env:"NAME"     envDefault:"fixly"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// QueryTimeout bounds every repository call.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`

	// RunMigrationsOnStart controls whether the application automatically
	// applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// DSN returns the connection string for database/sql.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Sanitize applies guardrails to database configuration values.
func (d *DBConfig) Sanitize() {
	if d.QueryTimeout <= 0 {
		d.QueryTimeout = 5 * time.Second
	}
}

// RedisConfig contains Redis configuration for the token revocation store.
type RedisConfig struct {
	Addrs    []string `env:"ADDRS"    envDefault:"localhost:6379"`
	Password string   `env:"PASSWORD" envDefault:""`
	DB       int      `env:"DB"       envDefault:"0"`
}
