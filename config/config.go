// Package config defines the application configuration, loaded from
// environment variables with github.com/caarlos0/env.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files:
//   - auth.go: token verification and revocation configuration
//   - database.go: Postgres and Redis configuration
//   - http.go: HTTP server configuration
type AppConfig struct {
	// IsDev controls development mode behavior (text log output, etc.).
	IsDev bool `env:"DEV" envDefault:"false"`

	Auth     AuthConfig  `envPrefix:"AUTH_"`
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	HTTP     HTTPConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// Call after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Postgres.Sanitize()
	c.Auth.Sanitize()
}
