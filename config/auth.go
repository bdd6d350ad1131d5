package config

// AuthConfig contains token verification and revocation configuration.
type AuthConfig struct {
	// JWTSecret is the HS256 signing secret shared with the identity
	// provider. Required; there is no usable default in production.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`

	// RevocationPrefix namespaces revoked-token keys in Redis.
	RevocationPrefix string `env:"REVOCATION_PREFIX" envDefault:"revoked:"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.RevocationPrefix == "" {
		a.RevocationPrefix = "revoked:"
	}
}
