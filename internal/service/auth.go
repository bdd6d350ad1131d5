package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fixly/fixly-api/internal/core"
	"github.com/fixly/fixly-api/internal/domain/auth"
	apperrors "github.com/fixly/fixly-api/internal/errors"
)

// ErrUnauthenticated is returned when a bearer credential is missing,
// malformed, expired, or revoked. The HTTP layer maps it to 401.
var ErrUnauthenticated = errors.New("invalid or expired credential")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Secret  []byte
	Revoker core.TokenRevoker
	Logger  *slog.Logger
}

// AuthService is the Identity Context adapter: it resolves a Principal from
// an HS256 bearer token and honors the shared revocation list on logout.
type AuthService struct {
	secret  []byte
	revoker core.TokenRevoker
	logger  *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if len(opts.Secret) == 0 {
		panic("auth secret is required")
	}
	if opts.Revoker == nil {
		panic("TokenRevoker is required")
	}
	return &AuthService{secret: opts.Secret, revoker: opts.Revoker, logger: opts.Logger}
}

// tokenClaims are the registered claims plus the principal fields the
// identity provider embeds in every token.
type tokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// VerifyToken resolves the principal carried by a bearer token. Revocation
// is checked before signature problems are even considered; a revocation
// store outage fails closed as Unavailable rather than admitting a
// potentially revoked credential.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (auth.Principal, error) {
	if token == "" {
		return auth.Principal{}, ErrUnauthenticated
	}

	revoked, err := s.revoker.IsRevoked(ctx, token)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "revocation check failed", "error", err)
		}
		return auth.Principal{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "revocation store unavailable")
	}
	if revoked {
		return auth.Principal{}, ErrUnauthenticated
	}

	claims, err := s.parseClaims(token)
	if err != nil {
		return auth.Principal{}, ErrUnauthenticated
	}

	role := auth.Role(claims.Role)
	if claims.UserID <= 0 || !role.Valid() {
		return auth.Principal{}, ErrUnauthenticated
	}

	return auth.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, nil
}

// Logout revokes the presented token until its natural expiry. Tokens
// without an expiry claim are revoked for a day, matching the identity
// provider's longest-lived credentials.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseClaims(token)
	if err != nil {
		return ErrUnauthenticated
	}

	ttl := 24 * time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}

	if err := s.revoker.Revoke(ctx, token, ttl); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "revocation store unavailable")
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "token revoked", "user_id", claims.UserID, "ttl", ttl)
	}
	return nil
}

func (s *AuthService) parseClaims(token string) (*tokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return &claims, nil
}
