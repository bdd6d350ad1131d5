// Package redis provides Redis-based adapters for the fixly system.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore is a shared, expiring revocation list for logout tokens.
// Entries carry a TTL matching the token's remaining lifetime, so the set
// never grows unbounded and revocation state is visible to every server
// instance.
type RevocationStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRevocationStore creates a Redis-backed revocation store.
func NewRevocationStore(client redis.UniversalClient) *RevocationStore {
	return &RevocationStore{client: client, prefix: "revoked:"}
}

// NewRevocationStoreWithPrefix creates a revocation store with a custom key prefix.
func NewRevocationStoreWithPrefix(client redis.UniversalClient, prefix string) *RevocationStore {
	return &RevocationStore{client: client, prefix: prefix}
}

// Revoke marks the credential revoked for ttl. Tokens are hashed before use
// as keys so raw credentials never land in Redis.
func (s *RevocationStore) Revoke(ctx context.Context, key string, ttl time.Duration) error {
	if key == "" {
		return errors.New("revocation key cannot be empty")
	}
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}
	return s.client.Set(ctx, s.prefix+hashKey(key), "1", ttl).Err()
}

// IsRevoked reports whether the credential has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	_, err := s.client.Get(ctx, s.prefix+hashKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
