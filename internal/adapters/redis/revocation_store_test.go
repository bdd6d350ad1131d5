package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient connects to the Redis instance named by TEST_REDIS_ADDR, or
// skips the test when none is reachable.
func testClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{Addrs: []string{addr}})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Test redis not available:", err)
	}
	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Logf("test redis close failed: %v", cerr)
		}
	})
	return client
}

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	store := NewRevocationStoreWithPrefix(testClient(t), "test-revoked:")
	ctx := context.Background()
	token := "token-" + t.Name()

	revoked, err := store.IsRevoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, token, time.Minute))

	revoked, err = store.IsRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevocationStore_EntryExpires(t *testing.T) {
	store := NewRevocationStoreWithPrefix(testClient(t), "test-revoked:")
	ctx := context.Background()
	token := "token-" + t.Name()

	require.NoError(t, store.Revoke(ctx, token, 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	revoked, err := store.IsRevoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked, "entry must disappear with its TTL")
}

func TestRevocationStore_NonPositiveTTLIsNoop(t *testing.T) {
	store := NewRevocationStoreWithPrefix(testClient(t), "test-revoked:")
	ctx := context.Background()
	token := "token-" + t.Name()

	require.NoError(t, store.Revoke(ctx, token, 0))

	revoked, err := store.IsRevoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_EmptyKey(t *testing.T) {
	store := NewRevocationStoreWithPrefix(testClient(t), "test-revoked:")
	ctx := context.Background()

	require.Error(t, store.Revoke(ctx, "", time.Minute))

	revoked, err := store.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestHashKey_RawTokenNeverUsedAsKey(t *testing.T) {
	assert.NotEqual(t, "secret-token", hashKey("secret-token"))
	assert.Len(t, hashKey("secret-token"), 64)
	assert.Equal(t, hashKey("a"), hashKey("a"))
	assert.NotEqual(t, hashKey("a"), hashKey("b"))
}
