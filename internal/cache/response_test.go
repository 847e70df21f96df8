// Integration tests for the Valkey response cache. They require a running
// Valkey (or Redis) instance and are skipped when none is reachable.
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client, err := ConnectValkey(
		envOr("VALKEY_HOST", "localhost"),
		envOr("VALKEY_PORT", "6379"),
		os.Getenv("VALKEY_PASSWORD"),
	)
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestResponseCache_SetGet(t *testing.T) {
	rc := NewResponseCache(testClient(t), time.Minute)
	ctx := context.Background()

	key := TreeKey("test-backend")
	defer rc.Invalidate(ctx, key)

	if _, ok := rc.Get(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	payload := []byte(`{"tree":[],"flat":[],"total":0}`)
	rc.Set(ctx, key, payload)

	got, ok := rc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s, want %s", got, payload)
	}
}

func TestResponseCache_Invalidate(t *testing.T) {
	rc := NewResponseCache(testClient(t), time.Minute)
	ctx := context.Background()

	key := TreeKey("test-invalidate")
	rc.Set(ctx, key, []byte("x"))
	rc.Invalidate(ctx, key)

	if _, ok := rc.Get(ctx, key); ok {
		t.Error("expected miss after invalidate")
	}
}

func TestResponseCache_TTLExpiry(t *testing.T) {
	rc := NewResponseCache(testClient(t), time.Second)
	ctx := context.Background()

	key := TreeKey("test-ttl")
	rc.Set(ctx, key, []byte("x"))

	time.Sleep(1500 * time.Millisecond)

	if _, ok := rc.Get(ctx, key); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestResponseCache_InvalidateAll(t *testing.T) {
	client := testClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	for _, backend := range []string{"meilisearch", "appsearch", "postgres"} {
		rc.Set(ctx, TreeKey(backend), []byte("x"))
	}

	rc.InvalidateAll(ctx)

	for _, backend := range []string{"meilisearch", "appsearch", "postgres"} {
		if _, ok := rc.Get(ctx, TreeKey(backend)); ok {
			t.Errorf("key for %s survived InvalidateAll", backend)
		}
	}
}

func TestTreeKey(t *testing.T) {
	if got := TreeKey("meilisearch"); got != "tree:meilisearch" {
		t.Errorf("TreeKey = %s", got)
	}
}
