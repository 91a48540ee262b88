package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Set CRITPATH_TEST_REDIS_URL (for example redis://localhost:6379/15) to run
// the Redis tests against a live server.
func testRedisCache(t *testing.T, ttl time.Duration) *RedisCache {
	t.Helper()
	url := os.Getenv("CRITPATH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CRITPATH_TEST_REDIS_URL not set")
	}
	c, err := NewRedisCache(context.Background(), url, ttl)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c := testRedisCache(t, time.Minute)
	key := "test:" + t.Name()
	t.Cleanup(func() { c.Delete(ctx, key) })

	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("empty cache Get = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("<svg/>")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("deleted key should miss")
	}
}

func TestNewRedisCache_Errors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedisCache(ctx, "http://localhost:6379", time.Minute); err == nil {
		t.Error("expected error for non-redis URL scheme")
	}
	// Port 1 is reserved and never runs Redis.
	if _, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0", time.Minute); err == nil {
		t.Error("expected error when the server does not answer")
	}
}
