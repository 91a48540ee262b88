package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testSQLiteCache(t *testing.T, ttl time.Duration) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(context.Background(), ":memory:", ttl)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCache(t *testing.T) {
	ctx := context.Background()
	c := testSQLiteCache(t, time.Hour)

	if _, hit, err := c.Get(ctx, "svg"); hit || err != nil {
		t.Fatalf("empty cache Get = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "svg", []byte("<svg/>")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Set(ctx, "svg", []byte("<svg></svg>")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if data, _, _ := c.Get(ctx, "svg"); string(data) != "<svg></svg>" {
		t.Errorf("overwritten value = %q", data)
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestSQLiteCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := testSQLiteCache(t, time.Minute)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	for _, key := range []string{"old", "older"} {
		if err := c.Set(ctx, key, []byte(key)); err != nil {
			t.Fatal(err)
		}
	}

	now = now.Add(2 * time.Minute)
	if err := c.Set(ctx, "fresh", []byte("fresh")); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "fresh"); !hit {
		t.Error("fresh entry should hit")
	}

	n, err := c.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("Prune removed %d entries, want 1 (old was removed by Get)", n)
	}
}

func TestSQLiteCacheReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "artifacts.db")

	c, err := NewSQLiteCache(ctx, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "pdf", []byte("%PDF")); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	c, err = NewSQLiteCache(ctx, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if data, hit, err := c.Get(ctx, "pdf"); !hit || err != nil || string(data) != "%PDF" {
		t.Errorf("Get after reopen = %q, %v, %v", data, hit, err)
	}
}
