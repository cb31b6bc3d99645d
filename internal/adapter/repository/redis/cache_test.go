package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "bookmaker-tree:b1", []byte(`{"Bookmaker":{}}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "bookmaker-tree:b1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != `{"Bookmaker":{}}` {
		t.Fatalf("unexpected value %s", val)
	}

	if !mr.Exists("matchedbet:cache:bookmaker-tree:b1") {
		t.Fatalf("expected key to be namespaced")
	}
}

func TestCacheMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	val, err := NewCache(client).Get(context.Background(), "absent")
	if err != nil || val != nil {
		t.Fatalf("expected clean miss, got val=%s err=%v", val, err)
	}
}

func TestCacheExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), 30*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(31 * time.Second)

	val, err := cache.Get(ctx, "k")
	if err != nil || val != nil {
		t.Fatalf("expected expired key, got val=%s err=%v", val, err)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if val, _ := cache.Get(ctx, "foo"); val != nil {
		t.Fatalf("expected deleted key to miss, got %s", val)
	}
}
