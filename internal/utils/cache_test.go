package utils

import (
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := GetCache()
	c.Set("k", "v", time.Minute)
	if got := c.Get("k"); got != "v" {
		t.Errorf("Get = %v, want v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Set("expired", "v", -time.Second)
	if got := c.Get("expired"); got != nil {
		t.Errorf("expected nil for expired entry, got %v", got)
	}
}

func TestCacheDelete(t *testing.T) {
	c := GetCache()
	c.Set("gone", 1, time.Minute)
	c.Delete("gone")
	if got := c.Get("gone"); got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	if got := GetCache().Get("never-set"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestGetCacheConcurrentFirstUse(t *testing.T) {
	instances := make([]*GlobalCache, 8)
	var wg sync.WaitGroup
	for i := range instances {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetCache()
		}(i)
	}
	wg.Wait()

	for i, c := range instances {
		if c == nil || c != instances[0] {
			t.Fatalf("goroutine %d saw a different cache instance", i)
		}
	}
}
