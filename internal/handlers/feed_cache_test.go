package handlers

import (
	"testing"
	"time"

	"herhub/internal/models"
	"herhub/internal/utils"
)

func TestFeedCacheKey(t *testing.T) {
	key := feedCacheKey("Advice", "newest", 2, 10)
	if key != "feed:Advice:newest:2:10" {
		t.Errorf("unexpected cache key %q", key)
	}
}

func TestInvalidateFeedCache(t *testing.T) {
	cache := utils.GetCache()
	keys := []string{
		feedCacheKey("All", "newest", 1, 10),
		feedCacheKey("All", "most_popular", 1, 10),
		feedCacheKey("Advice", "newest", 1, 10),
		feedCacheKey("Advice", "most_popular", 1, 10),
	}
	for _, k := range keys {
		cache.Set(k, "page", time.Minute)
	}
	// Pages for other filters must survive the invalidation.
	untouched := feedCacheKey("Photo Posts", "newest", 1, 10)
	cache.Set(untouched, "page", time.Minute)

	invalidateFeedCache(models.PostTypeTip)

	for _, k := range keys {
		if cache.Get(k) != nil {
			t.Errorf("key %q should have been invalidated", k)
		}
	}
	if cache.Get(untouched) == nil {
		t.Errorf("key %q should not have been invalidated", untouched)
	}
}
