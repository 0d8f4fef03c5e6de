package scrape

import (
	"testing"
	"time"
)

func TestPageCacheSetGet(t *testing.T) {
	cache := NewPageCache(1 * time.Hour)

	if _, found := cache.Get("https://example.gov/"); found {
		t.Error("empty cache reported a hit")
	}

	cache.Set("https://example.gov/", []byte("page body"))

	body, found := cache.Get("https://example.gov/")
	if !found {
		t.Fatal("expected cache hit")
	}
	if string(body) != "page body" {
		t.Errorf("cached body: got %q", body)
	}
	if cache.Len() != 1 {
		t.Errorf("cache length: got %d, want 1", cache.Len())
	}
}

func TestPageCacheExpiry(t *testing.T) {
	cache := NewPageCache(10 * time.Millisecond)
	cache.Set("https://example.gov/", []byte("stale"))

	time.Sleep(25 * time.Millisecond)

	if _, found := cache.Get("https://example.gov/"); found {
		t.Error("expired entry returned")
	}
	if cache.Len() != 0 {
		t.Errorf("expired entry not removed: length %d", cache.Len())
	}
}

func TestPageCacheDisabled(t *testing.T) {
	cache := NewPageCache(0)
	cache.Set("https://example.gov/", []byte("ignored"))

	if _, found := cache.Get("https://example.gov/"); found {
		t.Error("disabled cache returned a hit")
	}
}
