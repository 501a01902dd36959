package mem

import (
	"testing"
	"time"

	"locallens/internal/models/response_models"
)

func TestStoryCacheRoundTrip(t *testing.T) {
	cache := NewStoryCache()

	if _, ok := cache.Get("visakhapatnam"); ok {
		t.Fatal("empty cache should miss")
	}

	stories := []response_models.LocalStory{{ID: "s1", Title: "Dolphin's Nose"}}
	cache.Set("visakhapatnam", stories, time.Minute)

	got, ok := cache.Get("visakhapatnam")
	if !ok || len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("Get = %+v, %v", got, ok)
	}

	if _, ok := cache.Get("hyderabad"); ok {
		t.Error("unrelated key should miss")
	}
}

func TestStoryCacheExpiry(t *testing.T) {
	cache := NewStoryCache()
	cache.Set("goa", []response_models.LocalStory{{ID: "s2"}}, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("goa"); ok {
		t.Error("expired entry should miss")
	}
}

func TestStoryCacheOverwrite(t *testing.T) {
	cache := NewStoryCache()
	cache.Set("pune", []response_models.LocalStory{{ID: "old"}}, time.Minute)
	cache.Set("pune", []response_models.LocalStory{{ID: "new"}}, time.Minute)

	got, ok := cache.Get("pune")
	if !ok || len(got) != 1 || got[0].ID != "new" {
		t.Errorf("Get = %+v, %v", got, ok)
	}
}
