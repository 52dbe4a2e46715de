package cache

import (
	"testing"
	"time"

	"tsum/internal/domain"
)

func TestKey(t *testing.T) {
	base := Key("punkt|document", 0.3, "some text")

	if base != Key("punkt|document", 0.3, "some text") {
		t.Error("Key should be deterministic")
	}
	variants := []string{
		Key("regex|document", 0.3, "some text"),
		Key("punkt|document", 0.31, "some text"),
		Key("punkt|document", 0.3, "other text"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with base key", i)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	sentences := []domain.Sentence{{Index: 0, Text: "One."}, {Index: 2, Text: "Three."}}

	if _, ok := c.Get("k"); ok {
		t.Fatal("empty cache returned a value")
	}

	c.Set("k", sentences)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected cached value")
	}
	if len(got) != 2 || got[1].Text != "Three." {
		t.Errorf("unexpected cached value %+v", got)
	}

	got[0].Text = "mutated"
	again, _ := c.Get("k")
	if again[0].Text != "One." {
		t.Error("cache entry mutated through returned slice")
	}

	sentences[1].Text = "changed"
	again, _ = c.Get("k")
	if again[1].Text != "Three." {
		t.Error("cache entry mutated through input slice")
	}

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Error("Clear() did not remove entries")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, time.Minute)
	c.Set("k", []domain.Sentence{{Text: "x"}})
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	c.Set("k", []domain.Sentence{{Text: "x"}})
	if _, ok := c.Get("k"); ok {
		t.Error("Nop cache should never hit")
	}
	c.Clear()
}
