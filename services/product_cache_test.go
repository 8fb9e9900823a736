package services

import (
	"testing"

	"github.com/anurudhk499/SafeBite/models"
)

func TestCacheKey(t *testing.T) {
	if got := CacheKey("Coca Cola", "5449000000996"); got != "5449000000996" {
		t.Fatalf("barcode should win: %q", got)
	}
	if got := CacheKey("Coca Cola", ""); got != "coca cola" {
		t.Fatalf("name key not lower-cased: %q", got)
	}
}

func TestProductCacheMemoryOnly(t *testing.T) {
	cache := NewProductCache(nil)

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("empty cache returned a hit")
	}

	p := &models.Product{Name: "Oat Milk", Brand: "OatCo"}
	cache.Put("oat milk", p)

	got, ok := cache.Get("oat milk")
	if !ok || got.Name != "Oat Milk" {
		t.Fatalf("round trip failed: %+v %v", got, ok)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}
}

func TestProductCacheOverwrite(t *testing.T) {
	cache := NewProductCache(nil)
	cache.Put("k", &models.Product{Name: "First"})
	cache.Put("k", &models.Product{Name: "Second"})
	got, _ := cache.Get("k")
	if got.Name != "Second" {
		t.Fatalf("last write should win, got %q", got.Name)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}
}

func TestProductCacheSearch(t *testing.T) {
	cache := NewProductCache(nil)
	cache.Put("a", &models.Product{Name: "Dark Chocolate"})
	cache.Put("b", &models.Product{Name: "Milk Chocolate"})
	cache.Put("c", &models.Product{Name: "Oat Milk"})

	hits := cache.Search("chocolate", 10)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if got := cache.Search("chocolate", 1); len(got) != 1 {
		t.Fatalf("limit ignored: %d hits", len(got))
	}
	if got := cache.Search("zzz", 10); len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}
}
