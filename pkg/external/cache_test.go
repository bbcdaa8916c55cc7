package external

import (
	"context"
	"testing"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

func TestAnnotationCacheLRUOnlyRoundTrip(t *testing.T) {
	cache, err := NewAnnotationCache(domain.CacheConfig{LRUSize: 8})
	if err != nil {
		t.Fatalf("failed to build cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if _, ok, err := cache.Get(ctx, "CHEBI:1"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	ann := domain.Annotation{"name": "aspirin"}
	if err := cache.Set(ctx, "CHEBI:1", ann, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := cache.Get(ctx, "CHEBI:1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got["name"] != "aspirin" {
		t.Errorf("unexpected annotation %v", got)
	}

	if err := cache.Invalidate(ctx, "CHEBI:1"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "CHEBI:1"); ok {
		t.Error("expected miss after invalidate")
	}
}
