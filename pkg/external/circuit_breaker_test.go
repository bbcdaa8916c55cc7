package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

func TestHTTPAnnotationClientFetchesAndCaches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]domain.Annotation{
			"CHEBI:1": {"name": "aspirin"},
		})
	}))
	defer server.Close()

	cache, err := NewAnnotationCache(domain.CacheConfig{LRUSize: 8})
	if err != nil {
		t.Fatalf("failed to build cache: %v", err)
	}
	defer cache.Close()

	client := NewHTTPAnnotationClient(domain.AnnotationConfig{
		BaseURL:            server.URL,
		Timeout:            5 * time.Second,
		RateLimitPerSec:    100,
		RateLimitBurst:     10,
		BreakerMaxRequests: 5,
		BreakerInterval:    time.Minute,
		BreakerTimeout:     time.Minute,
	}, cache)

	ctx := context.Background()
	out, err := client.Annotate(ctx, []string{"CHEBI:1"})
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if out["CHEBI:1"]["name"] != "aspirin" {
		t.Errorf("unexpected annotation %v", out)
	}
	if requests != 1 {
		t.Fatalf("expected 1 http request, got %d", requests)
	}

	// Second call for the same CURIE should be served from cache.
	out2, err := client.Annotate(ctx, []string{"CHEBI:1"})
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if out2["CHEBI:1"]["name"] != "aspirin" {
		t.Errorf("unexpected cached annotation %v", out2)
	}
	if requests != 1 {
		t.Errorf("expected cache hit to avoid a second http request, got %d requests", requests)
	}
}

func TestHTTPAnnotationClientServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPAnnotationClient(domain.AnnotationConfig{
		BaseURL:            server.URL,
		Timeout:            5 * time.Second,
		RateLimitPerSec:    100,
		RateLimitBurst:     10,
		BreakerMaxRequests: 5,
		BreakerInterval:    time.Minute,
		BreakerTimeout:     time.Minute,
	}, nil)

	if _, err := client.Annotate(context.Background(), []string{"CHEBI:1"}); err == nil {
		t.Error("expected error from a failing annotation service")
	}
}
