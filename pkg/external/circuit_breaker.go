package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// HTTPAnnotationClient implements domain.AnnotationClient against an
// external node-annotation service, guarded by a rate limiter and a
// circuit breaker and backed by a two-tier cache. None of this resilience
// machinery is visible to the summarization core (internal/service):
// AnnotationClient is consulted only by front-end plumbing, never by the
// pipeline itself.
type HTTPAnnotationClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	cache   *AnnotationCache
}

// NewHTTPAnnotationClient builds a client from config. cache may be nil, in
// which case every call reaches the annotation service.
func NewHTTPAnnotationClient(config domain.AnnotationConfig, cache *AnnotationCache) *HTTPAnnotationClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "annotation-service",
		MaxRequests: config.BreakerMaxRequests,
		Interval:    config.BreakerInterval,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &HTTPAnnotationClient{
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimitPerSec), config.RateLimitBurst),
		breaker: breaker,
		cache:   cache,
	}
}

// Annotate implements domain.AnnotationClient: CURIEs already in the cache
// are served from there, the remainder is fetched from the annotation
// service behind the rate limiter and circuit breaker, and any fresh
// result is written back to the cache.
func (c *HTTPAnnotationClient) Annotate(ctx context.Context, curies []string) (map[string]domain.Annotation, error) {
	out := make(map[string]domain.Annotation, len(curies))
	var misses []string

	if c.cache != nil {
		for _, curie := range curies {
			if ann, ok, err := c.cache.Get(ctx, curie); err == nil && ok {
				out[curie] = ann
				continue
			}
			misses = append(misses, curie)
		}
	} else {
		misses = curies
	}

	if len(misses) == 0 {
		return out, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return out, fmt.Errorf("waiting for annotation rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, misses)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return out, fmt.Errorf("annotation service unavailable (circuit breaker open)")
		}
		return out, fmt.Errorf("fetching annotations: %w", err)
	}

	fetched := result.(map[string]domain.Annotation)
	for curie, ann := range fetched {
		out[curie] = ann
		if c.cache != nil {
			_ = c.cache.Set(ctx, curie, ann, 0)
		}
	}
	return out, nil
}

func (c *HTTPAnnotationClient) fetch(ctx context.Context, curies []string) (map[string]domain.Annotation, error) {
	body, err := json.Marshal(map[string][]string{"curies": curies})
	if err != nil {
		return nil, fmt.Errorf("encoding annotation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building annotation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling annotation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service returned status %d", resp.StatusCode)
	}

	var out map[string]domain.Annotation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding annotation response: %w", err)
	}
	return out, nil
}

// Close releases the client's cache connection, if any.
func (c *HTTPAnnotationClient) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}

// State reports the circuit breaker's current state, for health checks.
func (c *HTTPAnnotationClient) State() gobreaker.State {
	return c.breaker.State()
}
