package external

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

const publicationLookupKind = "publication"

type resolution struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// DurablePublicationResolver wraps a PublicationResolver with a
// domain.LookupStore-backed cache, so a restart doesn't re-pay the regex
// classification cost for every evidence ID this process has already seen.
// A store error degrades to the inner resolver rather than failing
// resolution outright.
type DurablePublicationResolver struct {
	inner domain.PublicationResolver
	store domain.LookupStore
	log   *logrus.Logger
}

// NewDurablePublicationResolver builds a cached resolver on top of inner. A
// nil store disables caching and simply delegates to inner.
func NewDurablePublicationResolver(inner domain.PublicationResolver, store domain.LookupStore, logger *logrus.Logger) *DurablePublicationResolver {
	if logger == nil {
		logger = logrus.New()
	}
	return &DurablePublicationResolver{inner: inner, store: store, log: logger}
}

// Resolve implements domain.PublicationResolver.
func (r *DurablePublicationResolver) Resolve(id string) (kind string, url string, ok bool) {
	if r.store == nil {
		return r.inner.Resolve(id)
	}

	ctx := context.Background()
	if raw, found, err := r.store.Get(ctx, publicationLookupKind, id); err != nil {
		r.log.WithError(err).WithField("id", id).Warn("publication lookup store read failed")
	} else if found {
		var res resolution
		if err := json.Unmarshal([]byte(raw), &res); err == nil {
			return res.Kind, res.URL, true
		}
	}

	kind, url, ok = r.inner.Resolve(id)
	if !ok {
		return "", "", false
	}

	raw, err := json.Marshal(resolution{Kind: kind, URL: url})
	if err != nil {
		return kind, url, true
	}
	if err := r.store.Put(ctx, publicationLookupKind, id, string(raw)); err != nil {
		r.log.WithError(err).WithField("id", id).Warn("publication lookup store write failed")
	}

	return kind, url, true
}
