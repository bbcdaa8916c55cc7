package domain

import "context"

// AnnotationClient is the external collaborator used by front-end plumbing
// to fetch annotations for a batch of CURIEs. The core summarizer never
// calls this directly — only the classifier's pure functions (component B)
// operate on the Annotation values it returns.
type AnnotationClient interface {
	Annotate(ctx context.Context, curies []string) (map[string]Annotation, error)
}

// PublicationResolver classifies a publication/evidence identifier and
// resolves it to a display type and URL, per §4.10's idToTypeAndUrl. It
// never fetches article content — that subsystem is explicitly out of
// scope for this repository.
type PublicationResolver interface {
	Resolve(id string) (kind string, url string, ok bool)
}

// ConfigManager defines the interface for configuration management.
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}

// LookupStore is a durable cache for annotation and publication-resolution
// results. It is a pure performance collaborator for pkg/external; the core
// summarizer neither reads nor writes it.
type LookupStore interface {
	Get(ctx context.Context, kind, key string) (value string, ok bool, err error)
	Put(ctx context.Context, kind, key, value string) error
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, kind, key string) error
	Close() error
}
