// Package store provides durable lookup-cache storage for annotation and
// publication-resolution results, backed by either PostgreSQL or SQLite
// behind the single domain.LookupStore interface. Entries are keyed by a
// kind (e.g. "annotation", "publication") plus an opaque key (a CURIE or
// publication ID); the value is the caller's own serialized representation.
package store

import "time"

// Entry is one row of the lookup cache.
type Entry struct {
	Kind      string    `json:"kind"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
