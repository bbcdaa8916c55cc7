// Package canon implements the canonical-ID resolver (component D): a
// union-find over each node's alias bag (its own CURIE plus any same_as/
// xref attribute values), across every agent's node set, picking the
// first-inserted bag member as the deterministic representative.
package canon

import (
	"sort"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// Resolver answers canonicalize(curie) queries built from one union-find
// pass over every agent's nodes.
type Resolver struct {
	parent map[string]string
	order  map[string]int
}

// AgentNodes is one agent's node set, keyed by CURIE.
type AgentNodes map[string]domain.KNode

// Build runs the union-find fold over nodeSets in order, returning a
// Resolver ready for Canonicalize lookups. nodeSets must be supplied in
// agent-insertion order: within each agent's set, CURIEs are visited in
// sorted order so that "first inserted" is a reproducible function of the
// input rather than Go's randomized map iteration.
func Build(nodeSets []AgentNodes) *Resolver {
	r := &Resolver{parent: map[string]string{}, order: map[string]int{}}
	next := 0
	insert := func(curie string) {
		if _, ok := r.parent[curie]; !ok {
			r.parent[curie] = curie
			r.order[curie] = next
			next++
		}
	}

	for _, nodes := range nodeSets {
		for _, curie := range sortedKeys(nodes) {
			node := nodes[curie]
			bag := []string{curie}
			bag = append(bag, aliasValues(node)...)
			for _, c := range bag {
				insert(c)
			}
			for i := 1; i < len(bag); i++ {
				r.union(bag[0], bag[i])
			}
		}
	}
	return r
}

func sortedKeys(nodes AgentNodes) []string {
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// aliasValues extracts string alias values out of same_as/xref attributes,
// accepting either a scalar string or a list of strings per entry.
func aliasValues(node domain.KNode) []string {
	var out []string
	for _, a := range node.Attributes {
		if a.AttributeTypeID != domain.AttrSameAs && a.AttributeTypeID != domain.AttrXref {
			continue
		}
		switch v := a.Value.(type) {
		case string:
			out = append(out, v)
		case []string:
			out = append(out, v...)
		case []interface{}:
			for _, e := range v {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func (r *Resolver) find(x string) string {
	root := x
	for r.parent[root] != root {
		root = r.parent[root]
	}
	// path compression
	for r.parent[x] != root {
		next := r.parent[x]
		r.parent[x] = root
		x = next
	}
	return root
}

// union merges the sets containing a and b, keeping the earliest-inserted
// member as the representative of the merged set.
func (r *Resolver) union(a, b string) {
	ra, rb := r.find(a), r.find(b)
	if ra == rb {
		return
	}
	if r.order[ra] <= r.order[rb] {
		r.parent[rb] = ra
	} else {
		r.parent[ra] = rb
	}
}

// Canonicalize returns the representative CURIE for curie, or (_, false)
// if curie was never seen in any agent's node set.
func (r *Resolver) Canonicalize(curie string) (string, bool) {
	if _, ok := r.parent[curie]; !ok {
		return "", false
	}
	return r.find(curie), true
}
