// Package rgraph builds the reduced, per-result graph (component E): the
// subset of one TRAPI result's bound nodes and edges that are backed by a
// real knowledge-graph entry and a recognized biolink predicate.
package rgraph

import (
	"github.com/ncats-translator/trapi-summarizer/internal/biolink"
	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// Build flattens result.node_bindings / result.edge_bindings into a
// domain.Rgraph over kgraph, dropping any edge whose predicate isn't a
// recognized biolink predicate. It fails (ok=false) if any bound node is
// absent from kgraph.Nodes — per §4.5, an unbindable result.
func Build(result domain.Result, kgraph domain.KnowledgeGraph) (domain.Rgraph, bool) {
	var nodes []string
	for _, bindings := range result.NodeBindings {
		for _, b := range bindings {
			if _, ok := kgraph.Nodes[b.ID]; !ok {
				return domain.Rgraph{}, false
			}
			nodes = append(nodes, b.ID)
		}
	}

	var edges []string
	for _, bindings := range result.EdgeBindings {
		for _, b := range bindings {
			edge, ok := kgraph.Edges[b.ID]
			if !ok || !biolink.IsBiolinkPredicate(edge.Predicate) {
				continue
			}
			edges = append(edges, b.ID)
		}
	}

	return domain.Rgraph{Nodes: nodes, Edges: edges}, true
}
