// Package pathfinder enumerates bounded-length drug->disease walks over a
// reduced result graph (component F). Traversal treats the graph as
// undirected (every edge contributes an adjacency in both directions) and
// records, for each step, whether the walk crossed the edge in the
// direction opposite its kedge subject/object — the orientation the
// qualified-predicate builder needs to key the step correctly.
package pathfinder

import "github.com/ncats-translator/trapi-summarizer/internal/domain"

// Step is one traversed edge in a RawPath: which kedge, and whether the
// walk crossed it against its (subject, object) orientation.
type Step struct {
	EdgeID   string
	Inverted bool
}

// RawPath is an un-normalized walk: len(Nodes) == len(Steps)+1.
type RawPath struct {
	Nodes []string
	Steps []Step
}

type adjEdge struct {
	edgeID   string
	neighbor string
	inverted bool
}

func buildAdjacency(rg domain.Rgraph, edges map[string]domain.KEdge) map[string][]adjEdge {
	adj := map[string][]adjEdge{}
	for _, eid := range rg.Edges {
		e, ok := edges[eid]
		if !ok {
			continue
		}
		adj[e.Subject] = append(adj[e.Subject], adjEdge{edgeID: eid, neighbor: e.Object, inverted: false})
		adj[e.Object] = append(adj[e.Object], adjEdge{edgeID: eid, neighbor: e.Subject, inverted: true})
	}
	return adj
}

// Find enumerates all simple paths from drug to disease over rgraph with
// length <= 2*maxHops+1, where every intermediate node (and the endpoints)
// must canonicalize successfully. edges supplies the kedge data the
// rgraph's edge IDs reference.
func Find(rg domain.Rgraph, edges map[string]domain.KEdge, drug, disease string, maxHops int, canonicalize func(string) (string, bool)) []RawPath {
	if len(rg.Nodes) == 0 || len(rg.Edges) == 0 {
		return nil
	}
	if _, ok := canonicalize(drug); !ok {
		return nil
	}
	if _, ok := canonicalize(disease); !ok {
		return nil
	}

	nodeSet := make(map[string]bool, len(rg.Nodes))
	for _, n := range rg.Nodes {
		nodeSet[n] = true
	}
	if !nodeSet[drug] || !nodeSet[disease] {
		return nil
	}

	adj := buildAdjacency(rg, edges)
	maxNodes := maxHops + 1

	var results []RawPath
	visited := map[string]bool{drug: true}
	nodesBuf := []string{drug}
	var stepsBuf []Step

	var dfs func(cur string)
	dfs = func(cur string) {
		if cur == disease {
			results = append(results, copyPath(nodesBuf, stepsBuf))
		}
		if len(nodesBuf) >= maxNodes {
			return
		}
		for _, e := range adj[cur] {
			if visited[e.neighbor] {
				continue
			}
			if _, ok := canonicalize(e.neighbor); !ok {
				continue
			}
			visited[e.neighbor] = true
			nodesBuf = append(nodesBuf, e.neighbor)
			stepsBuf = append(stepsBuf, Step{EdgeID: e.edgeID, Inverted: e.inverted})

			dfs(e.neighbor)

			stepsBuf = stepsBuf[:len(stepsBuf)-1]
			nodesBuf = nodesBuf[:len(nodesBuf)-1]
			visited[e.neighbor] = false
		}
	}
	dfs(drug)
	return results
}

func copyPath(nodes []string, steps []Step) RawPath {
	n := make([]string, len(nodes))
	copy(n, nodes)
	s := make([]Step, len(steps))
	copy(s, steps)
	return RawPath{Nodes: n, Steps: s}
}
