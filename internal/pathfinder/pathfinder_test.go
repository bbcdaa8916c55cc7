package pathfinder

import (
	"testing"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

func allCanon(s string) (string, bool) { return s, true }

func TestFindDirectEdge(t *testing.T) {
	rg := domain.Rgraph{Nodes: []string{"CHEBI:1", "MONDO:1"}, Edges: []string{"e1"}}
	edges := map[string]domain.KEdge{
		"e1": {Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats"},
	}
	paths := Find(rg, edges, "CHEBI:1", "MONDO:1", 3, allCanon)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if len(paths[0].Nodes) != 2 || paths[0].Steps[0].Inverted {
		t.Errorf("unexpected path %+v", paths[0])
	}
}

func TestFindPrunesOverLength(t *testing.T) {
	rg := domain.Rgraph{
		Nodes: []string{"A", "B", "C", "D", "E", "F"},
		Edges: []string{"e1", "e2", "e3", "e4", "e5"},
	}
	edges := map[string]domain.KEdge{
		"e1": {Subject: "A", Object: "B", Predicate: "biolink:affects"},
		"e2": {Subject: "B", Object: "C", Predicate: "biolink:affects"},
		"e3": {Subject: "C", Object: "D", Predicate: "biolink:affects"},
		"e4": {Subject: "D", Object: "E", Predicate: "biolink:affects"},
		"e5": {Subject: "E", Object: "F", Predicate: "biolink:affects"},
	}
	paths := Find(rg, edges, "A", "F", 1, allCanon)
	if len(paths) != 0 {
		t.Errorf("expected no paths under maxHops=1, got %d", len(paths))
	}
}

func TestFindSkipsUncanonicalizableIntermediate(t *testing.T) {
	rg := domain.Rgraph{Nodes: []string{"A", "B", "C"}, Edges: []string{"e1", "e2"}}
	edges := map[string]domain.KEdge{
		"e1": {Subject: "A", Object: "B", Predicate: "biolink:affects"},
		"e2": {Subject: "B", Object: "C", Predicate: "biolink:affects"},
	}
	canon := func(s string) (string, bool) {
		if s == "B" {
			return "", false
		}
		return s, true
	}
	paths := Find(rg, edges, "A", "C", 3, canon)
	if len(paths) != 0 {
		t.Errorf("expected no paths through uncanonicalizable node, got %d", len(paths))
	}
}
