package canon

import (
	"testing"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

func TestBuildMergesAliasBags(t *testing.T) {
	agentA := AgentNodes{
		"X": domain.KNode{Attributes: []domain.Attribute{
			{AttributeTypeID: domain.AttrSameAs, Value: []interface{}{"Y"}},
		}},
	}
	agentB := AgentNodes{
		"Y": domain.KNode{},
	}
	r := Build([]AgentNodes{agentA, agentB})

	cx, ok := r.Canonicalize("X")
	if !ok || cx != "X" {
		t.Fatalf("canonicalize(X) = %q, %v, want X, true", cx, ok)
	}
	cy, ok := r.Canonicalize("Y")
	if !ok || cy != "X" {
		t.Fatalf("canonicalize(Y) = %q, %v, want X, true", cy, ok)
	}
}

func TestCanonicalizeMissReturnsFalse(t *testing.T) {
	r := Build([]AgentNodes{{"X": domain.KNode{}}})
	if _, ok := r.Canonicalize("Z"); ok {
		t.Error("expected Canonicalize for unseen CURIE to fail")
	}
}

func TestTransitiveMergeAcrossThreeBags(t *testing.T) {
	agentA := AgentNodes{
		"A": domain.KNode{Attributes: []domain.Attribute{
			{AttributeTypeID: domain.AttrXref, Value: "B"},
		}},
	}
	agentB := AgentNodes{
		"B": domain.KNode{Attributes: []domain.Attribute{
			{AttributeTypeID: domain.AttrXref, Value: "C"},
		}},
	}
	r := Build([]AgentNodes{agentA, agentB})
	for _, c := range []string{"A", "B", "C"} {
		canon, ok := r.Canonicalize(c)
		if !ok || canon != "A" {
			t.Errorf("canonicalize(%s) = %q, %v, want A, true", c, canon, ok)
		}
	}
}
