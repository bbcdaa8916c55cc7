package qualifier

import "testing"
import "github.com/ncats-translator/trapi-summarizer/internal/domain"

func TestQualifiedPredicateNoQualifiers(t *testing.T) {
	edge := domain.KEdge{Predicate: "biolink:treats"}
	if got := QualifiedPredicate(edge, false); got != "treats" {
		t.Errorf("got %q", got)
	}
	if got := QualifiedPredicate(edge, true); got != "treated_by" {
		t.Errorf("got %q", got)
	}
}

func TestQualifiedPredicateWithObjectQualifiers(t *testing.T) {
	edge := domain.KEdge{
		Predicate: "biolink:affects",
		Qualifiers: []domain.Qualifier{
			{QualifierTypeID: "object_aspect_qualifier", QualifierValue: "activity"},
			{QualifierTypeID: "object_direction_qualifier", QualifierValue: "increased"},
		},
	}
	fwd := QualifiedPredicate(edge, false)
	want := "affects increased activity of"
	if fwd != want {
		t.Errorf("forward = %q, want %q", fwd, want)
	}
	inv := QualifiedPredicate(edge, true)
	wantInv := "increased activity affected_by"
	if inv != wantInv {
		t.Errorf("inverse = %q, want %q", inv, wantInv)
	}
}

func TestQualifiedPredicateRespectsQualifiedPredicateOverride(t *testing.T) {
	edge := domain.KEdge{
		Predicate: "biolink:affects",
		Qualifiers: []domain.Qualifier{
			{QualifierTypeID: "qualified_predicate", QualifierValue: "regulates"},
		},
	}
	if got := QualifiedPredicate(edge, false); got != "regulates" {
		t.Errorf("got %q", got)
	}
}

func TestQualifiedPredicateOmitsUnknownKey(t *testing.T) {
	edge := domain.KEdge{
		Predicate: "biolink:affects",
		Qualifiers: []domain.Qualifier{
			{QualifierTypeID: "some_unrecognized_qualifier", QualifierValue: "x"},
			{QualifierTypeID: "object_aspect_qualifier", QualifierValue: "activity"},
		},
	}
	got := QualifiedPredicate(edge, false)
	want := "affects activity of"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
