package external

import "testing"

func TestPatternPublicationResolverMatchesPMID(t *testing.T) {
	r := NewPatternPublicationResolver(DefaultIDPatterns)

	kind, url, ok := r.Resolve("PMID:12345")
	if !ok {
		t.Fatal("expected PMID to resolve")
	}
	if kind != "PMID" {
		t.Errorf("expected kind PMID, got %q", kind)
	}
	if url != "https://pubmed.ncbi.nlm.nih.gov/12345" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestPatternPublicationResolverMatchesDOI(t *testing.T) {
	r := NewPatternPublicationResolver(DefaultIDPatterns)

	kind, url, ok := r.Resolve("10.1038/nrg1315")
	if !ok {
		t.Fatal("expected DOI to resolve")
	}
	if kind != "DOI" {
		t.Errorf("expected kind DOI, got %q", kind)
	}
	if url != "https://doi.org/10.1038/nrg1315" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestPatternPublicationResolverUnmatchedID(t *testing.T) {
	r := NewPatternPublicationResolver(DefaultIDPatterns)

	if _, _, ok := r.Resolve("not-an-id"); ok {
		t.Error("expected unmatched id to fail resolution")
	}
}

func TestNewPatternPublicationResolverDropsMalformedEntries(t *testing.T) {
	r := NewPatternPublicationResolver([]string{
		"malformed-entry-missing-pipes",
		"BAD|[invalid-regex|url",
		`PMID|^PMID:(?P<id>\d+)$|https://pubmed.ncbi.nlm.nih.gov/$id`,
	})
	if len(r.rules) != 1 {
		t.Fatalf("expected only the well-formed entry to survive, got %d rules", len(r.rules))
	}
}
