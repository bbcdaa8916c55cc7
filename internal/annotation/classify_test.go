package annotation

import (
	"testing"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		ann  domain.Annotation
		want domain.AnnotationClass
	}{
		{"disease", domain.Annotation{"disease_ontology": map[string]interface{}{}}, domain.ClassDisease},
		{"chemical via chebi", domain.Annotation{"chebi": map[string]interface{}{}}, domain.ClassChemical},
		{"chemical via chembl", domain.Annotation{"chembl": map[string]interface{}{}}, domain.ClassChemical},
		{"gene", domain.Annotation{"symbol": "BRCA1"}, domain.ClassGene},
		{"unknown", domain.Annotation{"foo": "bar"}, domain.ClassUnknown},
		{"nil", nil, domain.ClassUnknown},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ann); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.ann, got, tt.want)
			}
		})
	}
}

func TestGetDescriptionDisease(t *testing.T) {
	ann := domain.Annotation{
		"disease_ontology": map[string]interface{}{
			"def": "A disease that [has citation].",
		},
	}
	got, ok := GetDescription(domain.ClassDisease, ann)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != "A disease that" {
		t.Errorf("got %q", got)
	}
}

func TestGetDescriptionChemicalPrefersUnii(t *testing.T) {
	ann := domain.Annotation{
		"unii":  map[string]interface{}{"ncit_description": "from unii"},
		"chebi": map[string]interface{}{"definition": "from chebi"},
	}
	got, ok := GetDescription(domain.ClassChemical, ann)
	if !ok || got != "from unii" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestGetNamesMergesAndDedupes(t *testing.T) {
	ann := domain.Annotation{
		"ndc": []interface{}{
			map[string]interface{}{"proprietaryname": "Tylenol", "nonproprietaryname": "Acetaminophen"},
			map[string]interface{}{"proprietaryname": "TYLENOL"},
		},
	}
	names, ok := GetNames(domain.ClassChemical, ann)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(names.Commercial) != 1 || names.Commercial[0] != "tylenol" {
		t.Errorf("commercial = %v", names.Commercial)
	}
	if len(names.Generic) != 1 || names.Generic[0] != "acetaminophen" {
		t.Errorf("generic = %v", names.Generic)
	}
}

func TestGetFdaApprovalDefault(t *testing.T) {
	got, ok := GetFdaApproval(domain.ClassChemical, domain.Annotation{})
	if !ok || got != 0 {
		t.Errorf("got %d, %v", got, ok)
	}
}

func TestGetOtcMapping(t *testing.T) {
	ann := domain.Annotation{"chembl": map[string]interface{}{"availability_type": float64(2)}}
	got, ok := GetOtc(domain.ClassChemical, ann)
	if !ok || got != "Over the counter" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestGetSpeciesKnownAndUnknown(t *testing.T) {
	human, ok := GetSpecies(domain.ClassGene, domain.Annotation{"taxid": "9606"})
	if !ok || human != "Human" {
		t.Errorf("got %q, %v", human, ok)
	}
	other, ok := GetSpecies(domain.ClassGene, domain.Annotation{"taxid": "10090"})
	if !ok || other != "" {
		t.Errorf("expected empty species for unmapped taxid, got %q", other)
	}
}

func TestGetCuriesMergesBothSources(t *testing.T) {
	ann := domain.Annotation{
		"mondo":            map[string]interface{}{"xrefs": map[string]interface{}{"mesh": "D000001"}},
		"disease_ontology": map[string]interface{}{"xrefs": map[string]interface{}{"mesh": []interface{}{"D000002"}}},
	}
	curies, ok := GetCuries(domain.ClassDisease, ann)
	if !ok {
		t.Fatal("expected ok")
	}
	want := []string{"MESH:D000001", "MESH:D000002"}
	if len(curies) != len(want) || curies[0] != want[0] || curies[1] != want[1] {
		t.Errorf("got %v, want %v", curies, want)
	}
}

func TestGetChebiRolesDropsUnrecognized(t *testing.T) {
	ann := domain.Annotation{
		"chebi": map[string]interface{}{
			"relationship": map[string]interface{}{
				"has_role": []interface{}{"analgesic", "unknown_role"},
			},
		},
	}
	lookup := func(role string) (string, string, bool) {
		if role == "analgesic" {
			return "CHEBI:35480", "analgesic", true
		}
		return "", "", false
	}
	roles, ok := GetChebiRoles(domain.ClassChemical, ann, lookup)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(roles) != 1 || roles[0].Name != "analgesic" {
		t.Errorf("got %v", roles)
	}
}
