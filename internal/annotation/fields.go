package annotation

import (
	"strconv"
	"strings"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// ChemicalNames is the return shape of GetNames for a chemical annotation.
type ChemicalNames struct {
	Commercial []string
	Generic    []string
}

// RoleLookup resolves a CHEBI role identifier to a display name. It is an
// external collaborator (not part of the summarization core) because the
// high-level role vocabulary is maintained outside this repository.
type RoleLookup func(role string) (id, name string, ok bool)

// Role is one recognized CHEBI "has_role" relationship.
type Role struct {
	ID   string
	Name string
}

// GetDescription extracts the free-text description for an annotation,
// dispatching on class. Unsupported classes return ("", false).
func GetDescription(class domain.AnnotationClass, ann domain.Annotation) (string, bool) {
	switch class {
	case domain.ClassDisease:
		def, ok := getString(ann, "disease_ontology", "def")
		if !ok {
			return "", false
		}
		if idx := strings.IndexByte(def, '['); idx >= 0 {
			def = def[:idx]
		}
		return strings.TrimSpace(def), true
	case domain.ClassChemical:
		if d, ok := getString(ann, "unii", "ncit_description"); ok {
			return d, true
		}
		if d, ok := getString(ann, "chebi", "definition"); ok {
			return d, true
		}
		return "", false
	case domain.ClassGene:
		if s, ok := getString(ann, "summary"); ok {
			return s, true
		}
		return "", false
	default:
		return "", false
	}
}

// GetNames extracts class-appropriate display names. Only chemical
// annotations define names; other classes return (nil, false).
func GetNames(class domain.AnnotationClass, ann domain.Annotation) (*ChemicalNames, bool) {
	if class != domain.ClassChemical {
		return nil, false
	}
	entries := asMapSlice(ann["ndc"])
	out := &ChemicalNames{}
	seenCommercial := map[string]bool{}
	seenGeneric := map[string]bool{}
	for _, e := range entries {
		if v, ok := e["proprietaryname"].(string); ok {
			lv := strings.ToLower(v)
			if !seenCommercial[lv] {
				seenCommercial[lv] = true
				out.Commercial = append(out.Commercial, lv)
			}
		}
		if v, ok := e["nonproprietaryname"].(string); ok {
			lv := strings.ToLower(v)
			if !seenGeneric[lv] {
				seenGeneric[lv] = true
				out.Generic = append(out.Generic, lv)
			}
		}
	}
	return out, true
}

// GetCuries extracts cross-referenced CURIEs. Only disease annotations
// define this (MESH cross-references); other classes return (nil, false).
func GetCuries(class domain.AnnotationClass, ann domain.Annotation) ([]string, bool) {
	if class != domain.ClassDisease {
		return nil, false
	}
	var out []string
	for _, mesh := range asStringSlice(firstOf(ann, []string{"mondo", "xrefs", "mesh"}, []string{"disease_ontology", "xrefs", "mesh"})) {
		out = append(out, "MESH:"+mesh)
	}
	return out, true
}

// firstOf walks every path in order and merges the string values of each
// one that resolves (mondo.xrefs.mesh, then disease_ontology.xrefs.mesh):
// both sources are kept, not just the first hit; missing paths are skipped.
func firstOf(ann domain.Annotation, paths ...[]string) interface{} {
	var merged []interface{}
	for _, p := range paths {
		if v, ok := get(ann, p...); ok {
			switch t := v.(type) {
			case []interface{}:
				merged = append(merged, t...)
			case string:
				merged = append(merged, t)
			}
		}
	}
	return merged
}

// GetFdaApproval extracts the maximum clinical-trial phase reached.
// Defined only for chemicals; default is 0.
func GetFdaApproval(class domain.AnnotationClass, ann domain.Annotation) (int, bool) {
	if class != domain.ClassChemical {
		return 0, false
	}
	raw, ok := get(ann, "chembl", "max_phase")
	if !ok {
		return 0, true
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, true
		}
		return n, true
	default:
		return 0, true
	}
}

// GetChebiRoles lifts chebi.relationship.has_role through lookup, dropping
// any role the external vocabulary doesn't recognize. Defined only for
// chemicals.
func GetChebiRoles(class domain.AnnotationClass, ann domain.Annotation, lookup RoleLookup) ([]Role, bool) {
	if class != domain.ClassChemical {
		return nil, false
	}
	raw, ok := get(ann, "chebi", "relationship", "has_role")
	if !ok {
		return nil, true
	}
	var out []Role
	for _, r := range asStringSlice(raw) {
		id, name, ok := lookup(r)
		if !ok {
			continue
		}
		out = append(out, Role{ID: id, Name: name})
	}
	return out, true
}

// GetDrugIndications collects mesh_id from every chembl.drug_indications
// entry. Defined only for chemicals.
func GetDrugIndications(class domain.AnnotationClass, ann domain.Annotation) ([]string, bool) {
	if class != domain.ClassChemical {
		return nil, false
	}
	var out []string
	for _, e := range asMapSlice(get2(ann, "chembl", "drug_indications")) {
		if id, ok := e["mesh_id"].(string); ok {
			out = append(out, id)
		}
	}
	return out, true
}

func get2(ann domain.Annotation, path ...string) interface{} {
	v, _ := get(ann, path...)
	return v
}

// otcLabels maps chembl.availability_type to a display label, per §4.2.
var otcLabels = map[string]string{
	"2":  "Over the counter",
	"1":  "Prescription only",
	"0":  "Discontinued",
	"-2": "Withdrawn",
}

const otcOther = "Other"

// GetOtc maps a chemical's chembl.availability_type to a display label.
// Defined only for chemicals.
func GetOtc(class domain.AnnotationClass, ann domain.Annotation) (string, bool) {
	if class != domain.ClassChemical {
		return "", false
	}
	raw, ok := get(ann, "chembl", "availability_type")
	if !ok {
		return otcOther, true
	}
	key := toKeyString(raw)
	if label, ok := otcLabels[key]; ok {
		return label, true
	}
	return otcOther, true
}

func toKeyString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// speciesByTaxID is the fixed taxonomy-ID-to-name map used for gene
// annotations, per §4.2.
var speciesByTaxID = map[string]string{
	"9606": "Human",
}

// GetSpecies maps a gene annotation's taxid to a species name. Defined only
// for genes.
func GetSpecies(class domain.AnnotationClass, ann domain.Annotation) (string, bool) {
	if class != domain.ClassGene {
		return "", false
	}
	raw, ok := get(ann, "taxid")
	if !ok {
		return "", true
	}
	key := toKeyString(raw)
	if name, ok := speciesByTaxID[key]; ok {
		return name, true
	}
	return "", true
}
