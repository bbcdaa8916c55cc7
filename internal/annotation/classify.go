// Package annotation classifies opaque external annotation records and
// extracts the per-class fields the summarizer's node rules need
// (component B). Every exported function here is a pure function over a
// domain.Annotation; none of them perform I/O.
package annotation

import "github.com/ncats-translator/trapi-summarizer/internal/domain"

// Classify determines which biolink category an annotation belongs to by
// the presence of its key fields: disease_ontology -> disease; any of
// chebi/chembl/ndc -> chemical; symbol -> gene.
func Classify(ann domain.Annotation) domain.AnnotationClass {
	if ann == nil {
		return domain.ClassUnknown
	}
	if _, ok := ann["disease_ontology"]; ok {
		return domain.ClassDisease
	}
	if hasAny(ann, "chebi", "chembl", "ndc") {
		return domain.ClassChemical
	}
	if _, ok := ann["symbol"]; ok {
		return domain.ClassGene
	}
	return domain.ClassUnknown
}

func hasAny(ann domain.Annotation, keys ...string) bool {
	for _, k := range keys {
		if _, ok := ann[k]; ok {
			return true
		}
	}
	return false
}

// get navigates a dotted path through nested map[string]interface{} /
// []interface{} values produced by decoding JSON, returning (nil, false)
// the moment any segment is missing or of the wrong shape.
func get(v interface{}, path ...string) (interface{}, bool) {
	cur := v
	for _, seg := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			ann, isAnn := cur.(domain.Annotation)
			if !isAnn {
				return nil, false
			}
			m = ann
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func getString(v interface{}, path ...string) (string, bool) {
	raw, ok := get(v, path...)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// asStringSlice coerces a JSON-decoded value into a string slice: a single
// string becomes a singleton, a []interface{} of strings is filtered to its
// string members, anything else yields nil.
func asStringSlice(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// asMapSlice coerces a JSON-decoded value into a slice of object entries: a
// single object becomes a singleton, a []interface{} of objects is returned
// as-is, anything else yields nil.
func asMapSlice(v interface{}) []map[string]interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{t}
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(t))
		for _, e := range t {
			if m, ok := e.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
