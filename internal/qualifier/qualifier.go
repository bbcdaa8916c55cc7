// Package qualifier builds human-readable qualified-predicate strings from
// a kedge's qualifier bag (component G), in both forward and inverse form.
package qualifier

import (
	"strings"

	"github.com/ncats-translator/trapi-summarizer/internal/biolink"
	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// qualifierOrder is the fixed composition order and prefix for each
// recognized qualifier sub-key, per §4.7.
var qualifierOrder = []struct {
	key    string
	prefix string
}{
	{"direction", ""},
	{"aspect", ""},
	{"form_or_variant", "of a "},
	{"part", "of the "},
	{"derivative", ""},
}

type buckets struct {
	subject            map[string]string
	object             map[string]string
	qualifiedPredicate string
	hasQualifiedPred   bool
}

func parse(qs []domain.Qualifier) buckets {
	b := buckets{subject: map[string]string{}, object: map[string]string{}}
	for _, q := range qs {
		key := biolink.SanitizeBiolinkElement(strings.TrimSuffix(q.QualifierTypeID, "_qualifier"))
		value := normalizeValue(q.QualifierValue)

		switch {
		case key == "qualified_predicate":
			b.qualifiedPredicate = value
			b.hasQualifiedPred = true
		case strings.HasPrefix(key, "subject_"):
			b.subject[strings.TrimPrefix(key, "subject_")] = value
		case strings.HasPrefix(key, "object_"):
			b.object[strings.TrimPrefix(key, "object_")] = value
		default:
			// Unknown qualifier key: omitted from the composed predicate, per §7.
		}
	}
	return b
}

func normalizeValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.ReplaceAll(v, "_", " ")
}

func compose(bucket map[string]string) string {
	var pieces []string
	for _, o := range qualifierOrder {
		if v, ok := bucket[o.key]; ok && v != "" {
			pieces = append(pieces, o.prefix+v)
		}
	}
	return strings.Join(pieces, " ")
}

func joinFinal(subjStr, predicate, objStr string) string {
	pieces := make([]string, 0, 3)
	if subjStr != "" {
		pieces = append(pieces, subjStr)
	}
	pieces = append(pieces, predicate)
	if objStr != "" {
		pieces = append(pieces, objStr)
	}
	s := strings.Join(pieces, " ")
	if objStr != "" {
		s += " of"
	}
	return s
}

// QualifiedPredicate composes the human-readable qualified-predicate string
// for a kedge. When inverted is true, subject/object qualifier strings are
// swapped and the base predicate is inverted.
func QualifiedPredicate(edge domain.KEdge, inverted bool) string {
	if len(edge.Qualifiers) == 0 {
		pred := biolink.SanitizeBiolinkElement(edge.Predicate)
		if inverted {
			return biolink.InvertBiolinkPredicate(pred)
		}
		return pred
	}

	b := parse(edge.Qualifiers)
	base := biolink.SanitizeBiolinkElement(edge.Predicate)
	if b.hasQualifiedPred {
		base = b.qualifiedPredicate
	}

	subjStr := compose(b.subject)
	objStr := compose(b.object)

	if inverted {
		return joinFinal(objStr, biolink.InvertBiolinkPredicate(base), subjStr)
	}
	return joinFinal(subjStr, base, objStr)
}
