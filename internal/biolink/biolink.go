// Package biolink provides the small set of pure helpers the rest of the
// summarization core relies on to work with biolink CURIEs and predicates:
// tagging/untagging, predicate inversion, and predicate validation.
package biolink

import "strings"

const prefix = "biolink:"

// predicateInverses is the registered inverse for every predicate the
// summarizer recognizes, loaded once as immutable reference data (§6).
// Predicates not listed here are treated as symmetric: their own inverse.
var predicateInverses = map[string]string{
	"treats":                    "treated_by",
	"treated_by":                "treats",
	"affects":                   "affected_by",
	"affected_by":                "affects",
	"causes":                    "caused_by",
	"caused_by":                 "causes",
	"contributes_to":            "contributed_to_by",
	"contributed_to_by":         "contributes_to",
	"regulates":                 "regulated_by",
	"regulated_by":              "regulates",
	"increases_activity_of":     "activity_increased_by",
	"activity_increased_by":     "increases_activity_of",
	"decreases_activity_of":     "activity_decreased_by",
	"activity_decreased_by":     "decreases_activity_of",
	"increases_expression_of":   "expression_increased_by",
	"expression_increased_by":   "increases_expression_of",
	"decreases_expression_of":   "expression_decreased_by",
	"expression_decreased_by":   "decreases_expression_of",
	"produces":                  "produced_by",
	"produced_by":               "produces",
	"has_phenotype":             "phenotype_of",
	"phenotype_of":              "has_phenotype",
	"gene_associated_with_condition": "condition_associated_with_gene",
	"condition_associated_with_gene": "gene_associated_with_condition",
	"biomarker_for":             "has_biomarker",
	"has_biomarker":             "biomarker_for",
	"contraindicated_for":       "has_contraindication",
	"has_contraindication":      "contraindicated_for",
}

// symmetric predicates whose inverse is themselves, made explicit so
// isBiolinkPredicate recognizes them without consulting predicateInverses.
var symmetricPredicates = map[string]bool{
	"related_to":       true,
	"interacts_with":    true,
	"correlated_with":  true,
	"coexists_with":    true,
	"associated_with":  true,
	"similar_to":       true,
}

// TagBiolink prefixes a bare biolink element name with "biolink:".
func TagBiolink(name string) string {
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// SanitizeBiolinkElement strips the "biolink:" prefix (if present) and
// normalizes case and spacing: lowercased, spaces collapsed to underscores.
func SanitizeBiolinkElement(s string) string {
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "_")
	return s
}

// InvertBiolinkPredicate returns the registered inverse of p, or p itself
// when the predicate is symmetric or unregistered. An unknown predicate is
// never an error here — it is logged upstream by the caller, per §4.1.
func InvertBiolinkPredicate(p string) string {
	bare := SanitizeBiolinkElement(p)
	if inv, ok := predicateInverses[bare]; ok {
		return inv
	}
	return bare
}

// IsBiolinkPredicate reports whether p is a member of the allowed
// predicate set (either the inverse table or the symmetric set).
func IsBiolinkPredicate(p string) bool {
	bare := SanitizeBiolinkElement(p)
	if bare == "" {
		return false
	}
	if _, ok := predicateInverses[bare]; ok {
		return true
	}
	return symmetricPredicates[bare]
}
