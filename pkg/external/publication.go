package external

import (
	"regexp"
	"strings"
)

// patternRule is one parsed entry of the configured id_patterns list: the
// first rule whose regex matches an evidence id wins, and its named
// capture groups fill in the url template.
type patternRule struct {
	kind     string
	re       *regexp.Regexp
	template string
}

// PatternPublicationResolver implements domain.PublicationResolver by
// classifying publication/evidence IDs against an ordered list of regexes,
// per §6's id_patterns configuration. It performs no network I/O — the
// publications subsystem is explicitly limited to classification and URL
// resolution, never fetching article content.
type PatternPublicationResolver struct {
	rules []patternRule
}

// NewPatternPublicationResolver parses id_patterns entries of the form
// "TYPE|REGEX|URL_TEMPLATE", where URL_TEMPLATE may reference the regex's
// named capture groups as $name. The pipe delimiter is deliberate: both the
// regex and the template routinely need to match or emit a literal colon
// (CURIEs like "PMID:12345", URLs like "https://..."), so ":" cannot double
// as the field separator without truncating those fields. A malformed entry
// is dropped rather than failing the whole resolver — configuration for one
// evidence source should never block classification of the rest.
func NewPatternPublicationResolver(idPatterns []string) *PatternPublicationResolver {
	r := &PatternPublicationResolver{}
	for _, entry := range idPatterns {
		parts := strings.SplitN(entry, "|", 3)
		if len(parts) != 3 {
			continue
		}
		re, err := regexp.Compile(parts[1])
		if err != nil {
			continue
		}
		r.rules = append(r.rules, patternRule{kind: parts[0], re: re, template: parts[2]})
	}
	return r
}

// DefaultIDPatterns is the baseline id_patterns configuration recognizing
// PubMed, PMC, and DOI identifiers.
var DefaultIDPatterns = []string{
	`PMID|^PMID:(?P<id>\d+)$|https://pubmed.ncbi.nlm.nih.gov/$id`,
	`PMC|^PMC:?(?P<id>PMC\d+)$|https://www.ncbi.nlm.nih.gov/pmc/articles/$id`,
	`DOI|^(?:DOI:)?(?P<id>10\.\S+)$|https://doi.org/$id`,
}

// Resolve implements domain.PublicationResolver.
func (r *PatternPublicationResolver) Resolve(id string) (kind string, url string, ok bool) {
	for _, rule := range r.rules {
		match := rule.re.FindStringSubmatch(id)
		if match == nil {
			continue
		}
		return rule.kind, expandTemplate(rule.template, rule.re, match), true
	}
	return "", "", false
}

func expandTemplate(template string, re *regexp.Regexp, match []string) string {
	out := template
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(match) {
			continue
		}
		out = strings.ReplaceAll(out, "$"+name, match[i])
	}
	return out
}
