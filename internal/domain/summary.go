package domain

import "encoding/json"

func jsonMarshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// SummaryObject is the mutable accumulator a Transform writes into. Both
// node and edge summaries share this shape because the rule DSL (§4.3 of
// the attribute-aggregation design) is polymorphic over "some TRAPI object
// with attributes" — only the rule sets differ between nodes and edges.
type SummaryObject struct {
	Key    string
	Fields map[string]interface{}
	Aras   []string
}

// NewSummaryObject returns an accumulator ready to receive transforms.
func NewSummaryObject(key string) *SummaryObject {
	return &SummaryObject{Key: key, Fields: map[string]interface{}{}}
}

// MarshalJSON flattens Fields and Aras into a single JSON object, so a
// SummaryObject serializes the same way whether it started life as a node
// or an edge summary.
func (o *SummaryObject) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(o.Fields)+1)
	for k, v := range o.Fields {
		out[k] = v
	}
	out["aras"] = o.Aras
	return jsonMarshal(out)
}

// Transform is a pure mutation applied to a SummaryObject accumulator. It is
// produced by a Rule (internal/ruleset) and never reads or writes anything
// outside the accumulator it is handed.
type Transform func(acc *SummaryObject)

// NodeTransformSet is the set of transforms a single agent's knowledge-graph
// node contributes, keyed by the node's canonical key.
type NodeTransformSet struct {
	Key        string
	Transforms []Transform
}

// EdgeTransformSet is the set of transforms a single agent's knowledge-graph
// edge contributes, keyed by its qualified-predicate path key. InverseKey is
// the qualified-predicate key of the same physical edge traversed in the
// opposite direction, precomputed so the merger can synthesize it without
// needing the original kedge.
type EdgeTransformSet struct {
	Key        string
	InverseKey string
	Transforms []Transform
}

// Path is an odd-length walk [node, edge, node, edge, ..., node] with
// canonicalized node keys and qualified-predicate edge keys.
type Path []string

// PathKey is the stable content-hash identity of a Path.
type PathKey string

// PathRecord is a paths-table entry: the literal subgraph plus the set of
// agents that contributed a path yielding this key.
type PathRecord struct {
	Subgraph Path     `json:"subgraph"`
	Aras     []string `json:"aras"`
}

// SummaryFragment is the per-agent intermediate produced by folding every
// result of that agent's message (component H).
type SummaryFragment struct {
	Paths  []FragmentPath
	Nodes  []NodeTransformSet
	Edges  []EdgeTransformSet
	Scores map[string][]float64
}

// FragmentPath pairs a normalized path with the canonical drug (subject)
// CURIE that walk starts from, ready to be split into results/paths during
// merge.
type FragmentPath struct {
	Drug string
	Key  PathKey
	Path Path
}

// CondensedSummary pairs an agent identifier with the fragment it produced.
type CondensedSummary struct {
	Agent    string
	Fragment SummaryFragment
}

// ResultEntry is a finished, merged result: one drug's aggregate score and
// the set of paths it was observed on.
type ResultEntry struct {
	Subject   string   `json:"subject"`
	Object    string   `json:"object"`
	DrugName  string   `json:"drug_name"`
	Paths     []PathKey `json:"paths"`
	Score     float64  `json:"score"`
}

// PublicationEntry is one resolved publication record spliced out of edge
// attributes (component J).
type PublicationEntry struct {
	Type    string  `json:"type"`
	URL     string  `json:"url"`
	Snippet *string `json:"snippet"`
	Pubdate *string `json:"pubdate"`
}

// Meta carries the request echo and the set of agents that contributed.
type Meta struct {
	QID  string   `json:"qid"`
	Aras []string `json:"aras"`
}

// FinalSummary is the complete, deduplicated, front-end-ready output of the
// summarization core (component I).
type FinalSummary struct {
	Meta         Meta                         `json:"meta"`
	Results      []ResultEntry                `json:"results"`
	Paths        map[PathKey]PathRecord        `json:"paths"`
	Nodes        map[string]*SummaryObject     `json:"nodes"`
	Edges        map[string]*SummaryObject     `json:"edges"`
	Publications map[string]PublicationEntry   `json:"publications"`
}

// Annotation is an opaque, semi-structured external annotation record for a
// single CURIE, classified by the presence of its key fields (component B).
type Annotation map[string]interface{}

// AnnotationClass identifies which per-class extraction rules apply to an
// Annotation.
type AnnotationClass int

const (
	ClassUnknown AnnotationClass = iota
	ClassDisease
	ClassChemical
	ClassGene
)
