package domain

// Attribute is a single TRAPI attribute entry on a node or edge.
type Attribute struct {
	AttributeTypeID string      `json:"attribute_type_id"`
	Value           interface{} `json:"value"`
}

// Qualifier is a single biolink qualifier entry on an edge.
type Qualifier struct {
	QualifierTypeID string `json:"qualifier_type_id"`
	QualifierValue  string `json:"qualifier_value"`
}

// KNode is a TRAPI knowledge-graph node.
type KNode struct {
	Name       string      `json:"name,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// KEdge is a TRAPI knowledge-graph edge.
type KEdge struct {
	Subject    string      `json:"subject"`
	Object     string      `json:"object"`
	Predicate  string      `json:"predicate"`
	Qualifiers []Qualifier `json:"qualifiers,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// KnowledgeGraph is the TRAPI knowledge_graph object: nodes and edges keyed
// by CURIE / edge ID respectively.
type KnowledgeGraph struct {
	Nodes map[string]KNode `json:"nodes"`
	Edges map[string]KEdge `json:"edges"`
}

// BindingElement is one element of a node or edge binding list.
type BindingElement struct {
	ID string `json:"id"`
}

// Result is one TRAPI result: node/edge bindings keyed by query-graph key,
// plus an optional aggregate score contributed by the answering agent.
type Result struct {
	NodeBindings    map[string][]BindingElement `json:"node_bindings"`
	EdgeBindings    map[string][]BindingElement `json:"edge_bindings"`
	NormalizedScore *float64                    `json:"normalized_score,omitempty"`
}

// TrapiMessage is the body of a single agent's response: a knowledge graph
// plus the results bound against it.
type TrapiMessage struct {
	KnowledgeGraph KnowledgeGraph `json:"knowledge_graph"`
	Results        []Result       `json:"results"`
}

// AgentAnswer pairs one upstream reasoner's identity with the message it
// returned for the query.
type AgentAnswer struct {
	Agent   string        `json:"agent"`
	Message TrapiMessage  `json:"message"`
}

// Rgraph is the reduced, per-result graph: the subset of a TRAPI result's
// bound nodes and edges whose predicates are recognized biolink predicates.
type Rgraph struct {
	Nodes []string
	Edges []string
}

// query-graph binding keys fixed by convention: sn is the subject/chemical
// node, on is the object/disease-or-gene node.
const (
	SubjectNodeKey = "sn"
	ObjectNodeKey  = "on"
)

// well-known attribute_type_id values consulted by the canonical-ID
// resolver and the publication splicer.
const (
	AttrSameAs       = "biolink:same_as"
	AttrXref         = "biolink:xref"
	AttrPublications = "biolink:publications"
	AttrSnippets     = "biolink:snippets"
)
