// Package ruleset implements the attribute-rule DSL (component C): a
// closed set of tagged-variant rule constructors that compile against a
// source TRAPI object into Transforms applied later, during merge, to a
// domain.SummaryObject accumulator.
//
// The teacher's rule engine (a registry of named evaluators run in a fixed
// order against one input) is the shape this package follows; here the
// "evaluators" are rule variants and the "input" is a Source built from one
// knowledge-graph node or edge.
package ruleset

import "github.com/ncats-translator/trapi-summarizer/internal/domain"

// Source is the evaluation context a Rule reads from: the object's simple
// fields (name, description, categories, whatever the caller has already
// computed) plus its raw attribute bag.
type Source struct {
	Fields     map[string]interface{}
	Attributes []domain.Attribute
}

func (s Source) field(key string) (interface{}, bool) {
	if s.Fields == nil {
		return nil, false
	}
	v, ok := s.Fields[key]
	return v, ok
}

// kind tags which DSL primitive a Rule represents.
type kind int

const (
	kindGetProperty kind = iota
	kindTransformProperty
	kindRenameProperty
	kindAggregateProperty
	kindAggregatePropertyWhen
	kindRenameAndTransformAttribute
	kindAggregateAttributes
	kindAggregateAndTransformAttributes
)

// MapFn maps a field or attribute value to another value.
type MapFn func(interface{}) interface{}

// Predicate tests a field or attribute value.
type Predicate func(interface{}) bool

// Rule is a tagged variant over the eight DSL primitives of §4.3. Build one
// with the constructors below; evaluate it against a Source with Compile.
type Rule struct {
	kind    kind
	key     string
	path    string
	tgtKey  string
	fn      MapFn
	pred    Predicate
	attrIDs map[string]bool
}

// GetProperty reads obj[key] and sets it on the accumulator at the same
// key; null (absent from the accumulator) when the source lacks it.
func GetProperty(key string) Rule {
	return Rule{kind: kindGetProperty, key: key, path: key}
}

// TransformProperty reads obj[key], maps it through fn, and sets the result
// at the same key.
func TransformProperty(key string, fn MapFn) Rule {
	return Rule{kind: kindTransformProperty, key: key, path: key, fn: fn}
}

// RenameProperty reads obj[key] and stores it under a dotted path on the
// accumulator.
func RenameProperty(key, path string) Rule {
	return Rule{kind: kindRenameProperty, key: key, path: path}
}

// AggregateProperty appends obj[key] (a scalar becomes a singleton) to the
// list at path, initializing it to [] when the key is absent.
func AggregateProperty(key, path string) Rule {
	return Rule{kind: kindAggregateProperty, key: key, path: path}
}

// AggregatePropertyWhen aggregates obj[key] onto path only when pred holds
// for its value; otherwise it still ensures path exists as [].
func AggregatePropertyWhen(key, path string, pred Predicate) Rule {
	return Rule{kind: kindAggregatePropertyWhen, key: key, path: path, pred: pred}
}

// RenameAndTransformAttribute scans obj.attributes for the first entry
// whose attribute_type_id is attrID, maps its value through fn, and assigns
// the result at path.
func RenameAndTransformAttribute(attrID, path string, fn MapFn) Rule {
	return Rule{kind: kindRenameAndTransformAttribute, key: attrID, path: path, fn: fn}
}

// AggregateAttributes concatenates the values of every attribute whose
// attribute_type_id is in attrIDs into obj[tgtKey].
func AggregateAttributes(attrIDs []string, tgtKey string) Rule {
	return Rule{kind: kindAggregateAttributes, attrIDs: toSet(attrIDs), tgtKey: tgtKey}
}

// AggregateAndTransformAttributes is AggregateAttributes with each matched
// value mapped through fn before concatenation.
func AggregateAndTransformAttributes(attrIDs []string, tgtKey string, fn MapFn) Rule {
	return Rule{kind: kindAggregateAndTransformAttributes, attrIDs: toSet(attrIDs), tgtKey: tgtKey, fn: fn}
}

func toSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// Compile evaluates a Rule against a Source and produces the domain.Transform
// to run later against the merge accumulator. Compile is where the "obj ->
// transform" half of the rule happens; the Transform itself is the "acc ->
// acc" half.
func (r Rule) Compile(src Source) domain.Transform {
	switch r.kind {
	case kindGetProperty:
		v, ok := src.field(r.key)
		return func(acc *domain.SummaryObject) {
			if ok {
				setPath(acc.Fields, r.path, v)
			}
		}
	case kindTransformProperty:
		v, ok := src.field(r.key)
		return func(acc *domain.SummaryObject) {
			if ok {
				setPath(acc.Fields, r.path, r.fn(v))
			}
		}
	case kindRenameProperty:
		v, ok := src.field(r.key)
		return func(acc *domain.SummaryObject) {
			if ok {
				setPath(acc.Fields, r.path, v)
			}
		}
	case kindAggregateProperty:
		v, ok := src.field(r.key)
		return func(acc *domain.SummaryObject) {
			ensurePath(acc.Fields, r.path)
			if ok {
				appendPath(acc.Fields, r.path, v)
			}
		}
	case kindAggregatePropertyWhen:
		v, ok := src.field(r.key)
		matched := ok && r.pred(v)
		return func(acc *domain.SummaryObject) {
			ensurePath(acc.Fields, r.path)
			if matched {
				appendPath(acc.Fields, r.path, v)
			}
		}
	case kindRenameAndTransformAttribute:
		val, found := firstAttribute(src.Attributes, r.key)
		return func(acc *domain.SummaryObject) {
			if found {
				setPath(acc.Fields, r.path, r.fn(val))
			}
		}
	case kindAggregateAttributes:
		values := matchingAttributeValues(src.Attributes, r.attrIDs)
		return func(acc *domain.SummaryObject) {
			ensurePath(acc.Fields, r.tgtKey)
			for _, v := range values {
				appendPath(acc.Fields, r.tgtKey, v)
			}
		}
	case kindAggregateAndTransformAttributes:
		values := matchingAttributeValues(src.Attributes, r.attrIDs)
		return func(acc *domain.SummaryObject) {
			ensurePath(acc.Fields, r.tgtKey)
			for _, v := range values {
				appendPath(acc.Fields, r.tgtKey, r.fn(v))
			}
		}
	default:
		return func(*domain.SummaryObject) {}
	}
}

func firstAttribute(attrs []domain.Attribute, attrID string) (interface{}, bool) {
	for _, a := range attrs {
		if a.AttributeTypeID == attrID {
			return a.Value, true
		}
	}
	return nil, false
}

// matchingAttributeValues collects the values of every attribute whose
// attribute_type_id is in attrIDs, flattening any attribute whose own value
// is already a list (TRAPI commonly bundles every publication/snippet ID
// for an edge into one attribute's list value rather than one attribute
// per ID).
func matchingAttributeValues(attrs []domain.Attribute, attrIDs map[string]bool) []interface{} {
	var out []interface{}
	for _, a := range attrs {
		if !attrIDs[a.AttributeTypeID] {
			continue
		}
		if list, ok := a.Value.([]interface{}); ok {
			out = append(out, list...)
		} else {
			out = append(out, a.Value)
		}
	}
	return out
}

// Set is an ordered list of rules; Compile runs every rule against the same
// Source to build the full transform list a fragment carries for one
// object.
type Set []Rule

// Compile evaluates every rule in the set against src, in order.
func (s Set) Compile(src Source) []domain.Transform {
	out := make([]domain.Transform, 0, len(s))
	for _, r := range s {
		out = append(out, r.Compile(src))
	}
	return out
}
