// Package fragment folds one agent's TRAPI results into a SummaryFragment
// (component H): for each result, build its reduced graph, enumerate
// bounded-length paths, normalize them against the canonical-ID resolver
// and the qualified-predicate builder, and accumulate the node/edge
// transform lists the merger will later apply.
package fragment

import (
	"github.com/ncats-translator/trapi-summarizer/internal/canon"
	"github.com/ncats-translator/trapi-summarizer/internal/domain"
	"github.com/ncats-translator/trapi-summarizer/internal/pathfinder"
	"github.com/ncats-translator/trapi-summarizer/internal/qualifier"
	"github.com/ncats-translator/trapi-summarizer/internal/rgraph"
	"github.com/ncats-translator/trapi-summarizer/internal/ruleset"
)

// NodeRules is the rule set applied to every contributing node. It
// accumulates each agent's local name into "names" and local CURIE
// spelling into "curies", and records the node's categories.
var NodeRules = ruleset.Set{
	ruleset.AggregatePropertyWhen("name", "names", nonEmptyString),
	ruleset.GetProperty("categories"),
	ruleset.AggregateProperty("curie", "curies"),
}

// EdgeRules is the rule set applied to every contributing edge. Publication
// and snippet attributes are carried through untouched here; component J
// (the publication splicer) and the merger interpret and strip them.
var EdgeRules = ruleset.Set{
	ruleset.GetProperty("subject"),
	ruleset.GetProperty("object"),
	ruleset.GetProperty("predicate"),
	ruleset.AggregateAttributes([]string{domain.AttrPublications}, "publications"),
	ruleset.AggregateAttributes([]string{domain.AttrSnippets}, "snippets"),
}

func nonEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// Build folds every result of message into a SummaryFragment, given a
// canonical-ID resolver already built across all agents and the maximum
// hop count configured for the pipeline. A result that fails to bind
// (component E) contributes nothing — the recover-and-continue policy of
// §7 — and is simply skipped.
func Build(message domain.TrapiMessage, resolver *canon.Resolver, maxHops int) domain.SummaryFragment {
	frag := domain.SummaryFragment{Scores: map[string][]float64{}}

	for _, result := range message.Results {
		buildResult(result, message.KnowledgeGraph, resolver, maxHops, &frag)
	}
	return frag
}

func buildResult(result domain.Result, kg domain.KnowledgeGraph, resolver *canon.Resolver, maxHops int, frag *domain.SummaryFragment) {
	rg, ok := rgraph.Build(result, kg)
	if !ok {
		return
	}

	drugBindings := result.NodeBindings[domain.SubjectNodeKey]
	diseaseBindings := result.NodeBindings[domain.ObjectNodeKey]
	if len(drugBindings) == 0 || len(diseaseBindings) == 0 {
		return
	}
	drug := drugBindings[0].ID
	disease := diseaseBindings[0].ID

	canonicalize := func(curie string) (string, bool) { return resolver.Canonicalize(curie) }

	rawPaths := pathfinder.Find(rg, kg.Edges, drug, disease, maxHops, canonicalize)

	canonDrug, ok := canonicalize(drug)
	if !ok {
		return
	}

	score := 0.0
	if result.NormalizedScore != nil {
		score = *result.NormalizedScore
	}
	frag.Scores[canonDrug] = append(frag.Scores[canonDrug], score)

	seenNodes := map[string]bool{}
	seenEdges := map[string]bool{}

	for _, raw := range rawPaths {
		path := make(domain.Path, 0, len(raw.Nodes)+len(raw.Steps))
		for i, rnode := range raw.Nodes {
			ckey, ok := canonicalize(rnode)
			if !ok {
				// pathfinder already filters these out, but stay defensive.
				continue
			}
			path = append(path, ckey)
			if !seenNodes[rnode] {
				seenNodes[rnode] = true
				frag.Nodes = append(frag.Nodes, domain.NodeTransformSet{
					Key:        ckey,
					Transforms: NodeRules.Compile(nodeSource(kg.Nodes[rnode], rnode)),
				})
			}
			if i < len(raw.Steps) {
				step := raw.Steps[i]
				edge := kg.Edges[step.EdgeID]
				qkey := qualifier.QualifiedPredicate(edge, step.Inverted)
				qkeyInverse := qualifier.QualifiedPredicate(edge, !step.Inverted)
				path = append(path, qkey)

				edgeSeenKey := step.EdgeID
				if step.Inverted {
					edgeSeenKey += "#inv"
				}
				if !seenEdges[edgeSeenKey] {
					seenEdges[edgeSeenKey] = true
					subj, obj := edge.Subject, edge.Object
					if step.Inverted {
						subj, obj = obj, subj
					}
					canonSubj, _ := canonicalize(subj)
					canonObj, _ := canonicalize(obj)
					frag.Edges = append(frag.Edges, domain.EdgeTransformSet{
						Key:        qkey,
						InverseKey: qkeyInverse,
						Transforms: EdgeRules.Compile(edgeSource(edge, canonSubj, canonObj, qkey)),
					})
				}
			}
		}
		frag.Paths = append(frag.Paths, domain.FragmentPath{
			Drug: canonDrug,
			Key:  domain.ComputePathKey(path),
			Path: path,
		})
	}
}

func nodeSource(node domain.KNode, localCurie string) ruleset.Source {
	return ruleset.Source{
		Fields: map[string]interface{}{
			"name":       node.Name,
			"categories": node.Categories,
			"curie":      localCurie,
		},
		Attributes: node.Attributes,
	}
}

func edgeSource(edge domain.KEdge, subject, object, predicate string) ruleset.Source {
	return ruleset.Source{
		Fields: map[string]interface{}{
			"subject":   subject,
			"object":    object,
			"predicate": predicate,
		},
		Attributes: edge.Attributes,
	}
}
