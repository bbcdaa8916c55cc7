// Package summary implements the summary merger (component I) and the
// publication splicer (component J): together they reduce every agent's
// SummaryFragment into one deduplicated, front-end-ready FinalSummary.
package summary

import (
	"sort"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// Merge reduces condensed, in agent-insertion order, into a FinalSummary.
// resolver is the external publication-ID classifier used by the splicer;
// a nil resolver is treated as "nothing resolves" (every publication ID is
// dropped), which keeps Merge usable in tests that don't care about
// publications.
func Merge(qid string, condensed []domain.CondensedSummary, resolver domain.PublicationResolver) domain.FinalSummary {
	nodes := map[string]*domain.SummaryObject{}
	edges := map[string]*domain.SummaryObject{}
	pathsTable := map[domain.PathKey]*domain.PathRecord{}
	edgeInverseKeys := map[string]string{}
	resultPaths := map[string][]domain.PathKey{}
	scores := map[string][]float64{}

	var aras []string
	arasSeen := map[string]bool{}
	var resultOrder []string
	resultSeen := map[string]bool{}

	for _, cs := range condensed {
		agent := cs.Agent
		if !arasSeen[agent] {
			arasSeen[agent] = true
			aras = append(aras, agent)
		}
		frag := cs.Fragment

		for _, fp := range frag.Paths {
			if !resultSeen[fp.Drug] {
				resultSeen[fp.Drug] = true
				resultOrder = append(resultOrder, fp.Drug)
			}
			resultPaths[fp.Drug] = append(resultPaths[fp.Drug], fp.Key)

			if pr, ok := pathsTable[fp.Key]; ok {
				pr.Aras = append(pr.Aras, agent)
			} else {
				pathsTable[fp.Key] = &domain.PathRecord{Subgraph: fp.Path, Aras: []string{agent}}
			}
		}

		for _, nts := range frag.Nodes {
			obj, ok := nodes[nts.Key]
			if !ok {
				obj = domain.NewSummaryObject(nts.Key)
				nodes[nts.Key] = obj
			}
			for _, tr := range nts.Transforms {
				tr(obj)
				obj.Aras = append(obj.Aras, agent)
			}
		}

		for _, ets := range frag.Edges {
			obj, ok := edges[ets.Key]
			if !ok {
				obj = domain.NewSummaryObject(ets.Key)
				edges[ets.Key] = obj
			}
			for _, tr := range ets.Transforms {
				tr(obj)
				obj.Aras = append(obj.Aras, agent)
			}
			edgeInverseKeys[ets.Key] = ets.InverseKey
		}

		for drug, list := range frag.Scores {
			scores[drug] = append(scores[drug], list...)
		}
	}

	for _, pr := range pathsTable {
		pr.Aras = dedupeStrings(pr.Aras)
	}
	for key, n := range nodes {
		n.Aras = dedupeStrings(n.Aras)
		dedupeFields(n.Fields)
		ensureNonEmptyStringList(n.Fields, "names", key)
		ensureNonEmptyStringList(n.Fields, "curies", key)
	}
	for _, e := range edges {
		e.Aras = dedupeStrings(e.Aras)
		dedupeFields(e.Fields)
	}

	synthesizeInverseEdges(edges, edgeInverseKeys)

	publications := splicePublications(edges, resolver)

	results := make([]domain.ResultEntry, 0, len(resultOrder))
	for _, drug := range resultOrder {
		keys := dedupePathKeys(resultPaths[drug])
		if len(keys) == 0 {
			continue
		}
		sortPathKeys(keys, pathsTable)

		firstKey := resultPaths[drug][0]
		firstRecord := pathsTable[firstKey]
		object := ""
		if len(firstRecord.Subgraph) > 0 {
			object = firstRecord.Subgraph[len(firstRecord.Subgraph)-1]
		}

		drugName := drug
		if n, ok := nodes[drug]; ok {
			if names, ok := n.Fields["names"].([]interface{}); ok && len(names) > 0 {
				if s, ok := names[0].(string); ok {
					drugName = s
				}
			}
		}

		results = append(results, domain.ResultEntry{
			Subject:  drug,
			Object:   object,
			DrugName: drugName,
			Paths:    keys,
			Score:    mean(scores[drug]),
		})
	}

	finalPaths := make(map[domain.PathKey]domain.PathRecord, len(pathsTable))
	for k, v := range pathsTable {
		finalPaths[k] = *v
	}

	if aras == nil {
		aras = []string{}
	}

	return domain.FinalSummary{
		Meta:         domain.Meta{QID: qid, Aras: aras},
		Results:      results,
		Paths:        finalPaths,
		Nodes:        nodes,
		Edges:        edges,
		Publications: publications,
	}
}

// synthesizeInverseEdges installs, for every current edge key, a structural
// mirror at its inverse key: subject/object swapped, predicate set to the
// inverse qualified predicate, qualifiers dropped. An inverse key that
// already has independently-observed edge data (some agent traversed the
// physical edge in that orientation directly) is left untouched — it is
// already a valid structural mirror of the same relationship, and
// overwriting it would discard real evidence.
func synthesizeInverseEdges(edges map[string]*domain.SummaryObject, inverseKeys map[string]string) {
	keys := make([]string, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	for _, k := range keys {
		inv := inverseKeys[k]
		if inv == "" || inv == k {
			continue
		}
		if _, exists := edges[inv]; exists {
			continue
		}
		src := edges[k]
		mirrored := domain.NewSummaryObject(inv)
		for fk, fv := range src.Fields {
			mirrored.Fields[fk] = fv
		}
		mirrored.Fields["subject"] = src.Fields["object"]
		mirrored.Fields["object"] = src.Fields["subject"]
		mirrored.Fields["predicate"] = inv
		delete(mirrored.Fields, "qualifiers")
		mirrored.Aras = append([]string(nil), src.Aras...)
		edges[inv] = mirrored
	}
}

func ensureNonEmptyStringList(fields map[string]interface{}, key, fallback string) {
	list, _ := fields[key].([]interface{})
	if len(list) == 0 {
		fields[key] = []interface{}{fallback}
	}
}

func dedupePathKeys(keys []domain.PathKey) []domain.PathKey {
	seen := map[domain.PathKey]bool{}
	out := make([]domain.PathKey, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// sortPathKeys orders by (path length ascending, elementwise lexicographic
// ascending over node elements at even indices), per §4.9 and the literal
// rule text of §4.9 which does not involve edge elements in tie-breaking.
func sortPathKeys(keys []domain.PathKey, table map[domain.PathKey]*domain.PathRecord) {
	sort.Slice(keys, func(i, j int) bool {
		pi := table[keys[i]].Subgraph
		pj := table[keys[j]].Subgraph
		if len(pi) != len(pj) {
			return len(pi) < len(pj)
		}
		for idx := 0; idx < len(pi); idx += 2 {
			if pi[idx] != pj[idx] {
				return pi[idx] < pj[idx]
			}
		}
		return false
	})
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
