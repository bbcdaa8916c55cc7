package summary

import "github.com/ncats-translator/trapi-summarizer/internal/domain"

// splicePublications implements component J: for every edge, resolve each
// of its publication IDs through resolver, pair it with a snippet/pubdate
// pulled out of the edge's snippets attribute if present, and install the
// result in the publications table. The edge's publications list is
// rewritten to drop IDs the resolver rejects, and its snippets/qualifiers
// fields are stripped — neither belongs in the front-end-facing summary.
func splicePublications(edges map[string]*domain.SummaryObject, resolver domain.PublicationResolver) map[string]domain.PublicationEntry {
	out := map[string]domain.PublicationEntry{}

	if resolver == nil {
		for _, edge := range edges {
			delete(edge.Fields, "publications")
			delete(edge.Fields, "snippets")
		}
		return out
	}

	for _, edge := range edges {
		ids, _ := edge.Fields["publications"].([]interface{})
		snippetContainers, _ := edge.Fields["snippets"].([]interface{})

		var validIDs []interface{}
		for _, raw := range ids {
			id, ok := raw.(string)
			if !ok || id == "" {
				continue
			}
			kind, url, ok := resolver.Resolve(id)
			if !ok {
				continue
			}
			validIDs = append(validIDs, id)

			entry := domain.PublicationEntry{Type: kind, URL: url}
			if sentence, pubdate, ok := lookupSnippet(snippetContainers, id); ok {
				if sentence != "" {
					entry.Snippet = &sentence
				}
				if pubdate != "" {
					entry.Pubdate = &pubdate
				}
			}
			out[id] = entry
		}

		if validIDs != nil {
			edge.Fields["publications"] = validIDs
		} else {
			delete(edge.Fields, "publications")
		}
		delete(edge.Fields, "snippets")
		delete(edge.Fields, "qualifiers")
	}

	return out
}

func lookupSnippet(containers []interface{}, id string) (sentence, pubdate string, ok bool) {
	for _, raw := range containers {
		container, isMap := raw.(map[string]interface{})
		if !isMap {
			continue
		}
		entry, found := container[id]
		if !found {
			continue
		}
		m, isMap := entry.(map[string]interface{})
		if !isMap {
			continue
		}
		s, _ := m["sentence"].(string)
		p, _ := m["publication date"].(string)
		return s, p, true
	}
	return "", "", false
}
