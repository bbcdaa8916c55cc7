package summary

import "fmt"

// dedupeFields rewrites every []interface{}-valued field in place, removing
// repeated elements while preserving first-occurrence order. Scalar
// equality is decided by formatted representation, which is sufficient for
// the string/number values the rule DSL ever produces.
func dedupeFields(fields map[string]interface{}) {
	for k, v := range fields {
		list, ok := v.([]interface{})
		if !ok {
			continue
		}
		fields[k] = dedupeSlice(list)
	}
}

func dedupeSlice(list []interface{}) []interface{} {
	seen := map[string]bool{}
	out := make([]interface{}, 0, len(list))
	for _, v := range list {
		k := fmt.Sprint(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}

func dedupeStrings(list []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
