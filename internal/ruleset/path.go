package ruleset

import "strings"

// navigate walks all but the last segment of a dotted path, creating
// intermediate map[string]interface{} nodes as needed, and returns the map
// that owns the final segment plus that segment's key.
func navigate(root map[string]interface{}, path string) (map[string]interface{}, string) {
	segs := strings.Split(path, ".")
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			cur[seg] = next
		}
		cur = next
	}
	return cur, segs[len(segs)-1]
}

// setPath assigns value at a dotted path, overwriting whatever was there.
func setPath(root map[string]interface{}, path string, value interface{}) {
	owner, key := navigate(root, path)
	owner[key] = value
}

// ensurePath installs [] at path if nothing is there yet.
func ensurePath(root map[string]interface{}, path string) {
	owner, key := navigate(root, path)
	if _, ok := owner[key]; !ok {
		owner[key] = []interface{}{}
	}
}

// appendPath appends value (a scalar becomes a singleton element) to the
// list at path, treating a missing or non-list value at that path as an
// empty list to append to.
func appendPath(root map[string]interface{}, path string, value interface{}) {
	owner, key := navigate(root, path)
	existing, _ := owner[key].([]interface{})
	owner[key] = append(existing, value)
}
