package dijkstra

import "fmt"

// PathTo rebuilds the vertex sequence source → … → target from a predecessor
// map produced with WithReturnPath.
//
// Errors:
//   - ErrVertexNotFound: target is not a key of prev.
//   - ErrUnreachable: target has no predecessor chain back to source.
//
// Complexity: O(path length).
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if target == source {
		return []string{source}, nil
	}

	// Walk backwards; a chain longer than len(prev) would mean a corrupt map.
	rev := []string{target}
	for cur := target; cur != source; {
		p := prev[cur]
		if p == "" || len(rev) > len(prev) {
			return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
		}
		rev = append(rev, p)
		cur = p
	}

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}
