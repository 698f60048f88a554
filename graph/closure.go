package graph

import (
	"maps"
	"slices"
)

// Reachable returns the paths reachable from root, including root itself, in
// breadth-first discovery order. Neighbors are visited in the order they are
// listed. Keys absent from deps are treated as leaves.
func Reachable(deps map[string][]string, root string) []string {
	seen := map[string]struct{}{root: {}}
	order := []string{root}
	for i := 0; i < len(order); i++ {
		for _, next := range deps[order[i]] {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			order = append(order, next)
		}
	}
	return order
}

// TransitiveClosure returns, for every key of deps, the sorted set of paths
// reachable from it through at least one edge. A key only appears in its own
// closure when it sits on a cycle.
func TransitiveClosure(deps map[string][]string) map[string][]string {
	closure := make(map[string][]string, len(deps))
	for key, direct := range deps {
		set := make(map[string]struct{})
		for _, d := range direct {
			for _, p := range Reachable(deps, d) {
				set[p] = struct{}{}
			}
		}
		reach := slices.Sorted(maps.Keys(set))
		if reach == nil {
			reach = []string{}
		}
		closure[key] = reach
	}
	return closure
}
