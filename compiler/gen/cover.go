package gen

// FindCover returns the items whose footprint is maximal: an item is dropped
// when another item's footprint strictly contains its own, or when an
// earlier item has the same footprint. Every dropped item is covered by a
// kept one, and the kept items retain their input order.
func FindCover[T any](items []T, footprint func(T) []string) []T {
	sets := make([]map[string]struct{}, len(items))
	for i, it := range items {
		set := make(map[string]struct{})
		for _, p := range footprint(it) {
			set[p] = struct{}{}
		}
		sets[i] = set
	}
	var cover []T
	for i := range items {
		if !dominated(sets, i) {
			cover = append(cover, items[i])
		}
	}
	return cover
}

func dominated(sets []map[string]struct{}, i int) bool {
	for j := range sets {
		if j == i || !subset(sets[i], sets[j]) {
			continue
		}
		if len(sets[j]) > len(sets[i]) || j < i {
			return true
		}
	}
	return false
}

// subset reports whether a ⊆ b.
func subset(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
