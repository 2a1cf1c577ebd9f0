package adjacency

// Components groups the points selected by keep into connected regions of the
// cached graph. A nil keep selects every point. Each component lists flat
// indices in discovery order; components are ordered by their smallest index.
//
// Time:   O(#points + #arcs).
// Memory: O(#points).
func (c *Cache) Components(keep func(i int) bool) [][]int {
	seen := make([]bool, c.Len())
	var comps [][]int
	queue := make([]int, 0, c.Len())

	for i0 := range seen {
		if seen[i0] || (keep != nil && !keep(i0)) {
			continue
		}
		queue = append(queue[:0], i0)
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range c.Neighbors(queue[qi]) {
				if seen[v] || (keep != nil && !keep(v)) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, append([]int(nil), queue...))
	}

	return comps
}
