package adjacency

import "fmt"

// Unreachable marks a point that breadth-first search never reached.
const Unreachable = -1

// Distances returns the hop count from src to every flat index, or
// Unreachable. It walks the cached graph level by level with a slice queue.
// Panics when src is out of range.
// Complexity: O(#points + #arcs) time, O(#points) memory.
func (c *Cache) Distances(src int) []int {
	if src < 0 || src >= c.Len() {
		panic(fmt.Sprintf("adjacency: source %d out of range [0,%d)", src, c.Len()))
	}
	dist := make([]int, c.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	queue := make([]int, 0, c.Len())
	queue = append(queue, src)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range c.Neighbors(u) {
			if dist[v] != Unreachable {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// Eccentricity returns the largest finite distance from src and the number of
// points reachable from it, src included.
func (c *Cache) Eccentricity(src int) (radius, reached int) {
	for _, d := range c.Distances(src) {
		if d == Unreachable {
			continue
		}
		reached++
		if d > radius {
			radius = d
		}
	}

	return radius, reached
}
