package campus

import (
	"container/heap"
	"math"
)

// ShortestPath returns the minimum-distance sequence of stops from source to
// destination, computed with Dijkstra's algorithm over Euclidean edge weights.
//
//   - Unknown source or destination: empty slice.
//   - source == destination: []string{source}, without running the search.
//   - Destination not reachable: empty slice, never a partial path.
//
// Among unvisited locations with equal tentative distance, the one with the
// lexicographically smallest name is settled first. The search stops as soon as
// the destination is settled or no reachable location remains.
//
// Complexity: O((V + E) log V) time and O(V + E) space.
func (g *Graph) ShortestPath(source, destination string) []string {
	if !g.store.Exists(source) || !g.store.Exists(destination) {
		return []string{}
	}
	if source == destination {
		return []string{source}
	}

	r := newRunner(g, source)
	r.run(destination)
	return r.path(destination)
}

// runner holds the state of one shortest-path search.
type runner struct {
	g       *Graph
	source  string
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *Graph, source string) *runner {
	n := g.store.Len()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for name := range g.adjacency {
		r.dist[name] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	return r
}

// run settles locations in order of distance until destination is settled or the
// queue runs dry. Stale queue entries (lazy decrease-key) are skipped on pop.
func (r *runner) run(destination string) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue
		}
		r.visited[item.id] = true
		if item.id == destination {
			return
		}
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every unvisited neighbor of u.
// Parallel edges are harmless: the second copy never beats the first.
func (r *runner) relax(u string) {
	for _, v := range r.g.adjacency[u] {
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + r.g.store.DistanceBetween(u, v)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// path walks predecessors back from destination. A walk that does not end at the
// source means the destination was never reached.
func (r *runner) path(destination string) []string {
	var reversed []string
	for at, ok := destination, true; ok; at, ok = r.prev[at] {
		reversed = append(reversed, at)
	}
	if reversed[len(reversed)-1] != r.source {
		return []string{}
	}

	path := make([]string, len(reversed))
	for i, name := range reversed {
		path[len(reversed)-1-i] = name
	}
	return path
}

// nodeItem is a queued location with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by name.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
