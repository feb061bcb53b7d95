package indepgraph

// AttributeEdge is one co-occurrence edge of the independence graph's
// underlying attribute graph (spec.md §3 "Independence graph. Nodes:
// attributes ... Edges: pairs of attributes that co-occur in at least one
// X ∈ C").
type AttributeEdge struct {
	A, B int // bit positions
}

// CoOccurrenceEdges materializes the attribute co-occurrence graph implied
// by the current components' constraint sets: one edge per pair of
// attribute bits that appear together in some constrained itemset. This is
// a debug/verification view, not the hot path — AddNodes never builds this
// graph, it works directly on bitmasks per spec.md §9's design note.
func (g *Graph) CoOccurrenceEdges() []AttributeEdge {
	var edges []AttributeEdge
	for _, c := range g.Components() {
		for _, Y := range c.Constraints {
			bits := bitPositions(Y)
			for i := 0; i < len(bits); i++ {
				for j := i + 1; j < len(bits); j++ {
					edges = append(edges, AttributeEdge{A: bits[i], B: bits[j]})
				}
			}
		}
	}

	return edges
}

func bitPositions(x Mask) []int {
	var out []int
	for b := 0; b < 64; b++ {
		if x&(Mask(1)<<uint(b)) != 0 {
			out = append(out, b)
		}
	}

	return out
}

// ConnectedComponents runs a breadth-first search over CoOccurrenceEdges
// and returns the partition of attribute bits it finds, used by tests to
// verify spec.md §3 invariant 1 ("union(C_sub) ∪ I_sub forms one connected
// component of the attribute co-occurrence graph induced by C") against
// Graph's own bookkeeping. Adapted from the teacher corpus's bfs package:
// a plain adjacency-list BFS, specialized to integer attribute bits instead
// of string vertex IDs.
func (g *Graph) ConnectedComponents() [][]int {
	adj := make(map[int]map[int]bool)
	nodes := make(map[int]bool)
	for _, e := range g.CoOccurrenceEdges() {
		if adj[e.A] == nil {
			adj[e.A] = make(map[int]bool)
		}
		if adj[e.B] == nil {
			adj[e.B] = make(map[int]bool)
		}
		adj[e.A][e.B] = true
		adj[e.B][e.A] = true
		nodes[e.A] = true
		nodes[e.B] = true
	}
	// Every attribute of a component counts as a node, including one that
	// appears in no co-occurrence edge (a component whose only constraint
	// is a single-bit itemset).
	for _, c := range g.Components() {
		for _, b := range bitPositions(c.Attrs) {
			nodes[b] = true
		}
	}

	visited := make(map[int]bool)
	var result [][]int

	ids := make([]int, 0, len(nodes))
	for n := range nodes {
		ids = append(ids, n)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}

	for _, start := range ids {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var comp []int
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			comp = append(comp, n)
			for neighbor := range adj[n] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}
		result = append(result, comp)
	}

	return result
}
