package graph

import (
	"fmt"
	"math"
)

const unreachable = math.MaxInt

// ShortestPathsFrom returns the shortest-path tree rooted at source: for
// every space reachable from source, the predecessor on a shortest path.
// Source itself is not a key. A space missing from the map is unreachable.
func (r *Registry) ShortestPathsFrom(source Space) (map[Space]Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	root, ok := r.index[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, source)
	}
	return r.tree(r.search(root, true)), nil
}

// ShortestPathsTo returns the shortest-path tree towards target: for every
// space from which target is reachable, the next space on a shortest path.
// Target itself is not a key.
func (r *Registry) ShortestPathsTo(target Space) (map[Space]Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	root, ok := r.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, target)
	}
	return r.tree(r.search(root, false)), nil
}

// ReachableFrom lists the spaces reachable from source, in node order.
func (r *Registry) ReachableFrom(source Space) ([]Space, error) {
	tree, err := r.ShortestPathsFrom(source)
	if err != nil {
		return nil, err
	}
	return r.ordered(tree), nil
}

// ReachingTo lists the spaces from which target is reachable, in node order.
func (r *Registry) ReachingTo(target Space) ([]Space, error) {
	tree, err := r.ShortestPathsTo(target)
	if err != nil {
		return nil, err
	}
	return r.ordered(tree), nil
}

func (r *Registry) ordered(tree map[Space]Space) []Space {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var spaces []Space
	for _, s := range r.nodes {
		if _, ok := tree[s]; ok {
			spaces = append(spaces, s)
		}
	}
	return spaces
}

func (r *Registry) tree(link []int) map[Space]Space {
	m := make(map[Space]Space)
	for i, j := range link {
		if j >= 0 {
			m[r.nodes[i]] = r.nodes[j]
		}
	}
	return m
}

// search runs Dijkstra's algorithm from root. With forward set it follows
// edges source to target and link[i] is the predecessor of node i;
// otherwise it follows edges backwards and link[i] is the successor.
// Unreached nodes and the root have link -1. Caller holds r.mu.
//
// The graph has a few dozen nodes at most, so the frontier is a linear scan
// rather than a heap. Ties go to the node registered first, and neighbours
// are relaxed in edge registration order.
func (r *Registry) search(root int, forward bool) []int {
	n := len(r.nodes)
	dist := make([]int, n)
	link := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = unreachable
		link[i] = -1
	}
	dist[root] = 0

	for {
		node := -1
		for i := 0; i < n; i++ {
			if !done[i] && dist[i] != unreachable && (node < 0 || dist[i] < dist[node]) {
				node = i
			}
		}
		if node < 0 {
			break
		}
		done[node] = true

		adj := r.in[node]
		if forward {
			adj = r.out[node]
		}
		for _, e := range adj {
			next := r.index[e.Source]
			if forward {
				next = r.index[e.Target]
			}
			if alt := dist[node] + e.Cost; alt < dist[next] {
				dist[next] = alt
				link[next] = node
			}
		}
	}
	return link
}

// path returns the edges of a shortest path from source to target.
func (r *Registry) path(source, target Space) ([]*Edge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.index[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, source)
	}
	dst, ok := r.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, target)
	}

	// Fast path: a unit-cost direct edge cannot be beaten
	if e, ok := r.edges[[2]Space{source, target}]; ok && e.Cost == 1 {
		return []*Edge{e}, nil
	}

	pred := r.search(src, true)
	if pred[dst] < 0 {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, source, target)
	}

	var rev []*Edge
	for at := dst; at != src; at = pred[at] {
		rev = append(rev, r.edges[[2]Space{r.nodes[pred[at]], r.nodes[at]}])
	}
	steps := make([]*Edge, len(rev))
	for i, e := range rev {
		steps[len(rev)-1-i] = e
	}
	return steps, nil
}
