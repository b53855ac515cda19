package graph

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/chroma/internal/cache"
)

// Edge is a one-hop conversion between two adjacent spaces.
type Edge struct {
	Source Space
	Target Space

	// In and Out are the shapes of Source and Target.
	In  Shape
	Out Shape

	// Cost is the path search weight. Zero means 1.
	Cost int

	Fn Func
}

// Registry holds the conversion graph and the converters resolved from it.
//
// Register may be called from several goroutines during setup. The first
// call to Converter seals the registry; from then on the edge set never
// changes and lookups only read it.
type Registry struct {
	mu     sync.RWMutex
	sealed atomic.Bool

	nodes  []Space            // first-mention order
	index  map[Space]int      // node -> position in nodes
	shapes map[Space]Shape    // node -> declared shape
	edges  map[[2]Space]*Edge // (source, target) -> edge
	out    [][]*Edge          // node index -> outgoing edges, registration order
	in     [][]*Edge          // node index -> incoming edges, registration order

	memo *cache.Memo[pairKey, resolved]
	opts registryOptions
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		index:  make(map[Space]int),
		shapes: make(map[Space]Shape),
		edges:  make(map[[2]Space]*Edge),
		memo:   cache.NewMemo[pairKey, resolved](hashPair, o.shardCapacity),
		opts:   o,
	}
}

func (r *Registry) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Register adds an edge to the graph.
//
// It fails with ErrSelfEdge if source equals target, ErrDuplicateEdge if the
// pair is already registered, ErrShapeConflict if In or Out disagree with a
// shape declared earlier for the same space, ErrInvalidEdge for malformed
// edges and ErrSealed once the registry has served a lookup.
func (r *Registry) Register(e Edge) error {
	if e.Cost == 0 {
		e.Cost = 1
	}
	switch {
	case e.Source == "" || e.Target == "":
		return fmt.Errorf("%w: empty space name", ErrInvalidEdge)
	case e.Source == e.Target:
		return fmt.Errorf("%w: %s", ErrSelfEdge, e.Source)
	case e.Fn == nil:
		return fmt.Errorf("%w: %s to %s has no function", ErrInvalidEdge, e.Source, e.Target)
	case !e.In.Valid() || !e.Out.Valid():
		return fmt.Errorf("%w: %s to %s has shape %v -> %v", ErrInvalidEdge, e.Source, e.Target, e.In, e.Out)
	case e.Cost < 0:
		return fmt.Errorf("%w: %s to %s has cost %d", ErrInvalidEdge, e.Source, e.Target, e.Cost)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return fmt.Errorf("%w: cannot add %s to %s", ErrSealed, e.Source, e.Target)
	}
	key := [2]Space{e.Source, e.Target}
	if _, ok := r.edges[key]; ok {
		return fmt.Errorf("%w: %s to %s", ErrDuplicateEdge, e.Source, e.Target)
	}
	for _, c := range []struct {
		space Space
		shape Shape
	}{{e.Source, e.In}, {e.Target, e.Out}} {
		if have, ok := r.shapes[c.space]; ok && have != c.shape {
			return fmt.Errorf("%w: %s is %v, edge %s to %s says %v",
				ErrShapeConflict, c.space, have, e.Source, e.Target, c.shape)
		}
	}

	edge := e
	src := r.addNode(e.Source, e.In)
	dst := r.addNode(e.Target, e.Out)
	r.edges[key] = &edge
	r.out[src] = append(r.out[src], &edge)
	r.in[dst] = append(r.in[dst], &edge)
	return nil
}

// addNode returns the index of s, adding it if needed. Caller holds r.mu.
func (r *Registry) addNode(s Space, shape Shape) int {
	if i, ok := r.index[s]; ok {
		return i
	}
	i := len(r.nodes)
	r.nodes = append(r.nodes, s)
	r.index[s] = i
	r.shapes[s] = shape
	r.out = append(r.out, nil)
	r.in = append(r.in, nil)
	return i
}

// Seal stops further registration. Converter seals implicitly.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed.Store(true)
	r.mu.Unlock()
}

// Sealed reports whether the registry accepts no more edges.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// LookupDirect returns the one-hop edge from source to target, if any.
func (r *Registry) LookupDirect(source, target Space) (Edge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.edges[[2]Space{source, target}]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Nodes returns every space mentioned by an edge, in first-mention order.
func (r *Registry) Nodes() []Space {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Space(nil), r.nodes...)
}

// Shape returns the declared shape of s.
func (r *Registry) Shape(s Space) (Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shape, ok := r.shapes[s]
	return shape, ok
}

// Edges returns all edges in registration order of their source node.
func (r *Registry) Edges() []Edge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []Edge
	for _, list := range r.out {
		for _, e := range list {
			all = append(all, *e)
		}
	}
	return all
}
