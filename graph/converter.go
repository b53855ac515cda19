package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/chroma/internal/cache"
)

// pairKey identifies a memoised converter.
type pairKey struct {
	source, target Space
}

// resolved is a memo entry. Routing failures are memoised too: the edge set
// is sealed, so a missing path stays missing.
type resolved struct {
	conv *Converter
	err  error
}

func hashPair(k pairKey) uint64 {
	return cache.StringHasher(string(k.source) + "\x00" + string(k.target))
}

// Converter is a composite conversion bound to a (source, target) pair.
// It is immutable and safe for concurrent use.
type Converter struct {
	source Space
	target Space
	steps  []*Edge
}

// Build resolves a converter without memoising it and without sealing the
// registry. Most callers want [Registry.Converter].
func (r *Registry) Build(source, target Space) (*Converter, error) {
	if source == target {
		return nil, fmt.Errorf("%w: %s", ErrSameSpace, source)
	}
	steps, err := r.path(source, target)
	if err != nil {
		return nil, err
	}
	return &Converter{source: source, target: target, steps: steps}, nil
}

// Converter returns the memoised converter from source to target, resolving
// it on first use. The first call seals the registry.
//
// Spaces missing from the graph fail with ErrUnknownSpace and are not
// memoised, so the memo stays bounded by the registered node pairs.
func (r *Registry) Converter(source, target Space) (*Converter, error) {
	if !r.sealed.Load() {
		r.Seal()
	}
	if err := r.checkKnown(source, target); err != nil {
		return nil, err
	}
	res := r.memo.GetOrCreate(pairKey{source, target}, func() resolved {
		c, err := r.Build(source, target)
		log := r.logger()
		if err != nil {
			if !errors.Is(err, ErrSameSpace) {
				log.Warn("graph: cannot resolve converter",
					slog.String("source", string(source)),
					slog.String("target", string(target)),
					slog.Any("error", err))
			}
			return resolved{err: err}
		}
		log.Debug("graph: converter resolved",
			slog.String("source", string(source)),
			slog.String("target", string(target)),
			slog.Int("hops", len(c.steps)),
			slog.String("path", c.String()))
		return resolved{conv: c}
	})
	return res.conv, res.err
}

func (r *Registry) checkKnown(spaces ...Space) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range spaces {
		if _, ok := r.index[s]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSpace, s)
		}
	}
	return nil
}

// MemoStats reports how often Converter found a memoised result.
func (r *Registry) MemoStats() cache.Stats {
	return r.memo.Stats()
}

// Source returns the space the converter accepts.
func (c *Converter) Source() Space { return c.source }

// Target returns the space the converter produces.
func (c *Converter) Target() Space { return c.target }

// In returns the shape Apply expects.
func (c *Converter) In() Shape { return c.steps[0].In }

// Out returns the shape Apply produces.
func (c *Converter) Out() Shape { return c.steps[len(c.steps)-1].Out }

// Hops returns the number of one-hop conversions chained by c.
func (c *Converter) Hops() int { return len(c.steps) }

// Path returns the spaces visited from source to target, inclusive.
func (c *Converter) Path() []Space {
	p := make([]Space, 0, len(c.steps)+1)
	p = append(p, c.source)
	for _, e := range c.steps {
		p = append(p, e.Target)
	}
	return p
}

// Edges returns copies of the chained edges in application order.
func (c *Converter) Edges() []Edge {
	edges := make([]Edge, len(c.steps))
	for i, e := range c.steps {
		edges[i] = *e
	}
	return edges
}

// String returns the path as "a -> b -> c".
func (c *Converter) String() string {
	var b strings.Builder
	for i, s := range c.Path() {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(string(s))
	}
	return b.String()
}

// Apply converts v from the source space to the target space.
//
// v must have the source shape; otherwise Apply fails with ErrShape.
// Errors returned by an edge function are passed through unchanged.
func (c *Converter) Apply(v Value) (Value, error) {
	if got, want := v.Shape(), c.In(); got != want {
		return Value{}, fmt.Errorf("%w: %s wants %v, got %v", ErrShape, c.source, want, got)
	}
	for _, e := range c.steps {
		out, err := e.Fn(v)
		if err != nil {
			return Value{}, err
		}
		if got := out.Shape(); got != e.Out {
			return Value{}, fmt.Errorf("%w: edge %s to %s returned %v, declared %v",
				ErrShape, e.Source, e.Target, got, e.Out)
		}
		v = out
	}
	return v, nil
}
