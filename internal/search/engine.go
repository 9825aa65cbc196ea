// Package search implements the longest-simple-path engine: a
// depth-first backtracking traversal that enumerates simple paths
// between two named nodes and keeps the best one under a replacement
// policy.
//
// Termination is guaranteed by the visited set alone — no node is
// entered twice on one path, so cycles cannot be traversed past their
// first occurrence. The number of distinct simple paths explored can
// still be exponential in the graph size, and by default there is no
// depth limit, time budget, or pruning beyond the visited set, so
// adversarial dense graphs can keep a query running arbitrarily long.
// That is a documented property of this engine, not a defect; an
// opt-in Budget bounds it for callers that want a ceiling.
package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/vk/pathgrid/internal/graph"
	"github.com/vk/pathgrid/internal/status"
)

// Dominates reports whether candidate should replace the best route
// found so far. It is only consulted with complete source-to-destination
// candidates; returning false keeps the incumbent.
type Dominates func(candidate, best []string) bool

// Longer is the default policy: a strictly longer route wins and ties
// keep the incumbent. Combined with link-order traversal this makes the
// first-discovered maximal route the winner.
func Longer(candidate, best []string) bool {
	return len(candidate) > len(best)
}

// Budget optionally bounds a query. Zero values mean unbounded, which is
// the default and the engine's historical behavior.
type Budget struct {
	// MaxVisits caps how many node entries the traversal may make.
	MaxVisits uint64
	// WallClock caps the elapsed time of one query.
	WallClock time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy replaces the route replacement policy.
func WithPolicy(p Dominates) Option {
	return func(e *Engine) { e.policy = p }
}

// WithBudget bounds every query run on the engine.
func WithBudget(b Budget) Option {
	return func(e *Engine) { e.budget = b }
}

// Engine answers queries against a single read-only graph. The graph is
// indexed once at construction; the engine holds no cross-query state
// outside its pool, so concurrent queries are safe.
type Engine struct {
	g      *graph.Graph
	index  map[string]int
	policy Dominates
	budget Budget
	states sync.Pool
}

// New builds an engine over g.
func New(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		g:      g,
		index:  g.Index(),
		policy: Longer,
	}
	for _, opt := range opts {
		opt(e)
	}

	// A simple path can never exceed the node count, so the stack and
	// visited markers are sized once and reused across queries.
	n := g.Len()
	e.states.New = func() any {
		return &state{
			visited: make([]bool, n),
			stack:   make([]string, n),
		}
	}
	return e
}

// state is the transient context of one query: visited markers, the
// path stack, and the best-route slot. Instances are pooled and fully
// reset between queries; nothing escapes a query except through the
// copied-out route.
type state struct {
	visited  []bool
	stack    []string
	best     []string
	visits   uint64
	deadline time.Time
}

func (s *state) reset(deadline time.Time) {
	for i := range s.visited {
		s.visited[i] = false
	}
	s.best = s.best[:0]
	s.visits = 0
	s.deadline = deadline
}

// exhausted reports whether the query's budget is spent. Checked once
// per node entry.
func (s *state) exhausted(b Budget) bool {
	if b.MaxVisits > 0 && s.visits >= b.MaxVisits {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// FindRoute returns the longest simple path from src to dst as a fresh
// name sequence owned by the caller, or nil when no path exists — which
// is success, not an error. An endpoint that does not resolve in the
// graph is a bad argument. When the engine's budget runs out mid-query
// the best route found so far is returned.
func (e *Engine) FindRoute(src, dst string) ([]string, error) {
	srcIdx, okSrc := e.index[src]
	dstIdx, okDst := e.index[dst]
	if src == "" || dst == "" || !okSrc || !okDst {
		return nil, fmt.Errorf("resolve endpoints %q -> %q: %w", src, dst, status.ErrBadArgument)
	}

	st := e.states.Get().(*state)
	defer e.states.Put(st)

	var deadline time.Time
	if e.budget.WallClock > 0 {
		deadline = time.Now().Add(e.budget.WallClock)
	}
	st.reset(deadline)

	e.walk(st, srcIdx, dstIdx, 0)

	if len(st.best) == 0 {
		return nil, nil
	}
	out := make([]string, len(st.best))
	copy(out, st.best)
	return out, nil
}

// walk is one enter/check/recurse/exit step of the backtracking
// traversal. Neighbors are tried in listed link order, which is what
// fixes discovery order and therefore the tie-break between equal-length
// routes.
func (e *Engine) walk(st *state, cur, dst, depth int) {
	if st.visited[cur] {
		return
	}
	if st.exhausted(e.budget) {
		return
	}
	st.visits++
	st.visited[cur] = true
	st.stack[depth] = e.g.Nodes[cur].Name
	depth++

	if cur == dst {
		if e.policy(st.stack[:depth], st.best) {
			st.best = append(st.best[:0], st.stack[:depth]...)
		}
	} else {
		for _, link := range e.g.Nodes[cur].Links {
			nbr, ok := e.index[link]
			if ok && !st.visited[nbr] {
				e.walk(st, nbr, dst, depth)
			}
		}
	}

	// Unmark unconditionally so sibling branches may reuse this node.
	st.visited[cur] = false
}
