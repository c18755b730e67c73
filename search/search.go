// Package search runs breadth-first, depth-first and uniform-cost search
// over a grid.Grid, returning the first goal reached with its path and cost.
//
// All three strategies share one loop; only the frontier discipline differs.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// walker encapsulates mutable state for a single search run.
type walker struct {
	grid     *grid.Grid
	opts     Options
	ctx      context.Context
	front    frontier
	explored map[grid.Position]struct{}
	res      *Result
}

// Search runs strategy s on g from start, applying any number of Options.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrUnknownStrategy for invalid
// input, ErrOptionViolation for bad options, ErrStepLimit when MaxSteps ran
// out, the context error on cancellation, or a wrapped OnVisit error.
// In every error case but invalid input the partial Result is returned too.
//
// Exhausting the frontier without reaching a goal is not an error: the
// Result has Found == false.
func Search(g *grid.Grid, start grid.Position, s Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	// one entry per logical cell is a fair starting size
	h, wd := g.LogicalSize()
	n := h*wd + 1
	front, err := newFrontier(s, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, s)
	}

	w := &walker{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		front:    front,
		explored: make(map[grid.Position]struct{}, n),
		res:      &Result{Strategy: s},
	}
	w.push(Node{Pos: start})

	return w.res, w.loop()
}

// BFS is Search with BreadthFirst.
func BFS(g *grid.Grid, start grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, BreadthFirst, opts...)
}

// DFS is Search with DepthFirst.
func DFS(g *grid.Grid, start grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, DepthFirst, opts...)
}

// UCS is Search with UniformCost.
func UCS(g *grid.Grid, start grid.Position, opts ...Option) (*Result, error) {
	return Search(g, start, UniformCost, opts...)
}

// push calls OnEnqueue and inserts n into the frontier.
func (w *walker) push(n Node) {
	w.opts.OnEnqueue(n)
	w.front.Push(n)
}

// loop pops nodes until a goal is found, the frontier empties, or the run is
// aborted by cancellation, the step limit, or a hook error.
func (w *walker) loop() error {
	for w.front.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.res.Expanded >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d expansions", ErrStepLimit, w.res.Expanded)
		}

		n := w.front.Pop()
		// duplicates of an explored position are still expanded; only
		// children are filtered against the explored set
		w.explored[n.Pos] = struct{}{}
		w.res.Expanded++

		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("search: OnVisit error at %s: %w", n.Pos, err)
		}

		if w.grid.IsGoal(n.Pos) {
			w.res.Node = n
			w.res.Found = true
			return nil
		}
		w.expand(n)
	}

	return nil
}

// expand pushes a child for every legal, unexplored move from n in
// N, E, S, W order.
func (w *walker) expand(n Node) {
	for _, d := range grid.Directions {
		if !w.grid.CanMove(n.Pos, d) {
			continue
		}
		next := grid.Step(n.Pos, d)
		if _, seen := w.explored[next]; seen {
			continue
		}
		cost := StepCost
		if w.grid.OnOuterRing(next) {
			cost += w.opts.BoundaryPenalty
		}
		w.push(n.child(d, cost))
	}
}
