// Package search defines the strategies, options, nodes and results
// for uninformed maze search over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// Cost model.
const (
	// StepCost is charged for every move.
	StepCost = 1
	// DefaultBoundaryPenalty is added when a move lands on the outer ring.
	DefaultBoundaryPenalty = 10
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartOutOfBounds is returned when the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")

	// ErrUnknownStrategy is returned for a Strategy value outside BFS/DFS/UCS.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned when MaxSteps expansions ran without reaching a goal.
	ErrStepLimit = errors.New("search: step limit reached")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// BreadthFirst uses a FIFO queue.
	BreadthFirst Strategy = iota
	// DepthFirst uses a LIFO stack.
	DepthFirst
	// UniformCost uses a min-priority queue on accumulated cost.
	UniformCost
)

// AllStrategies lists the strategies in reporting order.
var AllStrategies = []Strategy{BreadthFirst, DepthFirst, UniformCost}

// String returns the short strategy name: "BFS", "DFS" or "UCS".
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "BFS"
	case DepthFirst:
		return "DFS"
	case UniformCost:
		return "UCS"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive short name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	case "ucs":
		return UniformCost, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Path is the ordered sequence of moves taken from the start.
type Path []grid.Direction

// String renders the path as direction symbols, e.g. "NESW".
func (p Path) String() string {
	b := make([]byte, len(p))
	for i, d := range p {
		b[i] = d.Symbol()
	}
	return string(b)
}

// Node is a position reached during search together with the path and
// accumulated cost that reached it. Nodes are never mutated after creation;
// identity for cycle detection is Pos alone.
type Node struct {
	Pos  grid.Position
	Path Path
	Cost int
}

// child builds the node reached by moving from n in direction d.
// The path is copied so siblings never share backing storage.
func (n Node) child(d grid.Direction, cost int) Node {
	path := make(Path, len(n.Path), len(n.Path)+1)
	copy(path, n.Path)

	return Node{
		Pos:  grid.Step(n.Pos, d),
		Path: append(path, d),
		Cost: n.Cost + cost,
	}
}

// Result holds the outcome of a search:
//   - Node: the terminal node at the goal when Found, else the zero node.
//   - Found: whether a goal was reached.
//   - Expanded: number of nodes removed from the frontier.
type Result struct {
	Strategy Strategy
	Node     Node
	Found    bool
	Expanded int
}

// Path returns the solution path, empty when no goal was reached.
func (r *Result) Path() Path { return r.Node.Path }

// Cost returns the solution cost, zero when no goal was reached.
func (r *Result) Cost() int { return r.Node.Cost }

// String renders the result as "Path: NESW Cost = 12" or "No solution".
func (r *Result) String() string {
	if r == nil || !r.Found {
		return "No solution"
	}
	return fmt.Sprintf("Path: %s Cost = %d", r.Node.Path, r.Node.Cost)
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnEnqueue is called for every node inserted into the frontier,
	// including the start node.
	OnEnqueue func(n Node)

	// OnVisit is called for every node removed from the frontier, before the
	// goal test. Returning an error aborts the search.
	OnVisit func(n Node) error

	// MaxSteps, if > 0, bounds the number of frontier removals.
	// 0 disables the limit.
	MaxSteps int

	// BoundaryPenalty is added to a child landing on the outer ring.
	BoundaryPenalty int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no step limit (MaxSteps == 0)
//   - BoundaryPenalty == DefaultBoundaryPenalty
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		OnEnqueue:       func(Node) {},
		OnVisit:         func(Node) error { return nil },
		MaxSteps:        0,
		BoundaryPenalty: DefaultBoundaryPenalty,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on frontier insertion.
func WithOnEnqueue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on frontier removal; returning an
// error from it stops the search.
func WithOnVisit(fn func(n Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps stops the search after n frontier removals.
//
//	n > 0: limit to n removals, then ErrStepLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithBoundaryPenalty overrides the outer-ring penalty. Negative values are
// an ErrOptionViolation.
func WithBoundaryPenalty(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: BoundaryPenalty cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.BoundaryPenalty = p
	}
}
