// Package search provides uninformed path search over a grid.Grid maze:
// breadth-first (BFS), depth-first (DFS) and uniform-cost (UCS).
//
// What
//
//   - One shared loop: pop a node, mark its position explored, stop at a goal
//     marker, otherwise push a child for each legal unexplored move.
//   - Moves are tried in the fixed order North, East, South, West.
//   - Each move costs StepCost (1); a move landing on the outer ring of the
//     maze costs an extra BoundaryPenalty (10 by default).
//   - Frontier discipline per strategy:
//   - BFS: FIFO queue, fewest moves.
//   - DFS: LIFO stack, one branch at a time, no optimality guarantee.
//   - UCS: min-heap on accumulated cost, ties leave in insertion order.
//
// Explored set
//
//	The explored set is keyed on position only. A position is never pushed
//	again once expanded, even if a cheaper route to it turns up later, and
//	there is no decrease-key in the UCS heap. UCS is therefore only optimal
//	when the first expansion of every cell on the optimal route is also its
//	cheapest, which holds whenever the cheapest route to each cell is found
//	before that cell is first popped.
//
// Determinism
//
//	Direction order is fixed and the UCS heap breaks cost ties by insertion
//	sequence, so repeated runs over the same grid return identical results.
//
// Concurrency
//
//	A search owns its frontier and explored set and only reads the grid.
//	RunAll runs several strategies concurrently via errgroup.
//
// Complexity (C = logical cells)
//
//   - BFS, DFS: O(C) time, O(C) memory.
//   - UCS:      O(C log C) time, O(C) memory.
//
// Usage
//
//	res, err := search.UCS(g, start,
//	    search.WithContext(ctx),
//	    search.WithMaxSteps(10_000),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, ErrStepLimit,
//	    // context errors, or an OnVisit hook error
//	}
//	fmt.Println(res) // "Path: EESS Cost = 44" or "No solution"
package search
