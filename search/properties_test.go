package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/search"
)

// TestProperties_RandomMazes checks cross-strategy invariants on seeded
// random mazes:
//   - all strategies agree on whether a goal is reachable;
//   - every returned path replays from the start onto a goal without
//     crossing a wall;
//   - BFS uses no more moves than DFS or UCS;
//   - UCS costs no more than BFS or DFS.
func TestProperties_RandomMazes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		h, w := 1+rng.Intn(7), 2+rng.Intn(7)
		rows := randomMaze(rng, h, w, 0.55)
		g, start := mustGrid(t, rows...)

		results := make(map[search.Strategy]*search.Result, 3)
		for _, s := range search.AllStrategies {
			res, err := search.Search(g, start, s)
			require.NoError(t, err)
			results[s] = res

			if !res.Found {
				continue
			}
			end, err := g.Walk(start, res.Path())
			require.NoError(t, err, "maze %d %s path %s", i, s, res.Path())
			assert.True(t, g.IsGoal(end), "maze %d %s ends on %s", i, s, end)
			assert.Equal(t, res.Node.Pos, end)
		}

		bfs, dfs, ucs := results[search.BreadthFirst], results[search.DepthFirst], results[search.UniformCost]
		require.Equal(t, bfs.Found, dfs.Found, "maze %d", i)
		require.Equal(t, bfs.Found, ucs.Found, "maze %d", i)
		if !bfs.Found {
			continue
		}
		assert.LessOrEqual(t, len(bfs.Path()), len(dfs.Path()), "maze %d", i)
		assert.LessOrEqual(t, len(bfs.Path()), len(ucs.Path()), "maze %d", i)
		assert.LessOrEqual(t, ucs.Cost(), bfs.Cost(), "maze %d", i)
		assert.LessOrEqual(t, ucs.Cost(), dfs.Cost(), "maze %d", i)
	}
}

// TestProperties_UCSAvoidsRing builds a maze where the fewest-moves route
// runs along the outer ring and a longer route stays in the interior.
// Start and goal are interior cells separated by an isolated center column.
//
//	. . . . .
//	. S x x F .      top route:    N E E S      (3 ring cells)
//	. . x x .        bottom route: S S E E N N  (no ring cells)
//	. . . . .
//	. . . . .
func TestProperties_UCSAvoidsRing(t *testing.T) {
	g, start := mustGrid(t,
		"###########",
		"#         #",
		"# # ### # #",
		"#  S# #F  #",
		"# # ### # #",
		"#   # #   #",
		"# # ### # #",
		"#         #",
		"# # # # # #",
		"#         #",
		"###########",
	)

	bfs, err := search.BFS(g, start)
	require.NoError(t, err)
	ucs, err := search.UCS(g, start)
	require.NoError(t, err)

	assert.Equal(t, "NEES", bfs.Path().String())
	assert.Equal(t, 34, bfs.Cost())
	assert.Equal(t, "SSEENN", ucs.Path().String())
	assert.Equal(t, 6, ucs.Cost())
}
