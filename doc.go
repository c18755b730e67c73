// Package mazepath solves text grid mazes with uninformed search:
// breadth-first, depth-first and uniform-cost.
//
// What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• grid      – immutable maze grid, directions, adjacency and ring queries
//		• search    – BFS / DFS / UCS over one shared expansion loop
//		• mazefile  – reader and writer for the plain-text maze format
//		• cmd/mazesolve – command-line solver printing one line per strategy
//
// Cost model
//
//	Every move costs 1. A move that lands on the outermost ring of cells
//	costs 10 more, so UCS prefers routes through the interior.
//
// Quick ASCII example (3×3 maze, no interior walls):
//
//	#######
//	#S    #      BFS: Path: EESS Cost = 44
//	#     #      DFS: Path: SSEE Cost = 44
//	#     #      UCS: Path: ESES Cost = 34
//	#     #
//	#    F#
//	#######
//
//	go install github.com/katalvlaran/mazepath/cmd/mazesolve@latest
package mazepath
