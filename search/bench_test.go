package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/search"
)

// BenchmarkSearch_OpenMaze measures each strategy on a 100×100 maze with no
// interior walls, start and goal in opposite corners.
func BenchmarkSearch_OpenMaze(b *testing.B) {
	const n = 100
	rows := make([]string, 2*n+1)
	wall := make([]byte, 2*n+1)
	open := make([]byte, 2*n+1)
	for x := range wall {
		wall[x] = '#'
		open[x] = ' '
	}
	open[0], open[2*n] = '#', '#'
	for y := range rows {
		rows[y] = string(open)
	}
	rows[0], rows[2*n] = string(wall), string(wall)
	first := []byte(rows[1])
	first[1] = 'S'
	rows[1] = string(first)
	last := []byte(rows[2*n-1])
	last[2*n-1] = 'F'
	rows[2*n-1] = string(last)

	g, start := mustGrid(b, rows...)
	for _, s := range search.AllStrategies {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(g, start, s)
			}
		})
	}
}

// BenchmarkSearch_RandomMaze measures each strategy on a seeded 60×60 maze.
func BenchmarkSearch_RandomMaze(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g, start := mustGrid(b, randomMaze(rng, 60, 60, 0.6)...)

	for _, s := range search.AllStrategies {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Search(g, start, s)
			}
		})
	}
}
