package floodfill_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransoing/AoC24/floodfill"
	"github.com/ransoing/AoC24/xyz"
)

// sameAs admits steps inside grid between equal cells.
func sameAs[T comparable](grid [][]T) floodfill.Option {
	return floodfill.WithFilterNeighbor(func(n, from xyz.Vec) bool {
		nv, ok := xyz.ValueIn(n, grid)
		if !ok {
			return false
		}
		fv, _ := xyz.ValueIn(from, grid)
		return nv == fv
	})
}

func uniform(w, h int, v rune) [][]rune {
	g := make([][]rune, w)
	for x := range g {
		g[x] = make([]rune, h)
		for y := range g[x] {
			g[x][y] = v
		}
	}
	return g
}

func TestFloodFill_Errors(t *testing.T) {
	_, err := floodfill.FloodFill(xyz.Vec{}, floodfill.WithMaxDepth(-1))
	assert.ErrorIs(t, err, floodfill.ErrOptionViolation)
}

// TestFloodFill_UniformGrid fills a fully connected 4×4 grid.
func TestFloodFill_UniformGrid(t *testing.T) {
	grid := uniform(4, 4, '.')
	res, err := floodfill.FloodFill(xyz.V(0, 0), sameAs(grid))
	require.NoError(t, err)

	assert.Equal(t, 16, res.Len())
	assert.Equal(t, xyz.V(0, 0), res.Visited[0], "origin is discovered first")
	assert.Equal(t, 0, res.Depth[xyz.V(0, 0)])
	assert.Equal(t, 6, res.Depth[xyz.V(3, 3)])

	uniq := map[xyz.Vec]bool{}
	for _, p := range res.Visited {
		assert.False(t, uniq[p], "%v visited twice", p)
		uniq[p] = true
	}
}

// TestFloodFill_Islands checks that a fill never crosses into a disjoint island.
func TestFloodFill_Islands(t *testing.T) {
	grid := uniform(5, 5, '.')
	grid[1][1] = '#'
	grid[3][3] = '#'

	res, err := floodfill.FloodFill(xyz.V(1, 1), sameAs(grid))
	require.NoError(t, err)
	assert.Equal(t, []xyz.Vec{xyz.V(1, 1)}, res.Visited)
	assert.False(t, res.Contains(xyz.V(3, 3)))

	sea, err := floodfill.FloodFill(xyz.V(0, 0), sameAs(grid))
	require.NoError(t, err)
	assert.Equal(t, 23, sea.Len())
	assert.False(t, sea.Contains(xyz.V(1, 1)))
	assert.False(t, sea.Contains(xyz.V(3, 3)))
}

// TestFloodFill_NeighborOrderIndependent shuffles neighbor order and expects the same set.
func TestFloodFill_NeighborOrderIndependent(t *testing.T) {
	grid := uniform(6, 6, '.')
	for _, p := range []xyz.Vec{xyz.V(2, 0), xyz.V(2, 1), xyz.V(2, 2), xyz.V(2, 3), xyz.V(4, 5), xyz.V(4, 4)} {
		xyz.SetValueIn(p, grid, '#')
	}
	base, err := floodfill.FloodFill(xyz.V(0, 0), sameAs(grid))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		res, err := floodfill.FloodFill(xyz.V(0, 0), sameAs(grid),
			floodfill.WithNeighbors(func(p xyz.Vec) []xyz.Vec {
				ns := p.Neighbors(false)
				rng.Shuffle(len(ns), func(i, j int) { ns[i], ns[j] = ns[j], ns[i] })
				return ns
			}),
		)
		require.NoError(t, err)
		assert.ElementsMatch(t, base.Visited, res.Visited)
	}
}

// TestFloodFill_PredicateOncePerEdge counts predicate calls per directed edge.
func TestFloodFill_PredicateOncePerEdge(t *testing.T) {
	grid := uniform(3, 3, '.')
	type edge struct{ from, to xyz.Vec }
	calls := map[edge]int{}
	_, err := floodfill.FloodFill(xyz.V(1, 1),
		floodfill.WithFilterNeighbor(func(n, from xyz.Vec) bool {
			calls[edge{from, n}]++
			_, ok := xyz.ValueIn(n, grid)
			return ok
		}),
	)
	require.NoError(t, err)
	for e, c := range calls {
		assert.Equal(t, 1, c, "edge %v→%v", e.from, e.to)
	}
}

// TestFloodFill_TrailheadUphill mirrors the "climb by exactly one" trail rule.
func TestFloodFill_TrailheadUphill(t *testing.T) {
	// x-major heights; the climb branches at height 2
	grid := [][]int{
		{0, 1, 2, 3},
		{5, 2, 9, 4},
	}
	res, err := floodfill.FloodFill(xyz.V(0, 0), floodfill.WithFilterNeighbor(func(n, from xyz.Vec) bool {
		nv, ok := xyz.ValueIn(n, grid)
		fv, _ := xyz.ValueIn(from, grid)
		return ok && nv == fv+1
	}))
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]xyz.Vec{xyz.V(0, 0), xyz.V(0, 1), xyz.V(0, 2), xyz.V(0, 3), xyz.V(1, 1), xyz.V(1, 3)},
		res.Visited)
}

func TestFloodFill_3D(t *testing.T) {
	res, err := floodfill.FloodFill(xyz.Vec{},
		floodfill.WithNeighbors(func(p xyz.Vec) []xyz.Vec { return p.Neighbors3D(false) }),
		floodfill.WithFilterNeighbor(func(n, _ xyz.Vec) bool {
			return n.X >= 0 && n.Y >= 0 && n.Z >= 0 && n.X < 3 && n.Y < 3 && n.Z < 3
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 27, res.Len())
}

func TestFloodFill_MaxDepth(t *testing.T) {
	res, err := floodfill.FloodFill(xyz.Vec{}, floodfill.WithMaxDepth(2))
	require.NoError(t, err)
	// a taxicab diamond of radius 2 on the unbounded plane
	assert.Equal(t, 13, res.Len())
	for p, d := range res.Depth {
		assert.Equal(t, xyz.Vec{}.TaxicabDistance(p), d)
	}
}

func TestFloodFill_OnVisit(t *testing.T) {
	grid := uniform(3, 1, '.')
	var tapped []xyz.Vec
	res, err := floodfill.FloodFill(xyz.V(0, 0), sameAs(grid),
		floodfill.WithOnVisit(func(p xyz.Vec, _ int) error {
			tapped = append(tapped, p)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Visited[1:], tapped, "origin is not tapped")

	boom := errors.New("boom")
	_, err = floodfill.FloodFill(xyz.V(0, 0), sameAs(grid),
		floodfill.WithOnVisit(func(xyz.Vec, int) error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestFloodFill_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// unbounded plane: only cancellation stops it
	_, err := floodfill.FloodFill(xyz.Vec{}, floodfill.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegions(t *testing.T) {
	// rows as drawn: AAB / ACB / CCB
	grid := [][]rune{
		{'A', 'A', 'C'},
		{'A', 'C', 'C'},
		{'B', 'B', 'B'},
	}
	var all []xyz.Vec
	for x := range grid {
		for y := range grid[x] {
			all = append(all, xyz.V(x, y))
		}
	}
	regions, err := floodfill.Regions(all, sameAs(grid))
	require.NoError(t, err)
	require.Len(t, regions, 3)
	assert.ElementsMatch(t, []xyz.Vec{xyz.V(0, 0), xyz.V(0, 1), xyz.V(1, 0)}, regions[0])
	assert.ElementsMatch(t, []xyz.Vec{xyz.V(0, 2), xyz.V(1, 1), xyz.V(1, 2)}, regions[1])
	assert.Len(t, regions[2], 3)

	_, err = floodfill.Regions(all, floodfill.WithMaxDepth(-3))
	assert.ErrorIs(t, err, floodfill.ErrOptionViolation)
}
