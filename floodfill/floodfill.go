// Package floodfill explores every point reachable from an origin under
// caller-supplied movement rules, returning the visited set in discovery order.
package floodfill

import (
	"context"
	"fmt"

	"github.com/ransoing/AoC24/xyz"
)

// queueItem pairs a point with its distance from the origin.
type queueItem struct {
	p     xyz.Vec
	depth int
}

// walker encapsulates mutable fill state.
type walker struct {
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// FloodFill visits every point reachable from origin, applying any number of
// functional Options. Each reachable point appears exactly once in the result.
// Returns ErrOptionViolation for bad options, ctx.Err() on cancellation, or a
// wrapped OnVisit error.
func FloodFill(origin xyz.Vec, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		res: &Result{
			Visited: make([]xyz.Vec, 0, 64),
			Depth:   make(map[xyz.Vec]int, 64),
		},
	}
	w.mark(origin, 0)

	return w.res, w.loop()
}

// Regions partitions points into connected regions. Each point not already
// covered seeds a new fill with the same options; the fill's visited set
// becomes one region. Points reachable from an earlier seed are never seeds
// themselves, so every region is reported once, in seed order.
func Regions(points []xyz.Vec, opts ...Option) ([][]xyz.Vec, error) {
	covered := make(map[xyz.Vec]bool, len(points))
	var regions [][]xyz.Vec
	for _, p := range points {
		if covered[p] {
			continue
		}
		res, err := FloodFill(p, opts...)
		if err != nil {
			return nil, fmt.Errorf("floodfill: region at %v: %w", p, err)
		}
		for _, v := range res.Visited {
			covered[v] = true
		}
		regions = append(regions, res.Visited)
	}
	return regions, nil
}

// mark records p as visited and appends it to the work list.
func (w *walker) mark(p xyz.Vec, depth int) {
	w.res.Visited = append(w.res.Visited, p)
	w.res.Depth[p] = depth
	w.queue = append(w.queue, queueItem{p: p, depth: depth})
}

// loop drains the work list until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if err := w.spread(w.queue[head]); err != nil {
			return err
		}
	}
	return nil
}

// spread filters the neighbors of item and marks each admissible, unseen one.
func (w *walker) spread(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, n := range w.opts.Neighbors(item.p) {
		if _, seen := w.res.Depth[n]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(n, item.p) {
			continue
		}
		if err := w.opts.OnVisit(n, next); err != nil {
			return fmt.Errorf("floodfill: OnVisit error at %v: %w", n, err)
		}
		w.mark(n, next)
	}
	return nil
}
