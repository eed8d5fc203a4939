// Package floodfill provides tunable options and error definitions
// for unweighted reachability over caller-defined neighborhoods.
package floodfill

import (
	"context"
	"errors"
	"fmt"

	"github.com/ransoing/AoC24/xyz"
)

// Sentinel errors for flood fill execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
)

// Option configures flood fill behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when FloodFill is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a flood fill.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Neighbors lists the points reachable in one step from p, admissible
	// or not. Defaults to the four orthogonal neighbors in p's Z plane.
	Neighbors func(p xyz.Vec) []xyz.Vec

	// FilterNeighbor decides whether the fill may step from `from` to n.
	// It is called once per candidate edge whose target has not been visited.
	// Without a filter the fill never ends on an unbounded plane.
	FilterNeighbor func(n, from xyz.Vec) bool

	// OnVisit runs for every accepted neighbor before it is marked visited.
	// Returning an error aborts the fill and propagates that error.
	OnVisit func(p xyz.Vec, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps from the origin.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - orthogonal 2D neighbors
//   - no filtering (every neighbor admissible)
//   - no-op OnVisit
//   - no depth limit
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Neighbors:      func(p xyz.Vec) []xyz.Vec { return p.Neighbors(false) },
		FilterNeighbor: func(_, _ xyz.Vec) bool { return true },
		OnVisit:        func(xyz.Vec, int) error { return nil },
		MaxDepth:       0,
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

// WithNeighbors replaces the neighbor generator, e.g. to fill in 3D:
//
//	floodfill.WithNeighbors(func(p xyz.Vec) []xyz.Vec { return p.Neighbors3D(false) })
func WithNeighbors(fn func(p xyz.Vec) []xyz.Vec) Option {
	return func(o *Options) {
		if fn != nil {
			o.Neighbors = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(n, from xyz.Vec) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a callback run on each newly reached point; returning
// an error from this callback stops the fill.
func WithOnVisit(fn func(p xyz.Vec, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the fill at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a flood fill:
//   - Visited: every reached point in discovery order, origin first.
//   - Depth: steps from the origin to each visited point.
type Result struct {
	Visited []xyz.Vec
	Depth   map[xyz.Vec]int
}

// Len returns the number of visited points.
func (r *Result) Len() int { return len(r.Visited) }

// Contains reports whether p was reached.
func (r *Result) Contains(p xyz.Vec) bool {
	_, ok := r.Depth[p]
	return ok
}
