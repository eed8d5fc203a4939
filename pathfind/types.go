// Package pathfind defines options, results and sentinel errors for the
// weighted state-space search.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ransoing/AoC24/xyz"
)

// Sentinel errors returned by Search and QuickestPath.
var (
	// ErrNoStateKey indicates that Search was called without WithStateKey.
	ErrNoStateKey = errors.New("pathfind: state key function is required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrNegativeWeight indicates that the weight function returned a negative
	// edge weight, which would invalidate both pruning and frontier ordering.
	ErrNegativeWeight = errors.New("pathfind: negative edge weight encountered")
)

// Unreachable is the TotalWeight reported when no path reaches the target.
const Unreachable int64 = math.MaxInt64

// DefaultProgressInterval is the number of frontier pops between FIFO
// compactions and debug progress lines.
const DefaultProgressInterval = 10000

// Frontier selects the order in which live candidates are expanded.
type Frontier int

const (
	// FrontierHeap expands candidates in order of accumulated weight (ties in
	// insertion order). The first finish popped is optimal, and only a
	// candidate's own state needs the staleness check.
	FrontierHeap Frontier = iota

	// FrontierFIFO expands candidates in insertion order, compacting the
	// processed prefix every ProgressInterval pops. Superseded candidates are
	// detected by re-checking every state on their history. Equal-weight
	// alternatives are reported in breadth-first order, which some callers
	// enumerating all optimal paths may expect.
	FrontierFIFO
)

// String returns "heap" or "fifo".
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierFIFO:
		return "fifo"
	}
	return fmt.Sprintf("Frontier(%d)", int(f))
}

// Step is one point on a candidate path: where it is, the state key that
// point was entered with, and the weight accumulated from the origin.
type Step[K comparable] struct {
	Point  xyz.Vec
	Key    K
	Weight int64
}

// Options configures a search. Every callback receives the History of the
// candidate being extended; that history ends at the point being left and
// never includes the prospective point.
type Options[K comparable] struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// StateKey identifies the search state of standing at p after following h.
	// Two candidates with equal keys are interchangeable from then on, so the
	// key must carry every bit of history that affects future moves (heading,
	// remaining budget, …) and nothing more. Required by Search.
	StateKey func(p xyz.Vec, h History[K]) K

	// Neighbors lists the points reachable from p, admissible or not.
	// Defaults to the four orthogonal neighbors in p's Z plane.
	Neighbors func(p xyz.Vec, h History[K]) []xyz.Vec

	// CanVisit decides whether the step from `from` to n is legal.
	// Defaults to always true, which searches an unbounded plane.
	CanVisit func(n, from xyz.Vec, h History[K]) bool

	// Weight is the cost of stepping from h.Position() to `to`. Must be ≥ 0.
	// Defaults to 1.
	Weight func(to xyz.Vec, h History[K]) int64

	// AverageWeight is a lower bound on the cost of one step, used only to
	// prune candidates once a finish is known: a candidate is dropped when
	// weight + AverageWeight × taxicab distance ≥ best finish. Too high a
	// value prunes optimal paths. Defaults to 1.
	AverageWeight float64

	// FudgeFactor lets a candidate enter a state whose best weight is at most
	// FudgeFactor-1 better than its own. Only needed when StateKey is coarser
	// than the true state; it slows the search considerably. Defaults to 0.
	FudgeFactor int64

	// OnVisit runs just before a candidate enters p.
	OnVisit func(p xyz.Vec, h History[K])

	// OnSnub runs when an extension is dropped because its state was already
	// reached with exactly the same weight. h includes the dropped step.
	OnSnub func(h History[K], total int64)

	// OnImprove runs on every write to the best-weight table. For a given key
	// the reported weights strictly decrease over a search.
	OnImprove func(key K, weight int64)

	// Frontier selects heap (default) or FIFO candidate ordering.
	Frontier Frontier

	// ProgressInterval sets how many pops pass between FIFO compactions and
	// debug progress lines. Defaults to DefaultProgressInterval.
	ProgressInterval int

	// Logger receives debug progress lines. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option[K comparable] func(*Options[K])

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no state key (Search requires one; QuickestPath keys by position)
//   - orthogonal 2D neighbors, every step legal, unit weights
//   - AverageWeight 1, FudgeFactor 0
//   - no-op hooks
//   - heap frontier, progress every DefaultProgressInterval pops, silent logger
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:              context.Background(),
		Neighbors:        func(p xyz.Vec, _ History[K]) []xyz.Vec { return p.Neighbors(false) },
		CanVisit:         func(_, _ xyz.Vec, _ History[K]) bool { return true },
		Weight:           func(xyz.Vec, History[K]) int64 { return 1 },
		AverageWeight:    1,
		FudgeFactor:      0,
		OnVisit:          func(xyz.Vec, History[K]) {},
		OnImprove:        func(K, int64) {},
		Frontier:         FrontierHeap,
		ProgressInterval: DefaultProgressInterval,
		Logger:           discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStateKey sets the state key function. The key type K of the whole
// search is usually inferred from this option.
func WithStateKey[K comparable](fn func(p xyz.Vec, h History[K]) K) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.StateKey = fn
		}
	}
}

// WithNeighbors replaces the neighbor generator.
func WithNeighbors[K comparable](fn func(p xyz.Vec, h History[K]) []xyz.Vec) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Neighbors = fn
		}
	}
}

// WithCanVisit sets the step legality predicate.
func WithCanVisit[K comparable](fn func(n, from xyz.Vec, h History[K]) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.CanVisit = fn
		}
	}
}

// WithWeight sets the per-step weight function.
func WithWeight[K comparable](fn func(to xyz.Vec, h History[K]) int64) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithAverageWeight sets the per-step lower bound used for pruning.
// Negative or NaN values cause ErrOptionViolation.
func WithAverageWeight[K comparable](w float64) Option[K] {
	return func(o *Options[K]) {
		if w < 0 || math.IsNaN(w) {
			o.err = fmt.Errorf("%w: AverageWeight must be non-negative (%v)", ErrOptionViolation, w)
			return
		}
		o.AverageWeight = w
	}
}

// WithFudgeFactor sets the revisit tolerance. Negative values cause
// ErrOptionViolation.
func WithFudgeFactor[K comparable](f int64) Option[K] {
	return func(o *Options[K]) {
		if f < 0 {
			o.err = fmt.Errorf("%w: FudgeFactor must be non-negative (%d)", ErrOptionViolation, f)
			return
		}
		o.FudgeFactor = f
	}
}

// WithOnVisit registers a callback run before a candidate enters a point.
func WithOnVisit[K comparable](fn func(p xyz.Vec, h History[K])) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnSnub registers a callback for equal-weight paths that are dropped.
// Collecting them lets a caller enumerate every optimal path, not just one.
func WithOnSnub[K comparable](fn func(h History[K], total int64)) Option[K] {
	return func(o *Options[K]) {
		o.OnSnub = fn
	}
}

// WithOnImprove registers a callback for best-weight table writes.
func WithOnImprove[K comparable](fn func(key K, weight int64)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithFrontier selects the candidate ordering. Unknown values cause
// ErrOptionViolation.
func WithFrontier[K comparable](f Frontier) Option[K] {
	return func(o *Options[K]) {
		if f != FrontierHeap && f != FrontierFIFO {
			o.err = fmt.Errorf("%w: unknown frontier %v", ErrOptionViolation, f)
			return
		}
		o.Frontier = f
	}
}

// WithProgressInterval sets the pop interval for FIFO compaction and progress
// logging. n must be positive.
func WithProgressInterval[K comparable](n int) Option[K] {
	return func(o *Options[K]) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ProgressInterval must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressInterval = n
	}
}

// WithLogger routes debug progress lines to l.
func WithLogger[K comparable](l logrus.FieldLogger) Option[K] {
	return func(o *Options[K]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts what happened to candidates during a search.
type Stats struct {
	Expanded int // candidates whose neighbors were generated
	Pruned   int // dropped because they could not beat the best finish
	Stale    int // dropped because a cheaper path superseded their route
	Snubbed  int // extensions dropped for tying an existing state's weight
}

// Result holds the outcome of a search.
//
// History runs from the first step after the origin to the target; it is
// empty when origin == target and nil when the target is unreachable, in
// which case TotalWeight is Unreachable.
type Result[K comparable] struct {
	History     []Step[K]
	TotalWeight int64
	Stats       Stats
}

// Reachable reports whether a path to the target was found.
func (r *Result[K]) Reachable() bool {
	return r.TotalWeight != Unreachable
}

// Points returns the points of History in order.
func (r *Result[K]) Points() []xyz.Vec {
	out := make([]xyz.Vec, len(r.History))
	for i, s := range r.History {
		out[i] = s.Point
	}
	return out
}
