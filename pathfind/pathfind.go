// Package pathfind finds the lowest-weight path between two points through a
// caller-defined state space.
package pathfind

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ransoing/AoC24/xyz"
)

// Search finds the lowest-weight path from origin to target. The state key
// function must be supplied with WithStateKey; its return type fixes K.
//
// Returns:
//
//   - a Result whose History excludes origin and ends at target, or whose
//     TotalWeight is Unreachable when no admissible path exists.
//   - ErrNoStateKey, ErrOptionViolation, ErrNegativeWeight (wrapped with the
//     offending step) or ctx.Err() on failure.
//
// The search is single-threaded and every callback runs synchronously on the
// calling goroutine. Concurrent searches share nothing.
func Search[K comparable](origin, target xyz.Vec, opts ...Option[K]) (*Result[K], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.StateKey == nil {
		return nil, ErrNoStateKey
	}

	// 2) Run
	r := &runner[K]{
		opts:         cfg,
		ctx:          cfg.Ctx,
		target:       target,
		arena:        newArena[K](origin),
		best:         make(map[K]int64, 256),
		front:        newFrontier(cfg.Frontier, cfg.ProgressInterval),
		finish:       -1,
		finishWeight: Unreachable,
		log:          cfg.Logger.WithField("frontier", cfg.Frontier.String()),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// QuickestPath is Search keyed by position alone: a point reached once at its
// best weight is never entered again. Suited to any maze where how a point was
// reached does not change where one may go next.
func QuickestPath(origin, target xyz.Vec, opts ...Option[xyz.Vec]) (*Result[xyz.Vec], error) {
	all := make([]Option[xyz.Vec], 0, len(opts)+1)
	all = append(all, WithStateKey(PointKey))
	all = append(all, opts...)
	return Search(origin, target, all...)
}

// PointKey is the state key that identifies a state by its position only.
func PointKey(p xyz.Vec, _ History[xyz.Vec]) xyz.Vec { return p }

// runner holds the mutable state for a single search.
type runner[K comparable] struct {
	opts   Options[K]
	ctx    context.Context
	target xyz.Vec
	arena  *arena[K]
	best   map[K]int64 // lowest weight seen per state key
	front  frontier

	finish       int   // arena index of the best finish, -1 if none
	finishWeight int64 // Unreachable until a finish is found

	pops  int
	stats Stats
	log   logrus.FieldLogger
}

// init records the origin state at weight 0 and queues it.
func (r *runner[K]) init() {
	key := r.opts.StateKey(r.arena.nodes[0].step.Point, History[K]{a: r.arena})
	r.arena.nodes[0].step.Key = key
	r.improve(key, 0)
	r.front.push(candidate{node: 0, weight: 0})
}

// process pops candidates until the frontier drains, recording finishes,
// dropping hopeless or superseded candidates and expanding the rest.
func (r *runner[K]) process() error {
	for {
		c, ok := r.front.pop()
		if !ok {
			break
		}
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}
		r.pops++
		if r.pops%r.opts.ProgressInterval == 0 {
			r.progress(c)
		}

		p := r.arena.nodes[c.node].step.Point

		// 1) A candidate standing on the target is a finish, never expanded.
		if p == r.target {
			if c.weight < r.finishWeight {
				r.finish = c.node
				r.finishWeight = c.weight
			}
			continue
		}

		// 2) Even at AverageWeight per remaining step it cannot beat the best finish.
		if r.finishWeight != Unreachable &&
			float64(c.weight)+r.opts.AverageWeight*float64(p.TaxicabDistance(r.target)) >= float64(r.finishWeight) {
			r.stats.Pruned++
			continue
		}

		// 3) A cheaper path reached one of its states after it was queued.
		if r.stale(c.node) {
			r.stats.Stale++
			continue
		}

		if err := r.expand(c); err != nil {
			return err
		}
	}

	r.log.WithFields(logrus.Fields{
		"popped":   r.pops,
		"expanded": r.stats.Expanded,
		"pruned":   r.stats.Pruned,
		"stale":    r.stats.Stale,
		"snubbed":  r.stats.Snubbed,
		"states":   len(r.best),
		"weight":   r.finishWeight,
	}).Debug("pathfind: search finished")

	return nil
}

// stale reports whether any state on the path ending at idx now has a best
// weight more than FudgeFactor below the weight this path carried there.
// With a heap frontier every ancestor was popped at its final weight, so only
// the tip is checked.
func (r *runner[K]) stale(idx int) bool {
	for i := idx; ; i = r.arena.nodes[i].parent {
		s := r.arena.nodes[i].step
		if r.best[s.Key]+r.opts.FudgeFactor < s.Weight {
			return true
		}
		if i == 0 || r.opts.Frontier == FrontierHeap {
			return false
		}
	}
}

// expand extends the candidate by every admissible neighbor whose state it
// reaches more cheaply than any path so far (within FudgeFactor).
func (r *runner[K]) expand(c candidate) error {
	r.stats.Expanded++
	h := History[K]{a: r.arena, tip: c.node}
	from := h.Position()

	var w, total int64
	for _, n := range r.opts.Neighbors(from, h) {
		if !r.opts.CanVisit(n, from, h) {
			continue
		}

		w = r.opts.Weight(n, h)
		if w < 0 {
			return fmt.Errorf("%w: step %v→%v weight=%d", ErrNegativeWeight, from, n, w)
		}
		total = c.weight + w
		key := r.opts.StateKey(n, h)

		if prev, seen := r.best[key]; seen {
			if total >= prev+r.opts.FudgeFactor {
				if total == prev {
					r.snub(Step[K]{Point: n, Key: key, Weight: total}, c.node)
				}
				continue
			}
			if total < prev {
				r.improve(key, total)
			}
		} else {
			r.improve(key, total)
		}

		r.opts.OnVisit(n, h)
		idx := r.arena.push(Step[K]{Point: n, Key: key, Weight: total}, c.node)
		r.front.push(candidate{node: idx, weight: total})
	}

	return nil
}

// improve lowers the best weight of key.
func (r *runner[K]) improve(key K, w int64) {
	r.best[key] = w
	r.opts.OnImprove(key, w)
}

// snub reports an extension that tied the best weight of its state.
func (r *runner[K]) snub(s Step[K], parent int) {
	r.stats.Snubbed++
	if r.opts.OnSnub == nil {
		return
	}
	idx := r.arena.push(s, parent)
	r.opts.OnSnub(History[K]{a: r.arena, tip: idx}, s.Weight)
}

func (r *runner[K]) progress(c candidate) {
	fields := logrus.Fields{
		"popped":   r.pops,
		"pending":  r.front.len(),
		"depth":    r.arena.nodes[c.node].depth,
		"weight":   c.weight,
		"states":   len(r.best),
		"expanded": r.stats.Expanded,
	}
	if r.finishWeight != Unreachable {
		fields["best_finish"] = r.finishWeight
	}
	if f, ok := r.front.(*fifoFrontier); ok {
		fields["compactions"] = f.compactions
	}
	r.log.WithFields(fields).Debug("pathfind: progress")
}

// result materializes the best finish, if any.
func (r *runner[K]) result() *Result[K] {
	res := &Result[K]{TotalWeight: r.finishWeight, Stats: r.stats}
	if r.finish >= 0 {
		res.History = History[K]{a: r.arena, tip: r.finish}.Steps()
	}
	return res
}
