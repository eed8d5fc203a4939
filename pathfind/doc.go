// Package pathfind finds the lowest-weight path between two points of a
// grid-like space whose movement rules, step costs and notion of "the same
// state" are all supplied by the caller.
//
// What
//
//   - Search(origin, target, opts...) explores candidate paths from origin
//     and returns the cheapest one found to target, as a Result with the full
//     step history (origin excluded) and the total weight.
//   - QuickestPath(origin, target, opts...) is Search keyed by position: the
//     usual maze query.
//   - A state key decides which candidates compete. The engine keeps the
//     lowest weight seen per key and drops any extension that cannot beat it.
//     Keys can be any comparable type: a point, a (point, heading) struct, a
//     (point, cheats left) struct.
//
// Why
//
//   - Mazes where the cost of the next move depends on how you got here
//     (turning costs, momentum limits, one-shot wall skips) become ordinary
//     searches once the key captures that dependency.
//   - WithOnSnub reports every extension that tied an existing state exactly,
//     which is enough to enumerate all optimal paths and not just one.
//
// Algorithm
//
//  1. The origin is seeded at weight 0 under its own key.
//  2. Candidates leave the frontier one at a time. A candidate standing on the
//     target is a finish and replaces the best finish only if strictly lighter.
//  3. Once a finish is known, a candidate is pruned when
//     weight + AverageWeight × taxicab(position, target) ≥ best finish.
//  4. A candidate is stale when one of its states has since been reached more
//     than FudgeFactor cheaper; stale candidates are dropped.
//  5. Otherwise each admissible neighbor is weighed and keyed. It is dropped
//     when total ≥ best(key) + FudgeFactor (and snubbed when total == best),
//     else the table is lowered and the extension is queued.
//
// Frontier
//
//   - FrontierHeap (default): lightest candidate first, ties in insertion
//     order. With AverageWeight no larger than the true per-step minimum the
//     result is optimal.
//   - FrontierFIFO: insertion order with periodic compaction. Label-correcting
//     rather than label-setting: states can be improved many times, but the
//     final answer is the same under the same lower-bound condition.
//
// History
//
//	Every step is one node in an append-only arena with a parent index, so
//	extending a path is O(1) and siblings share their prefix. History is a
//	read-only view onto that arena, passed to every callback. It ends at the
//	point being left; the prospective point is passed separately.
//
// Complexity (S = distinct states, d = neighbors per point)
//
//   - Heap:  O(S·d·log(S·d)) time, O(S·d) memory for the arena and frontier.
//   - FIFO:  worst case exponential with large FudgeFactor; typically close
//     to the heap on unit weights.
//
// Errors
//
//   - ErrNoStateKey       if Search is called without WithStateKey.
//   - ErrOptionViolation  for negative AverageWeight/FudgeFactor, an unknown
//     Frontier or a non-positive ProgressInterval.
//   - ErrNegativeWeight   if the weight function returns a negative cost.
//   - ctx.Err()           if the context is cancelled.
package pathfind
