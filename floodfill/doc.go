// Package floodfill computes the connected component reachable from an origin
// point, with no notion of cost.
//
// What
//
//   - FloodFill(origin, opts...) explores breadth-first from origin and returns
//     a Result with every reached point exactly once, in discovery order, with
//     its depth (steps from the origin).
//   - Movement rules are supplied per call: a neighbor generator
//     (WithNeighbors, default 2D orthogonal) and an admissibility predicate
//     (WithFilterNeighbor, default accept everything).
//   - WithOnVisit runs a side effect on every newly reached point and may abort
//     the fill by returning an error.
//   - Regions(points, opts...) repeats the fill over a seed list to partition it
//     into connected regions (plots of equal letters, islands, lakes).
//
// Why
//
//   - Count or collect everything reachable: trailheads to summits, garden
//     plots, the inside of a drawn outline.
//   - The engine never owns a grid. Predicates usually read a caller grid with
//     xyz.ValueIn and use its bool result as the boundary check.
//
// Guarantees
//
//   - The predicate runs once per (point, unvisited neighbor) edge and its
//     answer is never cached, so predicates comparing the two cells work.
//   - Removal order only changes traversal order, never the visited set.
//
// Termination
//
//	A predicate that admits an unbounded domain never terminates. That is a
//	caller defect, not an engine error; WithMaxDepth and WithContext are the
//	available escape hatches.
//
// Complexity (V = reached points, d = neighbors per point)
//
//   - Time:   O(V × d)
//   - Memory: O(V)
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option is supplied (negative MaxDepth).
//   - ctx.Err()           if the context is cancelled.
//   - Wrapped user-supplied OnVisit errors.
package floodfill
