// Package xyz provides the integer coordinate type shared by every search in
// this module, plus the small amount of geometry puzzle solvers lean on.
//
// What
//
//   - Vec: a comparable 3-axis integer vector. Two-dimensional work simply
//     leaves Z at 0. Because Vec is a plain value it can be used directly as a
//     map key; its text form "x,y,z" round-trips through Parse.
//   - Arithmetic that returns new values (Add, Sub, Scale, Div, Neg, Sign) and
//     two explicit in-place accumulators (Move, Mul) for loop-owned values.
//   - Direction tables (Orthogonal2D, Diagonal2D, Orthogonal3D, …) stored as
//     arrays, so callers always receive a copy.
//   - Rotations by 90° about the XY, XZ or YZ plane.
//   - Taxicab and Euclidean distances.
//   - Neighbor generation in 2D (4 or 8) and 3D (6 or 26).
//   - A grid adapter: ValueIn / ValueIn3D read a caller-owned [][]T or
//     [][][]T at grid[x][y] (or grid[x][y][z]) and report false when any axis
//     is out of range. That boolean is the only bounds check callers get.
//
// Orientation
//
//	Grids are indexed x-major: grid[x][y]. gridio.Grid follows the same
//	convention, with x the column and y the line number. Clockwise and
//	CounterClockwise list directions for a plane where +y is up and +x is right.
//
// Complexity
//
//   - Every Vec operation is O(1); Neighbors/Neighbors3D allocate one slice.
//
// Errors
//
//   - ErrParse: Parse / UnmarshalText received text that is not 1–3
//     comma-separated integers.
package xyz
