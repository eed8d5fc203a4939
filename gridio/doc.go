// Package gridio loads the text grids that the search engines run over.
//
// What:
//
//   - Parse/ParseString read one row per line into a Grid.
//   - Load reads a file, decompressing ".zst" inputs transparently.
//   - Grid is stored x-major (g[x][y]) so xyz.ValueIn(p, g) looks up the rune
//     at column p.X of line p.Y, with the bool result as the bounds check.
//   - Find/FindAll locate marker runes such as 'S' and 'E'.
//   - Digits converts height maps and cost maps to numbers.
//
// Errors:
//
//   - ErrEmptyGrid: input has no lines or no columns.
//   - ErrNonRectangular: lines have differing lengths.
package gridio
