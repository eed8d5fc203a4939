package xyz

// InBounds reports whether p addresses a cell of the x-major 2D grid.
// Z is ignored. Ragged grids are handled per column.
func InBounds[T any](p Vec, grid [][]T) bool {
	return p.X >= 0 && p.X < len(grid) && p.Y >= 0 && p.Y < len(grid[p.X])
}

// InBounds3D reports whether p addresses a cell of the x-major 3D grid.
func InBounds3D[T any](p Vec, grid [][][]T) bool {
	return InBounds(p, grid) && p.Z >= 0 && p.Z < len(grid[p.X][p.Y])
}

// ValueIn returns grid[p.X][p.Y]. The second result is false, and the value
// is T's zero value, when p lies outside the grid.
func ValueIn[T any](p Vec, grid [][]T) (T, bool) {
	if !InBounds(p, grid) {
		var zero T
		return zero, false
	}
	return grid[p.X][p.Y], true
}

// ValueIn3D returns grid[p.X][p.Y][p.Z], or T's zero value and false when any
// axis is out of range.
func ValueIn3D[T any](p Vec, grid [][][]T) (T, bool) {
	if !InBounds3D(p, grid) {
		var zero T
		return zero, false
	}
	return grid[p.X][p.Y][p.Z], true
}

// SetValueIn stores v at grid[p.X][p.Y]. It reports false and leaves the grid
// untouched when p is out of bounds.
func SetValueIn[T any](p Vec, grid [][]T, v T) bool {
	if !InBounds(p, grid) {
		return false
	}
	grid[p.X][p.Y] = v
	return true
}

// SetValueIn3D stores v at grid[p.X][p.Y][p.Z], reporting false when out of bounds.
func SetValueIn3D[T any](p Vec, grid [][][]T, v T) bool {
	if !InBounds3D(p, grid) {
		return false
	}
	grid[p.X][p.Y][p.Z] = v
	return true
}
