package xyz

// Unit vectors along each axis.
var (
	XPos = Vec{X: 1}
	XNeg = Vec{X: -1}
	YPos = Vec{Y: 1}
	YNeg = Vec{Y: -1}
	ZPos = Vec{Z: 1}
	ZNeg = Vec{Z: -1}
)

// Direction tables. They are arrays so that assigning or ranging over them
// never exposes shared backing storage.
var (
	// Orthogonal2D holds the four axis-aligned steps in the XY plane.
	Orthogonal2D = [4]Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

	// Diagonal2D holds the four diagonal steps in the XY plane.
	Diagonal2D = [4]Vec{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}}

	// Orthogonal3D holds the six axis-aligned steps.
	Orthogonal3D = [6]Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}

	// DiagonalPlanes3D holds the diagonal steps that stay on the XY, XZ or YZ plane.
	DiagonalPlanes3D = [12]Vec{
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1},
		{X: 1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: -1}, {X: -1, Z: 1},
		{Y: 1, Z: 1}, {Y: 1, Z: -1}, {Y: -1, Z: -1}, {Y: -1, Z: 1},
	}

	// TrueDiagonal3D holds the steps toward the eight corners of a cube.
	TrueDiagonal3D = [8]Vec{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
	}

	// Clockwise lists up, right, down, left for a plane where +y is up.
	Clockwise = [4]Vec{{Y: 1}, {X: 1}, {Y: -1}, {X: -1}}

	// CounterClockwise lists up, left, down, right for a plane where +y is up.
	CounterClockwise = [4]Vec{{Y: 1}, {X: -1}, {Y: -1}, {X: 1}}
)

// Plane selects the plane a rotation happens in. Each plane is viewed from the
// positive end of the axis it excludes.
type Plane int

const (
	// PlaneXY keeps Z, viewed from +z.
	PlaneXY Plane = iota
	// PlaneXZ keeps Y, viewed from +y.
	PlaneXZ
	// PlaneYZ keeps X, viewed from +x.
	PlaneYZ
)

// RotateCW rotates v by 90° clockwise in the given plane.
func (v Vec) RotateCW(p Plane) Vec {
	switch p {
	case PlaneXZ:
		return Vec{X: -v.Z, Y: v.Y, Z: v.X}
	case PlaneYZ:
		return Vec{X: v.X, Y: v.Z, Z: -v.Y}
	default:
		return Vec{X: v.Y, Y: -v.X, Z: v.Z}
	}
}

// RotateCCW rotates v by 90° counterclockwise in the given plane.
func (v Vec) RotateCCW(p Plane) Vec {
	switch p {
	case PlaneXZ:
		return Vec{X: v.Z, Y: v.Y, Z: -v.X}
	case PlaneYZ:
		return Vec{X: v.X, Y: -v.Z, Z: v.Y}
	default:
		return Vec{X: -v.Y, Y: v.X, Z: v.Z}
	}
}

// Neighbors returns the points adjacent to v in its Z plane: 4 orthogonal,
// followed by 4 diagonal when diagonal is true.
func (v Vec) Neighbors(diagonal bool) []Vec {
	n := len(Orthogonal2D)
	if diagonal {
		n += len(Diagonal2D)
	}
	out := make([]Vec, 0, n)
	for _, d := range Orthogonal2D {
		out = append(out, v.Add(d))
	}
	if diagonal {
		for _, d := range Diagonal2D {
			out = append(out, v.Add(d))
		}
	}
	return out
}

// Neighbors3D returns the 6 orthogonal neighbors of v, followed by the 12
// planar and 8 corner diagonals when diagonal is true.
func (v Vec) Neighbors3D(diagonal bool) []Vec {
	n := len(Orthogonal3D)
	if diagonal {
		n += len(DiagonalPlanes3D) + len(TrueDiagonal3D)
	}
	out := make([]Vec, 0, n)
	for _, d := range Orthogonal3D {
		out = append(out, v.Add(d))
	}
	if !diagonal {
		return out
	}
	for _, d := range DiagonalPlanes3D {
		out = append(out, v.Add(d))
	}
	for _, d := range TrueDiagonal3D {
		out = append(out, v.Add(d))
	}
	return out
}
