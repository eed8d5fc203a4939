package xyz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrParse is returned when text cannot be read as a coordinate.
var ErrParse = errors.New("xyz: malformed coordinate")

// Vec is an integer coordinate or direction in up to three dimensions.
// The zero value is the origin.
type Vec struct {
	X, Y, Z int
}

// V returns the 2D vector (x, y, 0).
func V(x, y int) Vec { return Vec{X: x, Y: y} }

// V3 returns the vector (x, y, z).
func V3(x, y, z int) Vec { return Vec{X: x, Y: y, Z: z} }

// Sum adds all vs together. Sum() is the origin.
func Sum(vs ...Vec) Vec {
	var out Vec
	out.Move(vs...)
	return out
}

// Add returns v plus every vector in vs.
func (v Vec) Add(vs ...Vec) Vec {
	v.Move(vs...)
	return v
}

// Sub returns v minus every vector in vs.
func (v Vec) Sub(vs ...Vec) Vec {
	for _, o := range vs {
		v.X -= o.X
		v.Y -= o.Y
		v.Z -= o.Z
	}
	return v
}

// Scale returns v with every axis multiplied by k.
func (v Vec) Scale(k int) Vec {
	v.Mul(k)
	return v
}

// Div returns v with every axis divided by k, truncating toward zero.
// k must not be 0.
func (v Vec) Div(k int) Vec {
	return Vec{X: v.X / k, Y: v.Y / k, Z: v.Z / k}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Move adds vs to v in place. Use it only on values the caller owns, such as
// a loop accumulator.
func (v *Vec) Move(vs ...Vec) {
	for _, o := range vs {
		v.X += o.X
		v.Y += o.Y
		v.Z += o.Z
	}
}

// Mul multiplies v by k in place.
func (v *Vec) Mul(k int) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// Sign returns a vector whose axes are -1, 0 or 1 according to the sign of
// the matching axis of v.
func (v Vec) Sign() Vec {
	return Vec{X: sign(v.X), Y: sign(v.Y), Z: sign(v.Z)}
}

// IsZero reports whether v is the origin.
func (v Vec) IsZero() bool { return v == Vec{} }

// TaxicabDistance returns |dx| + |dy| + |dz| between v and o.
func (v Vec) TaxicabDistance(o Vec) int {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y) + absDiff(v.Z, o.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	dx, dy, dz := float64(v.X-o.X), float64(v.Y-o.Y), float64(v.Z-o.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String returns the canonical "x,y,z" form.
func (v Vec) String() string {
	return strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z)
}

// Parse reads a coordinate from its "x,y,z" form. One or two components are
// accepted as well; missing axes are 0, so "3,4" parses as (3,4,0).
func Parse(s string) (Vec, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) > 3 {
		return Vec{}, fmt.Errorf("%w: %q has %d components", ErrParse, s, len(parts))
	}
	var axes [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Vec{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		axes[i] = n
	}
	return Vec{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for literals in tests
// and examples.
func MustParse(s string) Vec {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vec) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func sign[T constraints.Signed](n T) T {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func absDiff[T constraints.Signed](a, b T) T {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d
}
