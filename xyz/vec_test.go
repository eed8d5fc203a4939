package xyz_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransoing/AoC24/xyz"
)

func TestVec_Arithmetic(t *testing.T) {
	a := xyz.V3(1, 2, 3)
	b := xyz.V3(-4, 5, 0)

	assert.Equal(t, xyz.V3(-3, 7, 3), a.Add(b))
	assert.Equal(t, xyz.V3(5, -3, 3), a.Sub(b))
	assert.Equal(t, xyz.V3(3, 6, 9), a.Scale(3))
	assert.Equal(t, xyz.V3(2, -2, 0), xyz.V3(5, -5, 1).Div(2))
	assert.Equal(t, xyz.V3(-1, -2, -3), a.Neg())
	assert.Equal(t, xyz.V3(-3, 7, 3), xyz.Sum(a, b))
	assert.Equal(t, xyz.Vec{}, xyz.Sum())

	// value receivers never alias the caller's copy
	assert.Equal(t, xyz.V3(1, 2, 3), a)
}

func TestVec_InPlace(t *testing.T) {
	acc := xyz.V(0, 0)
	for i := 0; i < 3; i++ {
		acc.Move(xyz.XPos, xyz.YNeg)
	}
	assert.Equal(t, xyz.V(3, -3), acc)

	acc.Mul(-2)
	assert.Equal(t, xyz.V(-6, 6), acc)
}

func TestVec_Sign(t *testing.T) {
	assert.Equal(t, xyz.V3(1, -1, 0), xyz.V3(42, -7, 0).Sign())
	assert.True(t, xyz.Vec{}.Sign().IsZero())
	assert.False(t, xyz.V(0, 1).IsZero())
}

func TestVec_Distances(t *testing.T) {
	a := xyz.V3(1, 1, 1)
	b := xyz.V3(4, -3, 1)
	assert.Equal(t, 7, a.TaxicabDistance(b))
	assert.Equal(t, 7, b.TaxicabDistance(a))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.InDelta(t, math.Sqrt(3), xyz.Vec{}.Distance(a), 1e-9)
	assert.Zero(t, a.TaxicabDistance(a))
}

func TestVec_StringRoundTrip(t *testing.T) {
	cases := []xyz.Vec{
		{},
		xyz.V(3, 4),
		xyz.V3(-12, 0, 99),
		xyz.V3(math.MaxInt32, math.MinInt32, -1),
	}
	for _, v := range cases {
		t.Run(v.String(), func(t *testing.T) {
			got, err := xyz.Parse(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
	assert.Equal(t, "3,4,0", xyz.V(3, 4).String())
}

func TestParse(t *testing.T) {
	v, err := xyz.Parse("6,1")
	require.NoError(t, err)
	assert.Equal(t, xyz.V(6, 1), v)

	v, err = xyz.Parse(" 7 , -2 , 3 ")
	require.NoError(t, err)
	assert.Equal(t, xyz.V3(7, -2, 3), v)

	for _, bad := range []string{"", "1,,2", "a,b", "1,2,3,4", "1.5,2"} {
		_, err := xyz.Parse(bad)
		assert.ErrorIs(t, err, xyz.ErrParse, "input %q", bad)
	}
	assert.Panics(t, func() { xyz.MustParse("nope") })
}

func TestVec_Text(t *testing.T) {
	var v xyz.Vec
	require.NoError(t, v.UnmarshalText([]byte("2,5,-1")))
	assert.Equal(t, xyz.V3(2, 5, -1), v)

	out, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2,5,-1", string(out))

	assert.ErrorIs(t, v.UnmarshalText([]byte("x")), xyz.ErrParse)
	assert.Equal(t, xyz.V3(2, 5, -1), v, "failed unmarshal must not clobber the value")
}

func TestVec_MapKey(t *testing.T) {
	seen := map[xyz.Vec]int{}
	seen[xyz.V(1, 2)]++
	seen[xyz.MustParse("1,2,0")]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[xyz.V(1, 2)])
}
