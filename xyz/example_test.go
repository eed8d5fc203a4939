package xyz_test

import (
	"fmt"

	"github.com/ransoing/AoC24/xyz"
)

// ExampleVec_RotateCW turns a walker right at every step around a square.
func ExampleVec_RotateCW() {
	pos, dir := xyz.V(0, 0), xyz.YPos
	for i := 0; i < 4; i++ {
		pos.Move(dir.Scale(2))
		dir = dir.RotateCW(xyz.PlaneXY)
		fmt.Println(pos)
	}
	// Output:
	// 0,2,0
	// 2,2,0
	// 2,0,0
	// 0,0,0
}

// ExampleValueIn uses the out-of-bounds flag as the boundary check.
func ExampleValueIn() {
	grid := [][]rune{[]rune("#."), []rune("..")}
	for _, p := range []xyz.Vec{xyz.V(0, 0), xyz.V(1, 1), xyz.V(2, 0)} {
		v, ok := xyz.ValueIn(p, grid)
		fmt.Printf("%v %q %v\n", p, v, ok)
	}
	// Output:
	// 0,0,0 '#' true
	// 1,1,0 '.' true
	// 2,0,0 '\x00' false
}
