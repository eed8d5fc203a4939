package gridio_test

import (
	"fmt"

	"github.com/ransoing/AoC24/gridio"
)

// ExampleParseString locates the start and end markers of a maze.
func ExampleParseString() {
	g, err := gridio.ParseString("#####\n#S.E#\n#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := g.Find('S')
	e, _ := g.Find('E')
	fmt.Println(g.Width(), g.Height(), s, e)
	// Output: 5 3 1,1,0 3,1,0
}
