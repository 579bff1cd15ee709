package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/maze"
)

func ExampleMaze_Solve() {
	m, err := maze.Parse([]string{
		"S  X ",
		"XX X ",
		"   XG",
		" X   ",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := m.Solve(maze.MethodAStar)
	if err != nil {
		fmt.Println(err)
		return
	}
	m.MarkPath(res.Path())
	fmt.Print(strings.ReplaceAll(m.String(), " ", "."))
	fmt.Println("steps:", len(res.Path())-1)
	// Output:
	// S**X.
	// XX*X.
	// ..*XG
	// .X***
	// steps: 8
}
