package cities_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/cities"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/prim_kruskal"
)

// ExampleWeightedByDistance lays the cheapest cable connecting every metro.
func ExampleWeightedByDistance() {
	g := cities.WeightedByDistance()
	tree, err := prim_kruskal.Jarnik(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range tree[:4] {
		fmt.Println(g.FormatEdge(e))
	}
	fmt.Println("edges:", len(tree), "miles:", core.TotalWeight(tree))
	// Output:
	// Seattle -(678)> San Francisco
	// San Francisco -(348)> Los Angeles
	// Los Angeles -(50)> Riverside
	// Riverside -(307)> Phoenix
	// edges: 14 miles: 5372
}
