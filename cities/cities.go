// Package cities provides the fifteen-metro US route network used by the
// examples and the lvsearch command: an unweighted graph for hop counts and
// a graph weighted by road distance in miles.
package cities

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Route is one undirected road between two metros.
type Route struct {
	From, To string
	Miles    int
}

// names fixes the vertex order of both graphs.
var names = []string{
	"Seattle", "San Francisco", "Los Angeles", "Riverside", "Phoenix",
	"Chicago", "Boston", "New York", "Atlanta", "Miami",
	"Dallas", "Houston", "Detroit", "Philadelphia", "Washington",
}

var routes = []Route{
	{"Seattle", "Chicago", 1737},
	{"Seattle", "San Francisco", 678},
	{"San Francisco", "Riverside", 386},
	{"San Francisco", "Los Angeles", 348},
	{"Los Angeles", "Riverside", 50},
	{"Los Angeles", "Phoenix", 357},
	{"Riverside", "Phoenix", 307},
	{"Riverside", "Chicago", 1704},
	{"Phoenix", "Dallas", 887},
	{"Phoenix", "Houston", 1015},
	{"Dallas", "Chicago", 805},
	{"Dallas", "Atlanta", 721},
	{"Dallas", "Houston", 225},
	{"Houston", "Atlanta", 702},
	{"Houston", "Miami", 968},
	{"Atlanta", "Chicago", 588},
	{"Atlanta", "Washington", 543},
	{"Atlanta", "Miami", 604},
	{"Miami", "Washington", 923},
	{"Chicago", "Detroit", 238},
	{"Detroit", "Boston", 613},
	{"Detroit", "Washington", 396},
	{"Detroit", "New York", 482},
	{"Boston", "New York", 190},
	{"New York", "Philadelphia", 81},
	{"Philadelphia", "Washington", 123},
}

// Names returns the metro names in vertex order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Routes returns every road in insertion order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Unweighted returns the route network with unit edges, for hop-count
// searches such as BFS.
func Unweighted() *core.Graph[string, core.Unit] {
	return build(func(Route) core.Unit { return core.Unit{} })
}

// WeightedByDistance returns the route network weighted by miles.
func WeightedByDistance() *core.Graph[string, int] {
	return build(func(r Route) int { return r.Miles })
}

func build[W any](weight func(Route) W) *core.Graph[string, W] {
	g := core.NewGraph[string, W](names...)
	for _, r := range routes {
		if err := g.AddEdgeByLabels(r.From, r.To, weight(r)); err != nil {
			panic(fmt.Sprintf("cities: route %s-%s: %v", r.From, r.To, err))
		}
	}
	return g
}
