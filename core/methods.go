// File: methods.go
// Role: Human-readable rendering of graphs and edges.

package core

import (
	"fmt"
	"strings"
)

// String renders the edge as "u -> v" for unweighted payloads and
// "u -(w)> v" otherwise.
func (e Edge[W]) String() string {
	if _, ok := any(e.Weight).(Unit); ok {
		return fmt.Sprintf("%d -> %d", e.U, e.V)
	}

	return fmt.Sprintf("%d -(%v)> %d", e.U, e.Weight, e.V)
}

// String renders one line per vertex: "label -> [neighbor labels]".
func (g *Graph[L, W]) String() string {
	var sb strings.Builder
	for i, l := range g.labels {
		nbs := make([]L, 0, len(g.edges[i]))
		for _, e := range g.edges[i] {
			nbs = append(nbs, g.labels[e.V])
		}
		fmt.Fprintf(&sb, "%v -> %v\n", l, nbs)
	}

	return sb.String()
}

// FormatEdge renders e with vertex labels instead of indices, e.g.
// "Seattle -(678)> San Francisco". Out-of-range endpoints fall back to the index.
func (g *Graph[L, W]) FormatEdge(e Edge[W]) string {
	label := func(i int) string {
		if l, err := g.VertexAt(i); err == nil {
			return fmt.Sprint(l)
		}
		return fmt.Sprintf("#%d", i)
	}
	if _, ok := any(e.Weight).(Unit); ok {
		return fmt.Sprintf("%s -> %s", label(e.U), label(e.V))
	}

	return fmt.Sprintf("%s -(%v)> %s", label(e.U), e.Weight, label(e.V))
}
