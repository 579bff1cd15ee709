package search

import "fmt"

// NodeID indexes a Node inside its Arena.
type NodeID int

// NoParent marks the root node of a search tree.
const NoParent NodeID = -1

// Node records a state reached during search together with the link back to
// the node it was generated from.
type Node[S any] struct {
	// State is the search state carried by this node.
	State S

	// Parent is the arena index of the generating node, or NoParent.
	Parent NodeID

	// Depth is the number of steps from the root.
	Depth int

	// Cost is the accumulated path cost from the root (AStar only; 0 otherwise).
	Cost float64

	// Heuristic is the estimated remaining cost (AStar only; 0 otherwise).
	Heuristic float64
}

// Priority returns Cost + Heuristic, the AStar frontier ordering key.
func (n Node[S]) Priority() float64 { return n.Cost + n.Heuristic }

// Arena owns every Node created during one search run.
//
// Parents are stored as indices and must refer to nodes added earlier, so the
// parent chain of any node strictly decreases and always ends at a root.
type Arena[S any] struct {
	nodes []Node[S]
}

// NewArena returns an empty arena with room for capacity nodes.
func NewArena[S any](capacity int) *Arena[S] {
	return &Arena[S]{nodes: make([]Node[S], 0, capacity)}
}

// Add stores a node for state and returns its id. Depth is derived from the
// parent. Panics if parent is neither NoParent nor an existing node.
func (a *Arena[S]) Add(state S, parent NodeID, cost, heuristic float64) NodeID {
	depth := 0
	if parent != NoParent {
		if parent < 0 || int(parent) >= len(a.nodes) {
			panic(fmt.Sprintf("search: Arena.Add with unknown parent %d (arena size %d)", parent, len(a.nodes)))
		}
		depth = a.nodes[parent].Depth + 1
	}
	a.nodes = append(a.nodes, Node[S]{
		State:     state,
		Parent:    parent,
		Depth:     depth,
		Cost:      cost,
		Heuristic: heuristic,
	})

	return NodeID(len(a.nodes) - 1)
}

// Node returns the node stored under id.
func (a *Arena[S]) Node(id NodeID) (Node[S], bool) {
	if id < 0 || int(id) >= len(a.nodes) {
		return Node[S]{}, false
	}

	return a.nodes[id], true
}

// Len returns the number of nodes in the arena.
func (a *Arena[S]) Len() int { return len(a.nodes) }

// Nodes returns a copy of all nodes in creation order.
func (a *Arena[S]) Nodes() []Node[S] {
	out := make([]Node[S], len(a.nodes))
	copy(out, a.nodes)

	return out
}

// PathOf walks parent links from id back to its root and returns the states
// in root→id order. A root node yields a single-element path; an unknown id
// yields nil.
// Complexity: O(depth).
func (a *Arena[S]) PathOf(id NodeID) []S {
	n, ok := a.Node(id)
	if !ok {
		return nil
	}
	path := make([]S, 0, n.Depth+1)
	for cur := id; cur != NoParent; cur = a.nodes[cur].Parent {
		path = append(path, a.nodes[cur].State)
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
