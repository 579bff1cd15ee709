// Package frontier provides the generic containers shared by every search
// variant in lvsearch: a LIFO Stack, a FIFO Queue and a binary-heap
// PriorityQueue.
//
// All containers are single-goroutine values with O(1) emptiness checks.
// Pop and Peek on an empty container return the zero value and false
// instead of panicking.
//
// PriorityQueue and stale entries:
//
//	The queue never updates an element's priority in place. Algorithms that
//	find a better priority for a logical key simply push that key again
//	("lazy decrease-key") and, on Pop, discard entries whose recorded
//	priority no longer matches their current best. Consumers in this module
//	(search.AStar, dijkstra.ShortestPaths, prim_kruskal.Jarnik) all perform
//	that check.
//
// Complexity:
//
//	Stack.Push/Pop           O(1) amortized
//	Queue.Push/Pop           O(1) amortized
//	PriorityQueue.Push/Pop   O(log n)
package frontier
