// Package graph implements uniform-cost shortest-path search over small
// puzzle graphs.
package graph

import (
	"container/heap"
)

// Edge is a directed, weighted connection to another node.
type Edge struct {
	To   int
	Cost int
}

// Graph exposes a node set as contiguous indices with per-node edges.
type Graph interface {
	NumNodes() int
	Edges(node int) []Edge
}

// NoDest searches the whole graph instead of stopping at a destination.
const NoDest = -1

// PathSearch holds the result of a shortest-path search: per-node best
// costs and the previous-node chain used to reconstruct paths. Unreached
// nodes have cost -1 and previous -1.
type PathSearch struct {
	Start    int
	Dest     int
	Previous []int
	Costs    []int
}

type openEntry struct {
	prev, node, cost int
}

type openQueue []openEntry

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x any)         { *q = append(*q, x.(openEntry)) }
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// ShortestPaths runs a uniform-cost search from start. With dest == NoDest
// the search fills the whole reachable graph; otherwise it stops as soon as
// dest is settled.
func ShortestPaths(g Graph, start, dest int) PathSearch {
	numNodes := g.NumNodes()

	previous := make([]int, numNodes)
	costs := make([]int, numNodes)
	for i := range costs {
		previous[i] = -1
		costs[i] = -1
	}

	open := &openQueue{{prev: -1, node: start, cost: 0}}
	for open.Len() > 0 {
		entry := heap.Pop(open).(openEntry)
		if costs[entry.node] >= 0 {
			continue // already settled by a cheaper route
		}
		previous[entry.node] = entry.prev
		costs[entry.node] = entry.cost

		if entry.node == dest {
			break
		}
		for _, e := range g.Edges(entry.node) {
			if costs[e.To] < 0 {
				heap.Push(open, openEntry{prev: entry.node, node: e.To, cost: entry.cost + e.Cost})
			}
		}
	}

	return PathSearch{Start: start, Dest: dest, Previous: previous, Costs: costs}
}

// Path reconstructs the node sequence from Start to Dest, or nil when no
// destination was given or it was not reached.
func (s PathSearch) Path() []int {
	if s.Dest == NoDest || s.Costs[s.Dest] < 0 {
		return nil
	}
	var path []int
	for node := s.Dest; node != -1; node = s.Previous[node] {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FarthestDistance returns the highest settled cost.
func (s PathSearch) FarthestDistance() int {
	farthest := 0
	for _, cost := range s.Costs {
		if cost > farthest {
			farthest = cost
		}
	}
	return farthest
}

// ShortestPath is a convenience wrapper returning only the node sequence.
func ShortestPath(g Graph, start, dest int) []int {
	return ShortestPaths(g, start, dest).Path()
}

// FarthestFrom returns the distance to the node farthest from start.
func FarthestFrom(g Graph, start int) int {
	return ShortestPaths(g, start, NoDest).FarthestDistance()
}
