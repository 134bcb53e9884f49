package aoc

import "math"

// Graph is a weighted undirected graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

type Edge[T comparable] struct {
	A, B T
}

// AllShortestPaths returns the shortest distance between every pair of
// nodes (Floyd–Warshall). Unconnected pairs are math.MaxInt.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
				dist[key{k2, k1}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
				dist[key{k2, k1}] = math.MaxInt
			}
		}
	}
	// k2 is the intermediate node and must be the outermost loop.
	for k2 := range g.Nodes {
		for k1 := range g.Nodes {
			e12 := dist[key{k1, k2}]
			if e12 == math.MaxInt {
				continue
			}
			for k3 := range g.Nodes {
				e23 := dist[key{k2, k3}]
				if e23 == math.MaxInt {
					continue
				}
				if e := e12 + e23; e < dist[key{k1, k3}] {
					dist[key{k1, k3}] = e
				}
			}
		}
	}
	return dist
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}
