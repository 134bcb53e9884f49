package main

import (
	"regexp"
	"slices"
	"strings"

	"github.com/maisem/aoc2022"
	"golang.org/x/exp/maps"
)

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() any {
	v := s.volcano()
	best := map[uint]int{}
	v.explore("AA", 30, 0, 0, best)
	return slices.Max(maps.Values(best))
}

// want=1707
func (s solver) D16p2() any {
	v := s.volcano()
	best := map[uint]int{}
	v.explore("AA", 26, 0, 0, best)
	// The elephant and I open disjoint sets of valves.
	masks := maps.Keys(best)
	most := 0
	for i, a := range masks {
		for _, b := range masks[i:] {
			if a&b == 0 {
				most = max(most, best[a]+best[b])
			}
		}
	}
	return most
}

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

type volcano struct {
	flow   map[string]int
	useful []string // reachable valves with a non-zero flow, bit i of a mask
	dist   map[aoc.Edge[string]]int
}

func (s solver) volcano() *volcano {
	v := &volcano{flow: map[string]int{}}
	var g aoc.Graph[string]
	s.ForLines(func(line string) {
		m := valveRx.FindStringSubmatch(line)
		if m == nil {
			aoc.Log.Fatalf("bad valve: %q", line)
		}
		g.AddNode(m[1])
		v.flow[m[1]] = aoc.Int(m[2])
		for _, to := range strings.Split(m[3], ", ") {
			g.AddEdge(m[1], to, 1)
		}
	})
	for name := range g.ReachableNodes("AA") {
		if v.flow[name] > 0 {
			v.useful = append(v.useful, name)
		}
	}
	slices.Sort(v.useful)
	v.dist = g.AllShortestPaths()
	s.Debugf("%d useful valves: %v", len(v.useful), v.useful)
	return v
}

// explore records in best the most pressure released by opening each set of
// valves, walking from pos with the given minutes left.
func (v *volcano) explore(pos string, left int, mask uint, released int, best map[uint]int) {
	best[mask] = max(best[mask], released)
	for i, name := range v.useful {
		bit := uint(1) << i
		if mask&bit != 0 {
			continue
		}
		t := left - v.dist[aoc.Edge[string]{A: pos, B: name}] - 1
		if t <= 0 {
			continue
		}
		v.explore(name, t, mask|bit, released+t*v.flow[name], best)
	}
}
