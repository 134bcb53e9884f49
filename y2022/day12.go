package main

import "github.com/maisem/aoc2022"

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	return hillClimb(s.Lines(), false)
}

// want=29
func (s solver) D12p2() any {
	return hillClimb(s.Lines(), true)
}

// hillClimb returns the fewest steps to E from S, or from any lowest square
// if anyStart is set. It searches backwards from E so both questions are a
// single breadth-first search.
func hillClimb(lines []string, anyStart bool) int {
	g := aoc.ParseGrid(lines, func(b byte) byte { return b })
	var start, end aoc.Pt
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			switch g.At(p) {
			case 'S':
				start = p
				g.Set(p, 'a')
			case 'E':
				end = p
				g.Set(p, 'z')
			}
		}
	}
	dist := map[aoc.Pt]int{end: 0}
	found := -1
	q := aoc.NewQueue(end)
	q.While(func(p aoc.Pt) bool {
		h := g.At(p)
		if p == start || (anyStart && h == 'a') {
			found = dist[p]
			return false
		}
		for _, d := range aoc.Directions {
			n := p.Move(d)
			nh, ok := g.AtOk(n)
			if !ok || nh+1 < h {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[p] + 1
			q.Push(n)
		}
		return true
	})
	return found
}
