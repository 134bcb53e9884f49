package main

import "github.com/maisem/aoc2022"

/*
want=110

....#..
..###.#
#...#.#
.#...##
#.###..
##.#.##
.#..#..
*/
func (s solver) D23p1() any {
	g := newGrove(s.Lines())
	for i := 0; i < 10; i++ {
		g.round()
	}
	return g.emptyGround()
}

// want=20
func (s solver) D23p2() any {
	g := newGrove(s.Lines())
	n := 1
	for g.round() {
		n++
	}
	s.Debug("elves settled after ", n, " rounds")
	return n
}

// grove tracks the elves and the order in which they consider directions,
// which rotates by one every round.
type grove struct {
	elves map[aoc.Pt]bool
	first int
}

var proposalOrder = [...]aoc.Direction{aoc.Up, aoc.Down, aoc.Left, aoc.Right}

func newGrove(lines []string) *grove {
	g := &grove{elves: map[aoc.Pt]bool{}}
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] == '#' {
				g.elves[aoc.Pt{X: x, Y: y}] = true
			}
		}
	}
	return g
}

func (g *grove) alone(p aoc.Pt) bool {
	alone := true
	p.ForNeighbors(func(n aoc.Pt) bool {
		alone = !g.elves[n]
		return alone
	})
	return alone
}

// propose returns where the elf at p wants to go, if anywhere.
func (g *grove) propose(p aoc.Pt) (aoc.Pt, bool) {
	if g.alone(p) {
		return p, false
	}
	for i := range proposalOrder {
		d := proposalOrder[(g.first+i)%len(proposalOrder)]
		ahead := p.Move(d)
		side := d.Turn(true).Delta()
		if !g.elves[ahead] && !g.elves[ahead.Add(side)] && !g.elves[ahead.Sub(side)] {
			return ahead, true
		}
	}
	return p, false
}

// round runs one round and reports whether any elf moved.
func (g *grove) round() bool {
	targets := map[aoc.Pt]aoc.Pt{} // elf -> proposal
	count := map[aoc.Pt]int{}
	for p := range g.elves {
		if t, ok := g.propose(p); ok {
			targets[p] = t
			count[t]++
		}
	}
	g.first = (g.first + 1) % len(proposalOrder)
	moved := false
	next := make(map[aoc.Pt]bool, len(g.elves))
	for p := range g.elves {
		if t, ok := targets[p]; ok && count[t] == 1 {
			next[t] = true
			moved = true
			continue
		}
		next[p] = true
	}
	g.elves = next
	return moved
}

// emptyGround counts the empty tiles in the smallest rectangle holding every
// elf.
func (g *grove) emptyGround() int {
	lo := aoc.AnyKey(g.elves)
	hi := lo
	for p := range g.elves {
		lo = aoc.Pt{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = aoc.Pt{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	return (hi.X-lo.X+1)*(hi.Y-lo.Y+1) - len(g.elves)
}
