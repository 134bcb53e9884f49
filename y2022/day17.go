package main

import (
	"strings"

	"github.com/maisem/aoc2022"
	"tailscale.com/util/deephash"
)

/*
want=3068

>>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>
*/
func (s solver) D17p1() any {
	return s.towerHeight(2022)
}

// want=1514285714288
func (s solver) D17p2() any {
	return s.towerHeight(1000000000000)
}

// rocks are the falling shapes as offsets from their bottom-left corner,
// with y growing upward.
var rocks = [][]aoc.Pt{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

const (
	chamberWidth = 7
	skylineDepth = 32
)

type chamber struct {
	rows [][chamberWidth]bool // bottom first
	jets string
	jet  int
}

func (c *chamber) free(p aoc.Pt) bool {
	if p.X < 0 || p.X >= chamberWidth || p.Y < 0 {
		return false
	}
	return p.Y >= len(c.rows) || !c.rows[p.Y][p.X]
}

func (c *chamber) fits(rock []aoc.Pt, at aoc.Pt) bool {
	for _, o := range rock {
		if !c.free(at.Add(o)) {
			return false
		}
	}
	return true
}

// drop lets rock fall from three rows above the tower until it comes to
// rest, alternating jet pushes and falls.
func (c *chamber) drop(rock []aoc.Pt) {
	at := aoc.Pt{X: 2, Y: len(c.rows) + 3}
	for {
		push := aoc.Pt{X: 1}
		if c.jets[c.jet] == '<' {
			push.X = -1
		}
		c.jet = (c.jet + 1) % len(c.jets)
		if c.fits(rock, at.Add(push)) {
			at = at.Add(push)
		}
		down := at.Add(aoc.Pt{Y: -1})
		if !c.fits(rock, down) {
			break
		}
		at = down
	}
	for _, o := range rock {
		p := at.Add(o)
		for len(c.rows) <= p.Y {
			c.rows = append(c.rows, [chamberWidth]bool{})
		}
		c.rows[p.Y][p.X] = true
	}
}

// skyline returns the top n rows of the tower, top first.
func (c *chamber) skyline(n int) aoc.Grid[bool] {
	g := aoc.MakeGrid[bool](chamberWidth, n)
	for i := 0; i < n && i < len(c.rows); i++ {
		copy(g[i], c.rows[len(c.rows)-1-i][:])
	}
	return g
}

// towerHeight drops count rocks. Once the next rock, the jet position and
// the top of the tower repeat, whole cycles are skipped arithmetically.
func (s solver) towerHeight(count int) int {
	c := &chamber{jets: strings.TrimSpace(s.Text())}
	type state struct {
		rock, jet int
		top       deephash.Sum
	}
	type mark struct {
		n, height int
	}
	seen := map[state]mark{}
	skipped := 0
	for n := 0; n < count; n++ {
		r := n % len(rocks)
		if skipped == 0 {
			k := state{r, c.jet, c.skyline(skylineDepth).Hash()}
			if prev, ok := seen[k]; ok {
				period := n - prev.n
				cycles := (count - n) / period
				skipped = cycles * (len(c.rows) - prev.height)
				s.Debugf("cycle of %d rocks at rock %d, skipping %d cycles", period, n, cycles)
				n += cycles * period
				if n >= count {
					break
				}
			} else {
				seen[k] = mark{n, len(c.rows)}
			}
		}
		c.drop(rocks[r])
	}
	return len(c.rows) + skipped
}
