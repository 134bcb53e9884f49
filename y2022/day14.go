package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=24

498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
*/
func (s solver) D14p1() any {
	return pourSand(s.Lines(), false)
}

// want=93
func (s solver) D14p2() any {
	return pourSand(s.Lines(), true)
}

var sandSource = aoc.Pt{X: 500, Y: 0}

// pourSand drops sand from the source until it falls past the lowest rock
// or, with a floor two below the lowest rock, until the source is covered.
// It returns the number of grains at rest.
func pourSand(scan []string, floor bool) int {
	blocked := map[aoc.Pt]bool{}
	maxY := 0
	for _, line := range scan {
		var path []aoc.Pt
		for _, v := range strings.Split(line, " -> ") {
			xy := aoc.AllInts(v)
			path = append(path, aoc.Pt{X: xy[0], Y: xy[1]})
		}
		for i := 1; i < len(path); i++ {
			for p := path[i-1]; ; p = p.Toward(path[i]) {
				blocked[p] = true
				maxY = max(maxY, p.Y)
				if p == path[i] {
					break
				}
			}
		}
	}
	count := 0
	for !blocked[sandSource] {
		p := sandSource
	fall:
		for p.Y <= maxY {
			for _, dx := range [...]int{0, -1, 1} {
				if n := (aoc.Pt{X: p.X + dx, Y: p.Y + 1}); !blocked[n] {
					p = n
					continue fall
				}
			}
			break
		}
		if p.Y > maxY && !floor {
			return count
		}
		blocked[p] = true
		count++
	}
	return count
}
