package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=13

R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
*/
func (s solver) D9p1() any {
	return ropeTail(s.Lines(), 2)
}

/*
want=36

R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
*/
func (s solver) D9p2() any {
	return ropeTail(s.Lines(), 10)
}

// ropeTail pulls a rope of the given number of knots and returns how many
// cells the last knot visits.
func ropeTail(motions []string, knots int) int {
	rope := make([]aoc.Pt, knots)
	seen := map[aoc.Pt]bool{{}: true}
	for _, m := range motions {
		dir, steps, _ := strings.Cut(m, " ")
		d := aoc.DirectionOf(dir)
		for i := aoc.Int(steps); i > 0; i-- {
			rope[0] = rope[0].Move(d)
			for k := 1; k < knots; k++ {
				if touching(rope[k], rope[k-1]) {
					break
				}
				rope[k] = rope[k].Toward(rope[k-1])
			}
			seen[rope[knots-1]] = true
		}
	}
	return len(seen)
}

func touching(a, b aoc.Pt) bool {
	return aoc.AbsDiff(a.X, b.X) <= 1 && aoc.AbsDiff(a.Y, b.Y) <= 1
}
