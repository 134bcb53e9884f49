package main

import (
	"github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/monkeymap"
)

/*
want=6032

        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
*/
func (s solver) D22p1() any {
	return s.monkeyMap(true)
}

// want=5031
func (s solver) D22p2() any {
	return s.monkeyMap(false)
}

// monkeyMap walks the notes with the hand-made fold of the net in play,
// flat for part 1 and as a cube for part 2.
func (s solver) monkeyMap(wrap bool) int {
	fold := monkeymap.FoldFor(s.SampleMode, wrap)
	s.Debugf("using fold %v", fold)
	return aoc.MustGet(monkeymap.Solve(string(s.Input()), fold))
}
