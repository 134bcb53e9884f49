package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=13140

addx 15
addx -11
addx 6
addx -3
addx 5
addx -1
addx -8
addx 13
addx 4
noop
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx 5
addx -1
addx -35
addx 1
addx 24
addx -19
addx 1
addx 16
addx -11
noop
noop
addx 21
addx -15
noop
noop
addx -3
addx 9
addx 1
addx -3
addx 8
addx 1
addx 5
noop
noop
noop
noop
noop
addx -36
noop
addx 1
addx 7
noop
noop
noop
addx 2
addx 6
noop
noop
noop
noop
noop
addx 1
noop
noop
addx 7
addx 1
noop
addx -13
addx 13
addx 7
noop
addx 1
addx -33
noop
noop
noop
addx 2
noop
noop
noop
addx 8
noop
addx -1
addx 2
addx 1
noop
addx 17
addx -9
addx 1
addx 1
addx -3
addx 11
noop
noop
addx 1
noop
addx 1
noop
noop
addx -13
addx -19
addx 1
addx 3
addx 26
addx -30
addx 12
addx -1
addx 3
addx 1
noop
noop
noop
addx -9
addx 18
addx 1
addx 2
noop
noop
addx 9
noop
noop
noop
addx -1
addx 2
addx -37
addx 1
addx 3
noop
addx 15
addx -21
addx 22
addx -6
addx 1
noop
addx 2
addx 1
noop
addx -10
noop
noop
addx 20
addx 1
addx 2
addx 2
addx -6
addx -11
noop
noop
noop
*/
func (s solver) D10p1() any {
	trace := cpuTrace(s.Lines())
	sum := 0
	for c := 20; c <= 220 && c < len(trace); c += 40 {
		sum += c * trace[c]
	}
	return sum
}

// want="##..##..##..##..##..##..##..##..##..##..\n###...###...###...###...###...###...###.\n####....####....####....####....####....\n#####.....#####.....#####.....#####.....\n######......######......######......####\n#######.......#######.......#######....."
func (s solver) D10p2() any {
	return crtScreen(cpuTrace(s.Lines()))
}

// cpuTrace runs the program and returns the X register during each cycle.
// Cycles are numbered from 1; trace[0] is unused.
func cpuTrace(program []string) []int {
	x := 1
	trace := []int{x}
	for _, in := range program {
		trace = append(trace, x)
		if v, ok := strings.CutPrefix(in, "addx "); ok {
			trace = append(trace, x)
			x += aoc.Int(v)
		}
	}
	return trace
}

// crtScreen draws the 40x6 display: a pixel is lit when the three-wide
// sprite centred on X covers the beam.
func crtScreen(trace []int) string {
	var rows []string
	for y := 0; y < 6; y++ {
		row := make([]byte, 40)
		for x := range row {
			row[x] = '.'
			if c := y*40 + x + 1; c < len(trace) && aoc.AbsDiff(trace[c], x) <= 1 {
				row[x] = '#'
			}
		}
		rows = append(rows, string(row))
	}
	return strings.Join(rows, "\n")
}
