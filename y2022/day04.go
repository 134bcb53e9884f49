package main

import (
	"fmt"

	"github.com/maisem/aoc2022"
)

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	return s.countAssignments(func(a, b [2]int) bool {
		return (a[0] <= b[0] && a[1] >= b[1]) || (b[0] <= a[0] && b[1] >= a[1])
	})
}

// want=4
func (s solver) D4p2() any {
	return s.countAssignments(func(a, b [2]int) bool {
		return a[0] <= b[1] && b[0] <= a[1]
	})
}

func (s solver) countAssignments(match func(a, b [2]int) bool) int {
	n := 0
	s.ForLines(func(line string) {
		var a, b [2]int
		aoc.MustGet(fmt.Sscanf(line, "%d-%d,%d-%d", &a[0], &a[1], &b[0], &b[1]))
		if match(a, b) {
			n++
		}
	})
	return n
}
