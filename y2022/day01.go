package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	return slices.Max(elfCalories(s.Text()))
}

// want=45000
func (s solver) D1p2() any {
	return topCalories(elfCalories(s.Text()), 3)
}

// elfCalories returns the total of each blank-line separated group.
func elfCalories(input string) []int {
	var out []int
	for _, group := range strings.Split(input, "\n\n") {
		out = append(out, aoc.Sum(aoc.Ints(strings.Fields(group)...)...))
	}
	return out
}

// topCalories sums the n largest totals.
func topCalories(cals []int, n int) int {
	pq := aoc.MaxQueue[int]()
	for _, c := range cals {
		pq.PushValue(c, c)
	}
	sum := 0
	for i := 0; i < n && pq.Len() > 0; i++ {
		sum += pq.Pop().V
	}
	return sum
}
