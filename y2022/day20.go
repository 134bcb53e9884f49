package main

import (
	"slices"

	"github.com/maisem/aoc2022"
)

/*
want=3

1
2
-3
3
-2
0
4
*/
func (s solver) D20p1() any {
	return groveCoordinates(mix(s.numbers(), 1, 1))
}

// want=1623178306
func (s solver) D20p2() any {
	return groveCoordinates(mix(s.numbers(), 811589153, 10))
}

func (s solver) numbers() []int {
	var out []int
	s.ForLines(func(line string) {
		out = append(out, aoc.Int(line))
	})
	return out
}

// mix multiplies every value by key and then, rounds times, moves each
// value in its original order forward (or back, if negative) by its value
// around a circular doubly linked list. It returns the result starting from
// the value that was first in vals.
func mix(vals []int, key, rounds int) []int {
	n := len(vals)
	out := make([]int, n)
	for i, v := range vals {
		out[i] = v * key
	}
	if n < 3 {
		return out
	}
	next, prev := make([]int, n), make([]int, n)
	for i := range vals {
		next[i] = (i + 1) % n
		prev[i] = (i - 1 + n) % n
	}
	for r := 0; r < rounds; r++ {
		for i, v := range out {
			// With i lifted out the ring holds n-1 values.
			steps := (v%(n-1) + n - 1) % (n - 1)
			if steps == 0 {
				continue
			}
			next[prev[i]], prev[next[i]] = next[i], prev[i]
			at := prev[i]
			for ; steps > 0; steps-- {
				at = next[at]
			}
			next[i], prev[i] = next[at], at
			prev[next[at]] = i
			next[at] = i
		}
	}
	mixed := make([]int, 0, n)
	for i := 0; len(mixed) < n; i = next[i] {
		mixed = append(mixed, out[i])
	}
	return mixed
}

// groveCoordinates sums the 1000th, 2000th and 3000th values after 0.
func groveCoordinates(mixed []int) int {
	z := slices.Index(mixed, 0)
	if z < 0 {
		aoc.Log.Fatal("no zero in mixed file")
	}
	sum := 0
	for _, off := range [...]int{1000, 2000, 3000} {
		sum += mixed[(z+off)%len(mixed)]
	}
	return sum
}
