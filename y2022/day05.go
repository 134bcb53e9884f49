package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() any {
	return s.rearrange(func(from, to *aoc.Stack[byte], n int) {
		for i := 0; i < n; i++ {
			c, ok := from.Pop()
			if !ok {
				aoc.Log.Fatal("move from an empty stack")
			}
			to.Push(c)
		}
	})
}

// want=MCD
func (s solver) D5p2() any {
	return s.rearrange(func(from, to *aoc.Stack[byte], n int) {
		to.Push(from.PopN(n)...)
	})
}

func (s solver) rearrange(move func(from, to *aoc.Stack[byte], n int)) string {
	sections := s.Sections()
	stacks := parseCrates(sections[0])
	for _, line := range strings.Split(sections[1], "\n") {
		var n, from, to int
		aoc.MustGet(fmt.Sscanf(line, "move %d from %d to %d", &n, &from, &to))
		move(stacks[from-1], stacks[to-1], n)
	}
	var tops strings.Builder
	for _, st := range stacks {
		if c, ok := st.Peek(); ok {
			tops.WriteByte(c)
		}
	}
	return tops.String()
}

// parseCrates reads the drawing of crate stacks. The last line numbers the
// stacks and gives the column each is drawn in.
func parseCrates(drawing string) []*aoc.Stack[byte] {
	lines := strings.Split(drawing, "\n")
	labels := lines[len(lines)-1]
	var stacks []*aoc.Stack[byte]
	for col := 0; col < len(labels); col++ {
		if labels[col] < '1' || labels[col] > '9' {
			continue
		}
		st := &aoc.Stack[byte]{}
		for y := len(lines) - 2; y >= 0; y-- {
			if col < len(lines[y]) && lines[y][col] >= 'A' && lines[y][col] <= 'Z' {
				st.Push(lines[y][col])
			}
		}
		stacks = append(stacks, st)
	}
	return stacks
}
