package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	sum := 0
	s.ForLines(func(line string) {
		half := len(line) / 2
		sum += priority(sharedItem(line[:half], line[half:]))
	})
	return sum
}

// want=70
func (s solver) D3p2() any {
	lines := s.Lines()
	sum := 0
	for i := 0; i+2 < len(lines); i += 3 {
		sum += priority(sharedItem(lines[i], lines[i+1], lines[i+2]))
	}
	return sum
}

// sharedItem returns the first item of first that appears in all of rest.
func sharedItem(first string, rest ...string) byte {
	for i := 0; i < len(first); i++ {
		c := first[i]
		found := true
		for _, r := range rest {
			if strings.IndexByte(r, c) < 0 {
				found = false
				break
			}
		}
		if found {
			return c
		}
	}
	aoc.Log.Fatalf("no shared item in %q %q", first, rest)
	return 0
}

func priority(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c-'a') + 1
	}
	return int(c-'A') + 27
}
