package main

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=13

[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
*/
func (s solver) D13p1() any {
	sum := 0
	for i, pair := range s.Sections() {
		a, b, _ := strings.Cut(pair, "\n")
		if comparePackets(parsePacket(a), parsePacket(b)) < 0 {
			sum += i + 1
		}
	}
	return sum
}

// want=140
func (s solver) D13p2() any {
	dividers := []any{parsePacket("[[2]]"), parsePacket("[[6]]")}
	packets := slices.Clone(dividers)
	s.ForLines(func(line string) {
		if line != "" {
			packets = append(packets, parsePacket(line))
		}
	})
	slices.SortFunc(packets, comparePackets)
	key := 1
	for i, p := range packets {
		for _, d := range dividers {
			if comparePackets(p, d) == 0 {
				key *= i + 1
			}
		}
	}
	return key
}

// parsePacket decodes a packet. Packets are JSON arrays of integers and
// arrays, so numbers come back as float64.
func parsePacket(s string) any {
	var v any
	aoc.MustDo(json.Unmarshal([]byte(s), &v))
	return v
}

// comparePackets orders packets: integers by value, lists element-wise and
// then by length, and an integer against a list as a one-element list.
func comparePackets(a, b any) int {
	switch a := a.(type) {
	case float64:
		if b, ok := b.(float64); ok {
			return cmp.Compare(a, b)
		}
		return comparePackets([]any{a}, b)
	case []any:
		bl, ok := b.([]any)
		if !ok {
			return comparePackets(a, []any{b})
		}
		for i := 0; i < len(a) && i < len(bl); i++ {
			if c := comparePackets(a[i], bl[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(bl))
	}
	aoc.Log.Fatalf("bad packet element %T", a)
	return 0
}
