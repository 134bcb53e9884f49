package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=10605

Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
*/
func (s solver) D11p1() any {
	return monkeyBusiness(parseMonkeys(s.Sections()), 20, true)
}

// want=2713310158
func (s solver) D11p2() any {
	return monkeyBusiness(parseMonkeys(s.Sections()), 10000, false)
}

type monkey struct {
	items   []int
	op      byte
	operand string // a number or "old"
	div     int
	ifTrue  int
	ifFalse int

	inspected int
}

func (m *monkey) worry(old int) int {
	v := old
	if m.operand != "old" {
		v = aoc.Int(m.operand)
	}
	if m.op == '*' {
		return old * v
	}
	return old + v
}

func parseMonkeys(sections []string) []*monkey {
	var ms []*monkey
	for _, sec := range sections {
		lines := strings.Split(sec, "\n")
		if len(lines) < 6 {
			aoc.Log.Fatalf("short monkey: %q", sec)
		}
		op := strings.Fields(lines[2])
		ms = append(ms, &monkey{
			items:   aoc.Ints(strings.Split(aoc.TrimPrefix(strings.TrimSpace(lines[1]), "Starting items: "), ", ")...),
			op:      op[len(op)-2][0],
			operand: op[len(op)-1],
			div:     aoc.AllInts(lines[3])[0],
			ifTrue:  aoc.AllInts(lines[4])[0],
			ifFalse: aoc.AllInts(lines[5])[0],
		})
	}
	return ms
}

// monkeyBusiness plays the rounds and multiplies the two highest inspection
// counts. Without relief worry levels are kept modulo the product of all
// divisors, which preserves every test.
func monkeyBusiness(ms []*monkey, rounds int, relief bool) int {
	var divs []int
	for _, m := range ms {
		divs = append(divs, m.div)
	}
	mod := aoc.LCM(divs...)
	for r := 0; r < rounds; r++ {
		for _, m := range ms {
			for _, it := range m.items {
				m.inspected++
				w := m.worry(it)
				if relief {
					w /= 3
				} else {
					w %= mod
				}
				to := m.ifFalse
				if w%m.div == 0 {
					to = m.ifTrue
				}
				ms[to].items = append(ms[to].items, w)
			}
			m.items = nil
		}
	}
	counts := make([]int, len(ms))
	for i, m := range ms {
		counts[i] = m.inspected
	}
	slices.Sort(counts)
	slices.Reverse(counts)
	return counts[0] * counts[1]
}
