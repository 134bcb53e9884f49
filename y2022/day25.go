package main

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2022"
)

/*
want=2=-1=0

1=-0-2
12111
2=0=
21
2=01
111
20012
112
1=-1=
1-12
12
1=
122
*/
func (s solver) D25p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.MustGet(fromSNAFU(line))
	})
	return toSNAFU(sum)
}

// fromSNAFU decodes a balanced base-5 number with digits = - 0 1 2.
func fromSNAFU(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty SNAFU number")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		var d int
		switch s[i] {
		case '=':
			d = -2
		case '-':
			d = -1
		case '0', '1', '2':
			d = int(s[i] - '0')
		default:
			return 0, fmt.Errorf("bad SNAFU digit %q in %q", s[i], s)
		}
		n = n*5 + d
	}
	return n, nil
}

// toSNAFU encodes a non-negative n.
func toSNAFU(n int) string {
	if n == 0 {
		return "0"
	}
	var out []byte
	for n > 0 {
		d := n % 5
		n /= 5
		if d > 2 {
			d -= 5
			n++
		}
		out = append(out, "=-012"[d+2])
	}
	slices.Reverse(out)
	return string(out)
}
