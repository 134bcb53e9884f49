package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=152

root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
*/
func (s solver) D21p1() any {
	return s.riddle().eval("root")
}

// want=301
func (s solver) D21p2() any {
	return s.riddle().solveHuman()
}

const human = "humn"

// job is either a number or an operation on two other monkeys.
type job struct {
	n    int
	op   byte
	l, r string
}

type riddle map[string]job

func (s solver) riddle() riddle {
	r := riddle{}
	s.ForLines(func(line string) {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			aoc.Log.Fatalf("bad job: %q", line)
		}
		if f := strings.Fields(rest); len(f) == 3 {
			r[name] = job{op: f[1][0], l: f[0], r: f[2]}
		} else {
			r[name] = job{n: aoc.Int(rest)}
		}
	})
	return r
}

func (r riddle) eval(name string) int {
	j := r[name]
	if j.op == 0 {
		return j.n
	}
	a, b := r.eval(j.l), r.eval(j.r)
	switch j.op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	}
	aoc.Log.Fatalf("bad op %q for %s", j.op, name)
	return 0
}

func (r riddle) dependsOnHuman(name string) bool {
	if name == human {
		return true
	}
	j := r[name]
	return j.op != 0 && (r.dependsOnHuman(j.l) || r.dependsOnHuman(j.r))
}

// solveHuman returns the number the human must yell so that both sides of
// root are equal. Only one branch of every operation depends on the human,
// so each operation can be inverted on the way down.
func (r riddle) solveHuman() int {
	root := r["root"]
	if r.dependsOnHuman(root.l) {
		return r.invert(root.l, r.eval(root.r))
	}
	return r.invert(root.r, r.eval(root.l))
}

// invert returns the human value that makes name evaluate to target.
func (r riddle) invert(name string, target int) int {
	if name == human {
		return target
	}
	j := r[name]
	if r.dependsOnHuman(j.l) {
		b := r.eval(j.r)
		switch j.op {
		case '+':
			return r.invert(j.l, target-b)
		case '-':
			return r.invert(j.l, target+b)
		case '*':
			return r.invert(j.l, target/b)
		default:
			return r.invert(j.l, target*b)
		}
	}
	a := r.eval(j.l)
	switch j.op {
	case '+':
		return r.invert(j.r, target-a)
	case '-':
		return r.invert(j.r, a-target)
	case '*':
		return r.invert(j.r, target/a)
	default:
		return r.invert(j.r, a/target)
	}
}
