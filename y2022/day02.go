package main

import "github.com/maisem/aoc2022"

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	total := 0
	s.ForLines(func(line string) {
		opp, me := int(line[0]-'A'), int(line[2]-'X')
		total += rpsScore(opp, me)
	})
	return total
}

// want=12
func (s solver) D2p2() any {
	total := 0
	s.ForLines(func(line string) {
		opp, outcome := int(line[0]-'A'), int(line[2]-'X')
		total += rpsScore(opp, (opp+outcome+2)%3)
	})
	return total
}

// rpsScore scores one round. Shapes are 0 rock, 1 paper, 2 scissors.
func rpsScore(opp, me int) int {
	if opp < 0 || opp > 2 || me < 0 || me > 2 {
		aoc.Log.Fatalf("bad round %d vs %d", opp, me)
	}
	outcome := (me - opp + 4) % 3 // 0 lose, 1 draw, 2 win
	return me + 1 + 3*outcome
}
