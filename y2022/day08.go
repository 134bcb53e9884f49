package main

import "github.com/maisem/aoc2022"

/*
want=21

30373
25512
65332
33549
35390
*/
func (s solver) D8p1() any {
	g := s.trees()
	visible := map[aoc.Pt]bool{}
	for _, p := range g.EdgePaths() {
		tallest := -1
		for ok := true; ok; p, ok = g.Move(p) {
			if h := g.At(p.Pt); h > tallest {
				visible[p.Pt] = true
				tallest = h
			}
		}
	}
	return len(visible)
}

// want=8
func (s solver) D8p2() any {
	g := s.trees()
	size := g.Size()
	best := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if score := scenicScore(g, aoc.Pt{X: x, Y: y}); score > best {
				best = score
			}
		}
	}
	return best
}

func (s solver) trees() aoc.Grid[int] {
	return aoc.ParseGrid(s.Lines(), func(b byte) int { return aoc.Digit(rune(b)) })
}

// scenicScore multiplies the viewing distances from p in each direction.
func scenicScore(g aoc.Grid[int], p aoc.Pt) int {
	h := g.At(p)
	score := 1
	for _, d := range aoc.Directions {
		n := 0
		for path, ok := g.Move(aoc.Path{Pt: p, Dir: d}); ok; path, ok = g.Move(path) {
			n++
			if g.At(path.Pt) >= h {
				break
			}
		}
		score *= n
	}
	return score
}
