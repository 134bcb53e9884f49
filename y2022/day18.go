package main

import "github.com/maisem/aoc2022"

/*
want=64

2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
*/
func (s solver) D18p1() any {
	cubes := s.cubes()
	area := 0
	for c := range cubes {
		c.ForImmediateNeighbors(func(n aoc.Pt3Int) bool {
			if !cubes[n] {
				area++
			}
			return true
		})
	}
	return area
}

// want=58
func (s solver) D18p2() any {
	return exteriorArea(s.cubes())
}

func (s solver) cubes() map[aoc.Pt3Int]bool {
	cubes := map[aoc.Pt3Int]bool{}
	s.ForLines(func(line string) {
		v := aoc.AllInts(line)
		cubes[aoc.Pt3Int{X: v[0], Y: v[1], Z: v[2]}] = true
	})
	return cubes
}

// exteriorArea floods the air around the droplet inside a box one larger
// than its bounds and counts the cube faces the flood touches.
func exteriorArea(cubes map[aoc.Pt3Int]bool) int {
	if len(cubes) == 0 {
		return 0
	}
	lo := aoc.AnyKey(cubes)
	hi := lo
	for c := range cubes {
		lo = aoc.Pt3Int{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = aoc.Pt3Int{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	lo = aoc.Pt3Int{X: lo.X - 1, Y: lo.Y - 1, Z: lo.Z - 1}
	hi = aoc.Pt3Int{X: hi.X + 1, Y: hi.Y + 1, Z: hi.Z + 1}
	inBox := func(p aoc.Pt3Int) bool {
		return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y && p.Z >= lo.Z && p.Z <= hi.Z
	}

	faces := 0
	seen := map[aoc.Pt3Int]bool{lo: true}
	q := aoc.NewQueue(lo)
	q.While(func(p aoc.Pt3Int) bool {
		p.ForImmediateNeighbors(func(n aoc.Pt3Int) bool {
			switch {
			case !inBox(n):
			case cubes[n]:
				faces++
			case !seen[n]:
				seen[n] = true
				q.Push(n)
			}
			return true
		})
		return true
	})
	return faces
}
