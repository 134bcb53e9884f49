package monkeymap

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2022"
)

// Edge is a straight run of boundary cells from From to To inclusive,
// along one row or one column.
type Edge struct {
	From, To aoc.Pt
}

func (e Edge) cells() ([]aoc.Pt, error) {
	if e.From.X != e.To.X && e.From.Y != e.To.Y {
		return nil, fmt.Errorf("edge %v-%v is not straight", e.From, e.To)
	}
	step := aoc.Pt{X: aoc.Sign(e.To.X - e.From.X), Y: aoc.Sign(e.To.Y - e.From.Y)}
	out := []aoc.Pt{e.From}
	for p := e.From; p != e.To; {
		p = p.Add(step)
		out = append(out, p)
	}
	return out, nil
}

// Side names an edge of a Fold and the direction of travel across it.
type Side struct {
	Edge string
	Dir  aoc.Direction
}

// Gluing zips two edges together. Crossing From lands on To with heading
// To.Dir. If Same is false the second edge is walked in reverse.
type Gluing struct {
	From, To Side
	Same     bool
}

// A Fold is a hand-authored list of gluings for one particular net. A cube
// net has 14 boundary edges and so 7 gluings.
type Fold struct {
	Name    string
	Edges   map[string]Edge
	Gluings []Gluing
}

func (f Fold) String() string { return f.Name }

// Stitches implements Stitcher. The board is not consulted; Link validates
// the result against it.
func (f Fold) Stitches(*Board) (StitchTable, error) {
	t := StitchTable{}
	for _, g := range f.Gluings {
		from, err := f.side(g.From)
		if err != nil {
			return nil, err
		}
		to, err := f.side(g.To)
		if err != nil {
			return nil, err
		}
		if len(from) != len(to) {
			return nil, fmt.Errorf("%w: fold %s: %s and %s differ in length", ErrInconsistentStitch, f.Name, g.From.Edge, g.To.Edge)
		}
		if !g.Same {
			slices.Reverse(to)
		}
		for i := range from {
			if err := t.Glue(HalfEdge{Pt: from[i], Dir: g.From.Dir}, Stitch{To: to[i], Dir: g.To.Dir}); err != nil {
				return nil, fmt.Errorf("fold %s: %w", f.Name, err)
			}
		}
	}
	return t, nil
}

func (f Fold) side(s Side) ([]aoc.Pt, error) {
	e, ok := f.Edges[s.Edge]
	if !ok {
		return nil, fmt.Errorf("%w: fold %s: unknown edge %q", ErrInconsistentStitch, f.Name, s.Edge)
	}
	pts, err := e.cells()
	if err != nil {
		return nil, fmt.Errorf("%w: fold %s: %v", ErrInconsistentStitch, f.Name, err)
	}
	return pts, nil
}

// FoldFor returns the preset for the published sample net (isTest) or the
// puzzle input net, in wrap (isPartA) or cube mode.
func FoldFor(isTest, isPartA bool) Fold {
	switch {
	case isTest && isPartA:
		return SampleWrap
	case isTest:
		return SampleCube
	case isPartA:
		return InputWrap
	}
	return InputCube
}

// sampleEdges are the boundary edges of the sample net (face side 4):
//
//	        A
//	    B C D
//	        E F
var sampleEdges = map[string]Edge{
	"1a": {aoc.Pt{X: 5, Y: 5}, aoc.Pt{X: 8, Y: 5}},
	"1b": {aoc.Pt{X: 9, Y: 1}, aoc.Pt{X: 9, Y: 4}},
	"2a": {aoc.Pt{X: 5, Y: 8}, aoc.Pt{X: 8, Y: 8}},
	"2b": {aoc.Pt{X: 9, Y: 9}, aoc.Pt{X: 9, Y: 12}},
	"3a": {aoc.Pt{X: 1, Y: 8}, aoc.Pt{X: 4, Y: 8}},
	"3b": {aoc.Pt{X: 9, Y: 12}, aoc.Pt{X: 12, Y: 12}},
	"4a": {aoc.Pt{X: 1, Y: 5}, aoc.Pt{X: 4, Y: 5}},
	"4b": {aoc.Pt{X: 9, Y: 1}, aoc.Pt{X: 12, Y: 1}},
	"5a": {aoc.Pt{X: 1, Y: 5}, aoc.Pt{X: 1, Y: 8}},
	"5b": {aoc.Pt{X: 13, Y: 12}, aoc.Pt{X: 16, Y: 12}},
	"6a": {aoc.Pt{X: 12, Y: 5}, aoc.Pt{X: 12, Y: 8}},
	"6b": {aoc.Pt{X: 13, Y: 9}, aoc.Pt{X: 16, Y: 9}},
	"7a": {aoc.Pt{X: 12, Y: 1}, aoc.Pt{X: 12, Y: 4}},
	"7b": {aoc.Pt{X: 16, Y: 9}, aoc.Pt{X: 16, Y: 12}},
}

// inputEdges are the boundary edges of the puzzle input net (face side 50):
//
//	  A B
//	  C
//	D E
//	F
var inputEdges = map[string]Edge{
	"1a": {aoc.Pt{X: 50, Y: 151}, aoc.Pt{X: 50, Y: 200}},
	"1b": {aoc.Pt{X: 51, Y: 150}, aoc.Pt{X: 100, Y: 150}},
	"2a": {aoc.Pt{X: 100, Y: 51}, aoc.Pt{X: 100, Y: 100}},
	"2b": {aoc.Pt{X: 101, Y: 50}, aoc.Pt{X: 150, Y: 50}},
	"3a": {aoc.Pt{X: 1, Y: 101}, aoc.Pt{X: 1, Y: 150}},
	"3b": {aoc.Pt{X: 51, Y: 1}, aoc.Pt{X: 51, Y: 50}},
	"4a": {aoc.Pt{X: 1, Y: 101}, aoc.Pt{X: 50, Y: 101}},
	"4b": {aoc.Pt{X: 51, Y: 51}, aoc.Pt{X: 51, Y: 100}},
	"5a": {aoc.Pt{X: 1, Y: 151}, aoc.Pt{X: 1, Y: 200}},
	"5b": {aoc.Pt{X: 51, Y: 1}, aoc.Pt{X: 100, Y: 1}},
	"6a": {aoc.Pt{X: 101, Y: 1}, aoc.Pt{X: 150, Y: 1}},
	"6b": {aoc.Pt{X: 1, Y: 200}, aoc.Pt{X: 50, Y: 200}},
	"7a": {aoc.Pt{X: 100, Y: 101}, aoc.Pt{X: 100, Y: 150}},
	"7b": {aoc.Pt{X: 150, Y: 1}, aoc.Pt{X: 150, Y: 50}},
}

func glue(from string, fromDir aoc.Direction, to string, toDir aoc.Direction, same bool) Gluing {
	return Gluing{
		From: Side{Edge: from, Dir: fromDir},
		To:   Side{Edge: to, Dir: toDir},
		Same: same,
	}
}

var (
	SampleWrap = Fold{
		Name:  "sample-wrap",
		Edges: sampleEdges,
		Gluings: []Gluing{
			glue("1a", aoc.Up, "2a", aoc.Up, true),
			glue("4a", aoc.Up, "3a", aoc.Up, true),
			glue("4b", aoc.Up, "3b", aoc.Up, true),
			glue("6b", aoc.Up, "5b", aoc.Up, true),
			glue("1b", aoc.Left, "7a", aoc.Left, true),
			glue("5a", aoc.Left, "6a", aoc.Left, true),
			glue("2b", aoc.Left, "7b", aoc.Left, true),
		},
	}

	SampleCube = Fold{
		Name:  "sample-cube",
		Edges: sampleEdges,
		Gluings: []Gluing{
			glue("1a", aoc.Up, "1b", aoc.Right, true),
			glue("2a", aoc.Down, "2b", aoc.Right, false),
			glue("3a", aoc.Down, "3b", aoc.Up, false),
			glue("4a", aoc.Up, "4b", aoc.Down, false),
			glue("5a", aoc.Left, "5b", aoc.Up, false),
			glue("6a", aoc.Right, "6b", aoc.Down, false),
			glue("7a", aoc.Right, "7b", aoc.Left, false),
		},
	}

	InputWrap = Fold{
		Name:  "input-wrap",
		Edges: inputEdges,
		Gluings: []Gluing{
			glue("4a", aoc.Up, "6b", aoc.Up, true),
			glue("5b", aoc.Up, "1b", aoc.Up, true),
			glue("6a", aoc.Up, "2b", aoc.Up, true),
			glue("3b", aoc.Left, "7b", aoc.Left, true),
			glue("4b", aoc.Left, "2a", aoc.Left, true),
			glue("3a", aoc.Left, "7a", aoc.Left, true),
			glue("5a", aoc.Left, "1a", aoc.Left, true),
		},
	}

	InputCube = Fold{
		Name:  "input-cube",
		Edges: inputEdges,
		Gluings: []Gluing{
			glue("1a", aoc.Right, "1b", aoc.Up, true),
			glue("2a", aoc.Right, "2b", aoc.Up, true),
			glue("3a", aoc.Left, "3b", aoc.Right, false),
			glue("4a", aoc.Up, "4b", aoc.Right, true),
			glue("5a", aoc.Left, "5b", aoc.Down, true),
			glue("6a", aoc.Up, "6b", aoc.Up, true),
			glue("7a", aoc.Right, "7b", aoc.Left, false),
		},
	}
)
