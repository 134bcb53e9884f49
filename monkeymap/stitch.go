package monkeymap

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2022"
)

// HalfEdge is the outward-facing border of the cell at Pt in direction Dir:
// the portal crossed when stepping off that cell that way.
type HalfEdge struct {
	Pt  aoc.Pt
	Dir aoc.Direction
}

func (h HalfEdge) String() string {
	return fmt.Sprintf("(%d,%d)%v", h.Pt.X, h.Pt.Y, h.Dir)
}

// Stitch is where a crossing lands and the heading after it.
type Stitch struct {
	To  aoc.Pt
	Dir aoc.Direction
}

func (s Stitch) String() string {
	return fmt.Sprintf("(%d,%d)%v", s.To.X, s.To.Y, s.Dir)
}

// reverse is the half-edge that leads back across the same stitch.
func (s Stitch) reverse() HalfEdge {
	return HalfEdge{Pt: s.To, Dir: s.Dir.Opposite()}
}

// A StitchTable maps every outward half-edge of a board to the cell and
// heading on the other side. Entries come in involutive pairs: if
// (a, da) ↦ (b, db) then (b, opposite(db)) ↦ (a, opposite(da)).
type StitchTable map[HalfEdge]Stitch

// Glue adds the stitch from h to s and its reverse. Gluing the same pair
// twice is fine; gluing a half-edge to two different places is
// ErrInconsistentStitch.
func (t StitchTable) Glue(h HalfEdge, s Stitch) error {
	if err := t.put(h, s); err != nil {
		return err
	}
	return t.put(s.reverse(), Stitch{To: h.Pt, Dir: h.Dir.Opposite()})
}

func (t StitchTable) put(h HalfEdge, s Stitch) error {
	if old, ok := t[h]; ok && old != s {
		return fmt.Errorf("%w: %v glued to both %v and %v", ErrInconsistentStitch, h, old, s)
	}
	t[h] = s
	return nil
}

// Validate checks t against b: every outward half-edge of b is stitched,
// only outward half-edges are stitched, every stitch lands on a cell and
// every stitch has its reverse.
func (t StitchTable) Validate(b *Board) error {
	for _, h := range t.sortedKeys() {
		s := t[h]
		if _, ok := b.Cell(h.Pt); !ok {
			return fmt.Errorf("%w: %v starts off the board", ErrInconsistentStitch, h)
		}
		if _, ok := b.Cell(h.Pt.Move(h.Dir)); ok {
			return fmt.Errorf("%w: %v is an interior edge", ErrInconsistentStitch, h)
		}
		if _, ok := b.Cell(s.To); !ok {
			return fmt.Errorf("%w: %v lands off the board at %v", ErrInconsistentStitch, h, s)
		}
		back, ok := t[s.reverse()]
		if !ok || back != (Stitch{To: h.Pt, Dir: h.Dir.Opposite()}) {
			return fmt.Errorf("%w: %v ↦ %v has no reverse", ErrInconsistentStitch, h, s)
		}
	}
	for _, h := range b.Outward() {
		if _, ok := t[h]; !ok {
			return fmt.Errorf("%w: %v", ErrMissingStitch, h)
		}
	}
	return nil
}

// sortedKeys returns the keys in row-major, then direction, order so that
// errors are deterministic.
func (t StitchTable) sortedKeys() []HalfEdge {
	keys := make([]HalfEdge, 0, len(t))
	for h := range t {
		keys = append(keys, h)
	}
	slices.SortFunc(keys, func(a, b HalfEdge) int {
		switch {
		case a.Pt.Y != b.Pt.Y:
			return a.Pt.Y - b.Pt.Y
		case a.Pt.X != b.Pt.X:
			return a.Pt.X - b.Pt.X
		}
		return int(a.Dir - b.Dir)
	})
	return keys
}

// A Stitcher builds the stitch table for a board.
type Stitcher interface {
	Stitches(*Board) (StitchTable, error)
}

// Wrap stitches each row and column into a ring: stepping off the board
// re-enters at the far occupied cell of the same row or column with the
// heading unchanged.
type Wrap struct{}

func (Wrap) Stitches(b *Board) (StitchTable, error) {
	size := b.Size()
	t := StitchTable{}
	for _, h := range b.Outward() {
		p := h.Pt
		for {
			p = p.Move(h.Dir)
			p.X = ((p.X-1)%size.X+size.X)%size.X + 1
			p.Y = ((p.Y-1)%size.Y+size.Y)%size.Y + 1
			if _, ok := b.Cell(p); ok {
				break
			}
		}
		if err := t.Glue(h, Stitch{To: p, Dir: h.Dir}); err != nil {
			return nil, err
		}
	}
	return t, nil
}
