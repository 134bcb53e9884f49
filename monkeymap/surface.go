package monkeymap

import (
	"github.com/maisem/aoc2022"
)

// Surface is a board whose cells know their four successors, with stitches
// already resolved. Cells are referenced by index into the board's arena,
// so the same board can be linked against several stitch tables.
type Surface struct {
	board *Board
	table StitchTable
	next  [][4]int // [cell][aoc.Direction] -> cell
}

// Link validates t against b and precomputes every cell's neighbours: the
// adjacent cell when there is one, otherwise the stitch destination.
func Link(b *Board, t StitchTable) (*Surface, error) {
	if err := t.Validate(b); err != nil {
		return nil, err
	}
	s := &Surface{
		board: b,
		table: t,
		next:  make([][4]int, len(b.cells)),
	}
	for i, c := range b.cells {
		for _, d := range aoc.Directions {
			if j, ok := b.index[c.Pt.Move(d)]; ok {
				s.next[i][d] = j
				continue
			}
			// Validate guarantees both the stitch and its destination.
			s.next[i][d] = b.index[t[HalfEdge{Pt: c.Pt, Dir: d}].To]
		}
	}
	return s, nil
}

// Board returns the board s was linked from.
func (s *Surface) Board() *Board { return s.board }

// Neighbor returns the cell reached by one step from p heading d.
func (s *Surface) Neighbor(p aoc.Pt, d aoc.Direction) (Cell, bool) {
	i, ok := s.board.index[p]
	if !ok {
		return Cell{}, false
	}
	return s.board.cells[s.next[i][d]], true
}

// step returns the cell one step from cell i heading d, the heading after
// the step, and whether the step crossed a stitch. The stitch table is
// consulted a second time to tell crossings apart; Validate rejects
// stitches on interior edges, so this agrees with next.
func (s *Surface) step(i int, d aoc.Direction) (j int, nd aoc.Direction, stitched bool) {
	j = s.next[i][d]
	if st, ok := s.table[HalfEdge{Pt: s.board.cells[i].Pt, Dir: d}]; ok {
		return j, st.Dir, true
	}
	return j, d, false
}
