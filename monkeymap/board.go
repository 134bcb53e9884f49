// Package monkeymap walks a path across the surface of a cube whose six
// faces are laid out as an irregular net in a 2D map.
//
// Cells are addressed by 1-indexed aoc.Pt values, x growing rightward and y
// growing downward. Leaving the map is resolved through a StitchTable, which
// either wraps rows and columns around (Wrap) or glues the edges of the net
// back into a cube (a Fold).
package monkeymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
	"github.com/sirupsen/logrus"
)

// Log receives a Debug entry for every stitched crossing the walker makes.
var Log = logrus.New()

var (
	ErrMalformedBoard        = errors.New("malformed board")
	ErrMalformedInstructions = errors.New("malformed instructions")
	ErrInconsistentStitch    = errors.New("inconsistent stitch")
	ErrMissingStitch         = errors.New("missing stitch")
	ErrNoStart               = errors.New("no open cell in first row")
)

// Cell is one non-blank position of the map.
type Cell struct {
	Pt   aoc.Pt
	Wall bool
}

// Board is the sparse set of cells read from the map section of the input.
// It is read-only once parsed.
type Board struct {
	cells []Cell
	index map[aoc.Pt]int
	start aoc.Pt
	size  aoc.Pt
}

// ParseBoard parses the map section. Lines may be ragged; blanks are void.
func ParseBoard(s string) (*Board, error) {
	s = strings.TrimRight(s, "\n")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedBoard)
	}
	lines := strings.Split(s, "\n")
	b := &Board{
		index: make(map[aoc.Pt]int),
	}
	for y, line := range lines {
		b.size.X = max(b.size.X, len(line))
		for x := 0; x < len(line); x++ {
			switch c := line[x]; c {
			case ' ', '\t', '\r':
				continue
			case '.', '#':
				p := aoc.Pt{X: x + 1, Y: y + 1}
				b.index[p] = len(b.cells)
				b.cells = append(b.cells, Cell{Pt: p, Wall: c == '#'})
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrMalformedBoard, c, x+1, y+1)
			}
		}
	}
	b.size.Y = len(lines)

	x := strings.IndexByte(lines[0], '.')
	if x < 0 {
		return nil, ErrNoStart
	}
	b.start = aoc.Pt{X: x + 1, Y: 1}
	return b, nil
}

// Start is the leftmost open cell of the first row.
func (b *Board) Start() aoc.Pt { return b.start }

// Size is the width (longest line) and height of the map.
func (b *Board) Size() aoc.Pt { return b.size }

// Len is the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Cell returns the cell at p, if any.
func (b *Board) Cell(p aoc.Pt) (Cell, bool) {
	i, ok := b.index[p]
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Cells calls f for every cell in row-major order.
func (b *Board) Cells(f func(Cell)) {
	for _, c := range b.cells {
		f(c)
	}
}

// Outward returns every half-edge whose one-step neighbour is void, in
// row-major order and clockwise from Up within a cell.
func (b *Board) Outward() []HalfEdge {
	var out []HalfEdge
	for _, c := range b.cells {
		for _, d := range aoc.Directions {
			if _, ok := b.index[c.Pt.Move(d)]; !ok {
				out = append(out, HalfEdge{Pt: c.Pt, Dir: d})
			}
		}
	}
	return out
}

// String draws the board, with walls as '#', open cells as '.' and void
// as ' '.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 1; y <= b.size.Y; y++ {
		line := make([]byte, b.size.X)
		for x := range line {
			line[x] = ' '
			if c, ok := b.Cell(aoc.Pt{X: x + 1, Y: y}); ok {
				line[x] = '.'
				if c.Wall {
					line[x] = '#'
				}
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
