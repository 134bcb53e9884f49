package monkeymap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
	"github.com/sirupsen/logrus"
)

// An Instruction is either a Move or a Turn.
type Instruction interface {
	fmt.Stringer
	apply(*Walker)
}

// Move walks forward up to n cells, stopping early at a wall.
type Move int

// Turn rotates the heading in place.
type Turn aoc.Rotation

func (m Move) String() string { return strconv.Itoa(int(m)) }
func (t Turn) String() string { return aoc.Rotation(t).String() }

func (m Move) apply(w *Walker) {
	for n := 0; n < int(m); n++ {
		next, dir, stitched := w.s.step(w.pos, w.dir)
		if w.s.board.cells[next].Wall {
			return
		}
		if stitched {
			Log.WithFields(logrus.Fields{
				"from": w.Pos(),
				"to":   w.s.board.cells[next].Pt,
				"dir":  fmt.Sprintf("%v→%v", w.dir, dir),
			}).Debug("crossed stitch")
		}
		w.pos, w.dir = next, dir
	}
}

func (t Turn) apply(w *Walker) {
	w.dir = w.dir.Rotate(aoc.Rotation(t))
}

// ParseInstructions tokenises a path description such as "10R5L5": runs of
// digits are moves and L/R are counter-clockwise/clockwise turns.
func ParseInstructions(s string) ([]Instruction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedInstructions)
	}
	var out []Instruction
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInstructions, err)
			}
			out = append(out, Move(n))
			i = j
		case c == 'L':
			out = append(out, Turn(aoc.CounterClockwise))
			i++
		case c == 'R':
			out = append(out, Turn(aoc.Clockwise))
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrMalformedInstructions, c, i)
		}
	}
	return out, nil
}

// Walker is the position and heading of one walk over a surface.
type Walker struct {
	s   *Surface
	pos int
	dir aoc.Direction
}

// NewWalker starts at the board's start cell heading Right.
func NewWalker(s *Surface) *Walker {
	return &Walker{
		s:   s,
		pos: s.board.index[s.board.start],
		dir: aoc.Right,
	}
}

// Run applies the instructions in order.
func (w *Walker) Run(instrs []Instruction) {
	for _, in := range instrs {
		in.apply(w)
	}
}

func (w *Walker) Pos() aoc.Pt { return w.s.board.cells[w.pos].Pt }

func (w *Walker) Heading() aoc.Direction { return w.dir }

// facing is the password encoding of a heading.
var facing = [4]int{
	aoc.Right: 0,
	aoc.Down:  1,
	aoc.Left:  2,
	aoc.Up:    3,
}

// Facing returns the password code of d: Right=0, Down=1, Left=2, Up=3.
func Facing(d aoc.Direction) int {
	return facing[d]
}

// Password is 1000*row + 4*column + Facing(heading).
func (w *Walker) Password() int {
	p := w.Pos()
	return 1000*p.Y + 4*p.X + Facing(w.dir)
}

// Solve parses input (the map, a blank line, then the path), stitches the
// map with st, walks the path and returns the password.
func Solve(input string, st Stitcher) (int, error) {
	board, path, ok := strings.Cut(input, "\n\n")
	if !ok {
		return 0, fmt.Errorf("%w: no blank line before the path", ErrMalformedBoard)
	}
	b, err := ParseBoard(board)
	if err != nil {
		return 0, err
	}
	instrs, err := ParseInstructions(path)
	if err != nil {
		return 0, err
	}
	t, err := st.Stitches(b)
	if err != nil {
		return 0, err
	}
	s, err := Link(b, t)
	if err != nil {
		return 0, err
	}
	w := NewWalker(s)
	w.Run(instrs)
	return w.Password(), nil
}
