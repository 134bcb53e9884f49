package monkeymap

import (
	"strings"
	"testing"

	"github.com/maisem/aoc2022"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
`

// net draws a cube net with every cell set to fill. rows lists, per band
// of side rows, the offset in faces and the width in faces.
func net(side int, fill string, rows ...[2]int) string {
	var sb strings.Builder
	for _, r := range rows {
		line := strings.Repeat(" ", r[0]*side) + strings.Repeat(fill, r[1]*side)
		for i := 0; i < side; i++ {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func sampleNet(fill string) string {
	return net(4, fill, [2]int{2, 1}, [2]int{0, 3}, [2]int{2, 2})
}

func inputNet(fill string) string {
	return net(50, fill, [2]int{1, 2}, [2]int{1, 1}, [2]int{0, 2}, [2]int{0, 1})
}

func mustSurface(t *testing.T, board string, st Stitcher) *Surface {
	t.Helper()
	b, err := ParseBoard(board)
	require.NoError(t, err)
	tbl, err := st.Stitches(b)
	require.NoError(t, err)
	s, err := Link(b, tbl)
	require.NoError(t, err)
	return s
}

func TestSolveSample(t *testing.T) {
	tests := []struct {
		name string
		st   Stitcher
		want int
	}{
		{"fold-wrap", SampleWrap, 6032},
		{"wrap", Wrap{}, 6032},
		{"fold-cube", SampleCube, 5031},
		{"FoldFor-wrap", FoldFor(true, true), 6032},
		{"FoldFor-cube", FoldFor(true, false), 5031},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(sample, tt.st)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoldsAreComplete(t *testing.T) {
	tests := []struct {
		fold  Fold
		board string
	}{
		{SampleWrap, sampleNet(".")},
		{SampleCube, sampleNet(".")},
		{InputWrap, inputNet(".")},
		{InputCube, inputNet(".")},
	}
	for _, tt := range tests {
		t.Run(tt.fold.Name, func(t *testing.T) {
			b, err := ParseBoard(tt.board)
			require.NoError(t, err)
			tbl, err := tt.fold.Stitches(b)
			require.NoError(t, err)
			require.NoError(t, tbl.Validate(b))
			assert.Len(t, tbl, len(b.Outward()))
			for h, s := range tbl {
				back, ok := tbl[HalfEdge{Pt: s.To, Dir: s.Dir.Opposite()}]
				require.True(t, ok, "no reverse for %v", h)
				assert.Equal(t, Stitch{To: h.Pt, Dir: h.Dir.Opposite()}, back)
			}
		})
	}
}

func TestWrapMatchesFold(t *testing.T) {
	for _, tt := range []struct {
		fold  Fold
		board string
	}{
		{SampleWrap, sampleNet(".")},
		{InputWrap, inputNet(".")},
	} {
		b, err := ParseBoard(tt.board)
		require.NoError(t, err)
		want, err := tt.fold.Stitches(b)
		require.NoError(t, err)
		got, err := Wrap{}.Stitches(b)
		require.NoError(t, err)
		assert.Equal(t, want, got, tt.fold.Name)
	}
}

func TestNeighborsExist(t *testing.T) {
	for _, st := range []Stitcher{Wrap{}, SampleCube} {
		s := mustSurface(t, sampleNet("."), st)
		s.Board().Cells(func(c Cell) {
			for _, d := range aoc.Directions {
				_, ok := s.Neighbor(c.Pt, d)
				assert.True(t, ok, "%v %v", c.Pt, d)
			}
		})
	}
}

// On an open cube, walking four faces in a straight line returns to the
// starting cell and heading.
func TestCubeCircumference(t *testing.T) {
	tests := []struct {
		board string
		fold  Fold
		side  int
	}{
		{sampleNet("."), SampleCube, 4},
		{inputNet("."), InputCube, 50},
	}
	for _, tt := range tests {
		t.Run(tt.fold.Name, func(t *testing.T) {
			s := mustSurface(t, tt.board, tt.fold)
			for i := range s.board.cells {
				for _, d := range aoc.Directions {
					w := &Walker{s: s, pos: i, dir: d}
					w.Run([]Instruction{Move(4 * tt.side)})
					if w.pos != i || w.dir != d {
						t.Fatalf("from %v %v: ended at %v %v", s.board.cells[i].Pt, d, w.Pos(), w.dir)
					}
				}
			}
		})
	}
}

func TestSampleCubeCrossing(t *testing.T) {
	s := mustSurface(t, strings.Split(sample, "\n\n")[0], SampleCube)
	i := s.board.index[aoc.Pt{X: 12, Y: 6}]
	w := &Walker{s: s, pos: i, dir: aoc.Right}
	w.Run([]Instruction{Move(1)})
	assert.Equal(t, aoc.Pt{X: 15, Y: 9}, w.Pos())
	assert.Equal(t, aoc.Down, w.Heading())

	w.Run([]Instruction{Move(1)})
	assert.Equal(t, aoc.Pt{X: 15, Y: 10}, w.Pos(), "heading changes only on the crossing")
	assert.Equal(t, aoc.Down, w.Heading())
}

func TestPasswords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		st    Stitcher
		want  int
	}{
		{
			name:  "wall-immediate",
			input: ".#\n\n5",
			st:    Wrap{},
			want:  1000*1 + 4*1 + 0,
		},
		{
			name:  "pure-rotation",
			input: "  ..#\n  ...\n\nLLLL",
			st:    Wrap{},
			want:  1000*1 + 4*3 + 0,
		},
		{
			name:  "rotate-after-wall",
			input: ".#\n..\n\n5R",
			st:    Wrap{},
			want:  1000*1 + 4*1 + 1,
		},
		{
			name:  "wrap-row",
			input: "...\n\n4",
			st:    Wrap{},
			want:  1000*1 + 4*2 + 0,
		},
		{
			name:  "open-cube-one-step",
			input: sampleNet(".") + "\n1",
			st:    SampleCube,
			want:  1000*1 + 4*10 + 0,
		},
		{
			name:  "open-cube-off-the-top",
			input: sampleNet(".") + "\nL1",
			st:    SampleCube,
			want:  1000*5 + 4*4 + 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.input, tt.st)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoveZero(t *testing.T) {
	s := mustSurface(t, sampleNet("."), Wrap{})
	w := NewWalker(s)
	w.Run([]Instruction{Move(0)})
	assert.Equal(t, s.Board().Start(), w.Pos())
	assert.Equal(t, aoc.Right, w.Heading())
}

func TestWrapMovesAdd(t *testing.T) {
	b := sampleNet(".")
	for n := 0; n < 10; n++ {
		for m := 0; m < 10; m++ {
			split := mustSurface(t, b, Wrap{})
			w1 := NewWalker(split)
			w1.Run([]Instruction{Turn(aoc.Clockwise), Move(n), Move(m)})
			w2 := NewWalker(split)
			w2.Run([]Instruction{Turn(aoc.Clockwise), Move(n + m)})
			require.Equal(t, w2.Pos(), w1.Pos(), "n=%d m=%d", n, m)
		}
	}
}

func TestParseInstructions(t *testing.T) {
	got, err := ParseInstructions("10R5L5R10L4R5L5\n")
	require.NoError(t, err)
	var sb strings.Builder
	for _, in := range got {
		sb.WriteString(in.String())
	}
	assert.Equal(t, "10R5L5R10L4R5L5", sb.String())
	assert.Equal(t, Move(10), got[0])
	assert.Equal(t, Turn(aoc.Clockwise), got[1])
	assert.Equal(t, Turn(aoc.CounterClockwise), got[3])

	for _, bad := range []string{"", "10X", "1 2", "r"} {
		_, err := ParseInstructions(bad)
		assert.ErrorIs(t, err, ErrMalformedInstructions, "%q", bad)
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(strings.Split(sample, "\n\n")[0])
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 9, Y: 1}, b.Start())
	assert.Equal(t, aoc.Pt{X: 16, Y: 12}, b.Size())
	assert.Equal(t, 6*4*4, b.Len())
	c, ok := b.Cell(aoc.Pt{X: 12, Y: 1})
	require.True(t, ok)
	assert.True(t, c.Wall)
	_, ok = b.Cell(aoc.Pt{X: 1, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, strings.Split(sample, "\n\n")[0]+"\n", b.String())

	_, err = ParseBoard("..x.")
	assert.ErrorIs(t, err, ErrMalformedBoard)
	_, err = ParseBoard("\n")
	assert.ErrorIs(t, err, ErrMalformedBoard)
	_, err = ParseBoard("  ##\n....")
	assert.ErrorIs(t, err, ErrNoStart)
	_, err = Solve("....", Wrap{})
	assert.ErrorIs(t, err, ErrMalformedBoard)
}

func TestStitchErrors(t *testing.T) {
	tbl := StitchTable{}
	a := HalfEdge{Pt: aoc.Pt{X: 1, Y: 1}, Dir: aoc.Left}
	require.NoError(t, tbl.Glue(a, Stitch{To: aoc.Pt{X: 3, Y: 1}, Dir: aoc.Left}))
	require.NoError(t, tbl.Glue(a, Stitch{To: aoc.Pt{X: 3, Y: 1}, Dir: aoc.Left}))
	assert.ErrorIs(t, tbl.Glue(a, Stitch{To: aoc.Pt{X: 2, Y: 1}, Dir: aoc.Left}), ErrInconsistentStitch)

	b, err := ParseBoard("...")
	require.NoError(t, err)
	full, err := Wrap{}.Stitches(b)
	require.NoError(t, err)
	require.NoError(t, full.Validate(b))

	missing := StitchTable{}
	for h, s := range full {
		if h.Dir != aoc.Up && h.Dir != aoc.Down {
			missing[h] = s
		}
	}
	assert.ErrorIs(t, missing.Validate(b), ErrMissingStitch)

	interior := StitchTable{}
	for h, s := range full {
		interior[h] = s
	}
	interior[HalfEdge{Pt: aoc.Pt{X: 1, Y: 1}, Dir: aoc.Right}] = Stitch{To: aoc.Pt{X: 3, Y: 1}, Dir: aoc.Right}
	assert.ErrorIs(t, interior.Validate(b), ErrInconsistentStitch)

	_, err = Link(b, missing)
	assert.ErrorIs(t, err, ErrMissingStitch)

	bad := Fold{Name: "bad", Edges: map[string]Edge{
		"a": {aoc.Pt{X: 1, Y: 1}, aoc.Pt{X: 1, Y: 1}},
		"b": {aoc.Pt{X: 1, Y: 1}, aoc.Pt{X: 3, Y: 1}},
	}, Gluings: []Gluing{glue("a", aoc.Left, "b", aoc.Up, true)}}
	_, err = bad.Stitches(b)
	assert.ErrorIs(t, err, ErrInconsistentStitch)
	_, err = Fold{Name: "unknown", Gluings: []Gluing{glue("x", aoc.Left, "y", aoc.Left, true)}}.Stitches(b)
	assert.ErrorIs(t, err, ErrInconsistentStitch)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, 0, Facing(aoc.Right))
	assert.Equal(t, 1, Facing(aoc.Down))
	assert.Equal(t, 2, Facing(aoc.Left))
	assert.Equal(t, 3, Facing(aoc.Up))
}
