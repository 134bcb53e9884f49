package aoc

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    sample
	}{
		{
			name: "block",
			comment: `/*
want=1

some-input
*/`,
			want: sample{want: "1", input: "some-input\n"},
		},
		{
			name: "multi-line",
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want:  "1234",
				input: "multi-line-input\nother-line\nother-line-2\n",
			},
		},
		{
			name: "leading-spaces",
			comment: `/*
want=CMZ

    [D]
[N] [C]
*/`,
			want: sample{want: "CMZ", input: "    [D]\n[N] [C]\n"},
		},
		{
			name: "blank-lines-in-input",
			comment: `/*
want=3

1

2
*/`,
			want: sample{want: "3", input: "1\n\n2\n"},
		},
		{
			name:    "line-comment",
			comment: "// want=45000",
			want:    sample{want: "45000"},
		},
		{
			name:    "quoted",
			comment: `// want="#.\n.#"`,
			want:    sample{want: "#.\n.#"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseSample("foo", tt.comment)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := parseSample("foo", "// Foo does things.")
	assert.False(t, ok)
}

const solverSource = `package main

/*
want=6

1
2
3
*/
func (s solver) D1p1() any { return nil }

// want=3
func (s solver) D1p2() any { return nil }

/*
want=ok

x
*/
func (s solver) D2p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": {Data: []byte(solverSource)},
		"notes.txt": {Data: []byte("want=nothing")},
	}
	samples := extractSamples(src)
	require.Len(t, samples, 3)
	assert.Equal(t, sample{want: "6", input: "1\n2\n3\n"}, samples["D1p1"])
	assert.Equal(t, sample{want: "3", input: "1\n2\n3\n"}, samples["D1p2"], "inherits the previous input")
	assert.Equal(t, sample{want: "ok", input: "x\n"}, samples["D2p1"])
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any { return Sum(Ints(s.Lines()...)...) }
func (s testSolver) D1p2() any { return len(s.Lines()) }
func (s testSolver) D2p1() any { return s.Text() }
func (s testSolver) Helper() any { return nil }

func TestSampleResults(t *testing.T) {
	src := fstest.MapFS{"day01.go": {Data: []byte(solverSource)}}
	got := SampleResults(2022, src, &testSolver{})
	assert.Equal(t, []SampleResult{
		{Name: "D1p1", Got: "6", Want: "6"},
		{Name: "D1p2", Got: "3", Want: "3"},
		{Name: "D2p1", Got: "x", Want: "ok"},
	}, got)
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d, d.Rotate(Clockwise).Rotate(CounterClockwise))
		assert.Equal(t, d.Opposite(), d.Turn(true).Turn(true))
		assert.Equal(t, d.Turn(false), d.Rotate(CounterClockwise))
		assert.Equal(t, Pt{}, d.Delta().Add(d.Opposite().Delta()))
		r := d
		for i := 0; i < 4; i++ {
			r = r.Rotate(Clockwise)
		}
		assert.Equal(t, d, r)
	}
	assert.Equal(t, Right, Up.Rotate(Clockwise))
	assert.Equal(t, Pt{X: 0, Y: -1}, Up.Delta())
	assert.Equal(t, Left, DirectionOf("L"))
	assert.Equal(t, "<", Left.String())
}

func TestPt(t *testing.T) {
	p := Pt{X: 1, Y: 2}
	assert.Equal(t, Pt{X: 4, Y: 6}, p.Add(Pt{X: 3, Y: 4}))
	assert.Equal(t, Pt{X: -2, Y: -2}, p.Sub(Pt{X: 3, Y: 4}))
	assert.Equal(t, 7, p.MDist(Pt{X: -2, Y: 6}))
	assert.Equal(t, Pt{X: 2, Y: 1}, p.Toward(Pt{X: 9, Y: -9}))
	assert.Equal(t, p, p.Toward(p))

	var n int
	p.ForNeighbors(func(Pt) bool { n++; return true })
	assert.Equal(t, 8, n)
	n = 0
	Pt3Int{}.ForImmediateNeighbors(func(Pt3Int) bool { n++; return n < 3 })
	assert.Equal(t, 3, n)
}

func TestGrid(t *testing.T) {
	g := ParseGrid([]string{"ab", "cd", "ef"}, func(b byte) byte { return b })
	assert.Equal(t, Pt{X: 2, Y: 3}, g.Size())
	assert.Equal(t, byte('d'), g.At(Pt{X: 1, Y: 1}))
	_, ok := g.AtOk(Pt{X: 2, Y: 0})
	assert.False(t, ok)
	assert.Len(t, g.EdgePaths(), 2*2+2*3)

	p, ok := g.Move(Path{Pt: Pt{X: 0, Y: 0}, Dir: Down})
	require.True(t, ok)
	assert.Equal(t, Pt{X: 0, Y: 1}, p.Pt)
	_, ok = g.Move(Path{Pt: Pt{X: 0, Y: 0}, Dir: Left})
	assert.False(t, ok)

	a := MakeGrid[bool](3, 3)
	b := MakeGrid[bool](3, 3)
	assert.Equal(t, a.Hash(), b.Hash())
	b.Set(Pt{X: 1, Y: 1}, true)
	assert.NotEqual(t, a.Hash(), b.Hash())
	a.Set(Pt{X: 1, Y: 1}, true)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)
	s.Push(1, 2, 3, 4)
	assert.Equal(t, []int{3, 4}, s.PopN(2))
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, s.Len())
	assert.Panics(t, func() { s.PopN(3) })
}

func TestQueues(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, q.Len())

	for _, tt := range []struct {
		pq   *PQ[string]
		want []string
	}{
		{MinQueue[string](), []string{"a", "b", "c"}},
		{MaxQueue[string](), []string{"c", "b", "a"}},
		{&PQ[string]{}, []string{"c", "b", "a"}},
	} {
		tt.pq.PushValue("b", 2)
		tt.pq.PushValue("c", 3)
		tt.pq.PushValue("a", 1)
		var got []string
		for tt.pq.Len() > 0 {
			got = append(got, tt.pq.Pop().V)
		}
		assert.Equal(t, tt.want, got)
	}

	pq := MinQueue[string]()
	x := &PQI[string]{V: "x", P: 5}
	pq.Push(x)
	pq.PushValue("y", 3)
	x.P = 1
	pq.Update(x)
	assert.Equal(t, "x", pq.Peek().V)
}

func TestAllShortestPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 5)
	g.AddEdge("c", "d", 1)
	g.AddNode("z")
	dist := g.AllShortestPaths()
	assert.Equal(t, 3, dist[Edge[string]{"a", "c"}])
	assert.Equal(t, 4, dist[Edge[string]{"d", "a"}])
	assert.Equal(t, 0, dist[Edge[string]{"b", "b"}])
	assert.Equal(t, math.MaxInt, dist[Edge[string]{"a", "z"}])
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true, "d": true}, g.ReachableNodes("a"))
}

func TestMath(t *testing.T) {
	assert.Equal(t, []int{12, -3, 0, 7}, AllInts("x=12, y=-3: 0 and 7"))
	assert.Equal(t, 60, LCM(4, 6, 5))
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 7, Digit('7'))
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 6, Sum(1, 2, 3))
	assert.Equal(t, "b", Or("", "b", "c"))
}
