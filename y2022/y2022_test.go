package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/maisem/aoc2022"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	results := aoc.SampleResults(2022, sources, &solver{})
	require.NotEmpty(t, results)
	for _, r := range results {
		t.Run(r.Name, func(t *testing.T) {
			assert.Equal(t, r.Want, r.Got)
		})
	}
}

func TestTopCalories(t *testing.T) {
	cals := elfCalories("1\n2\n\n10\n\n4\n\n3\n3")
	assert.Equal(t, []int{3, 10, 4, 6}, cals)
	assert.Equal(t, 10, topCalories(cals, 1))
	assert.Equal(t, 20, topCalories(cals, 3))
	assert.Equal(t, 23, topCalories(cals, 10))
	assert.Equal(t, 0, topCalories(nil, 3))
}

func TestRPSScore(t *testing.T) {
	for opp := 0; opp < 3; opp++ {
		assert.Equal(t, 3+opp+1, rpsScore(opp, opp), "draw")
		assert.Equal(t, 6+(opp+1)%3+1, rpsScore(opp, (opp+1)%3), "win")
		assert.Equal(t, (opp+2)%3+1, rpsScore(opp, (opp+2)%3), "loss")
	}
}

func TestFirstMarker(t *testing.T) {
	tests := []struct {
		in     string
		p1, p2 int
	}{
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.p1, firstMarker(tt.in, 4), tt.in)
		assert.Equal(t, tt.p2, firstMarker(tt.in, 14), tt.in)
	}
	assert.Equal(t, -1, firstMarker("aaaa", 2))
}

var packetSamples = []string{
	"[1,1,3,1,1]", "[1,1,5,1,1]",
	"[[1],[2,3,4]]", "[[1],4]",
	"[9]", "[[8,7,6]]",
	"[[4,4],4,4]", "[[4,4],4,4,4]",
	"[7,7,7,7]", "[7,7,7]",
	"[]", "[3]",
	"[[[]]]", "[[]]",
	"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]",
	"[[2]]", "[[6]]", "[2]", "[[[2]]]",
}

func sign(n int) int {
	return aoc.Sign(n)
}

func TestComparePacketsIsAnOrder(t *testing.T) {
	var packets []any
	for _, s := range packetSamples {
		packets = append(packets, parsePacket(s))
	}
	for i, a := range packets {
		assert.Zero(t, comparePackets(a, a), packetSamples[i])
		for j, b := range packets {
			ab := comparePackets(a, b)
			assert.Equal(t, -sign(ab), sign(comparePackets(b, a)), "%s vs %s", packetSamples[i], packetSamples[j])
			for k, c := range packets {
				if ab < 0 && comparePackets(b, c) < 0 {
					assert.Negative(t, comparePackets(a, c), "%s < %s < %s", packetSamples[i], packetSamples[j], packetSamples[k])
				}
			}
		}
	}
	// A bare integer compares as a one-element list.
	assert.Zero(t, comparePackets(parsePacket("[2]"), parsePacket("[[2]]")))
}

// rotations reports whether b is a rotation of a.
func rotations(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for r := range a {
		if slices.Equal(append(slices.Clone(a[r:]), a[:r]...), b) {
			return true
		}
	}
	return false
}

func TestMixIdentity(t *testing.T) {
	// Moving by a multiple of len-1 goes all the way round.
	for _, vals := range [][]int{
		{0, 0, 0, 0},
		{0, 6, -6, 12, 0, 18, -12},
		{3, 0, -3, 9},
	} {
		assert.True(t, rotations(vals, mix(vals, 1, 1)), "%v", vals)
	}
}

func TestMixSample(t *testing.T) {
	got := mix([]int{1, 2, -3, 3, -2, 0, 4}, 1, 1)
	assert.True(t, rotations([]int{1, 2, -3, 4, 0, 3, -2}, got), "%v", got)

	vals := []int{5, -7, 0, 12, 3, -1, 8}
	got = mix(vals, 3, 4)
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	want := []int{}
	for _, v := range vals {
		want = append(want, 3*v)
	}
	slices.Sort(want)
	assert.Equal(t, want, sorted, "mixing permutes")
}

func TestSNAFU(t *testing.T) {
	tests := map[int]string{
		0: "0", 1: "1", 2: "2", 3: "1=", 4: "1-", 5: "10", 8: "2=", 9: "2-",
		10: "20", 15: "1=0", 20: "1-0", 2022: "1=11-2", 12345: "1-0---0",
		314159265: "1121-1110-1=0",
	}
	for n, s := range tests {
		assert.Equal(t, s, toSNAFU(n), "%d", n)
		assert.Equal(t, n, aoc.MustGet(fromSNAFU(s)), s)
	}
	for n := 0; n < 5000; n++ {
		got, err := fromSNAFU(toSNAFU(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
	for _, bad := range []string{"", "3", "1=x"} {
		_, err := fromSNAFU(bad)
		assert.Error(t, err, bad)
	}
}

func TestDirSizes(t *testing.T) {
	sizes := dirSizes(strings.Split("$ cd /\n$ ls\ndir a\n10 x\n$ cd a\n$ ls\n5 y\n$ cd ..\n$ cd a", "\n"))
	assert.Equal(t, map[string]int{"/": 15, "/a": 5}, sizes)
}

func TestRiddleInvert(t *testing.T) {
	r := riddle{
		"root": {op: '+', l: "a", r: "b"},
		"a":    {op: '-', l: "c", r: "humn"},
		"b":    {n: 4},
		"c":    {op: '/', l: "d", r: "e"},
		"d":    {n: 100},
		"e":    {n: 5},
		"humn": {n: 0},
	}
	h := r.solveHuman()
	r["humn"] = job{n: h}
	assert.Equal(t, r.eval("a"), r.eval("b"))
	assert.Equal(t, 16, h)
}
