package main

import (
	"slices"

	"github.com/maisem/aoc2022"
)

/*
want=26

Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
*/
func (s solver) D15p1() any {
	row := 2000000
	if s.SampleMode {
		row = 10
	}
	sensors := s.sensors()
	covered := 0
	for _, iv := range coverage(sensors, row) {
		covered += iv.hi - iv.lo + 1
	}
	beacons := map[aoc.Pt]bool{}
	for _, sn := range sensors {
		if sn.beacon.Y == row {
			beacons[sn.beacon] = true
		}
	}
	return covered - len(beacons)
}

// want=56000011
func (s solver) D15p2() any {
	limit := 4000000
	if s.SampleMode {
		limit = 20
	}
	sensors := s.sensors()
	for y := 0; y <= limit; y++ {
		x := 0
		for _, iv := range coverage(sensors, y) {
			if iv.lo > x {
				break
			}
			x = max(x, iv.hi+1)
		}
		if x <= limit {
			s.Debugf("distress beacon at %d,%d", x, y)
			return x*4000000 + y
		}
	}
	return -1
}

type sensor struct {
	at, beacon aoc.Pt
	radius     int
}

func (s solver) sensors() []sensor {
	var out []sensor
	s.ForLines(func(line string) {
		v := aoc.AllInts(line)
		at, beacon := aoc.Pt{X: v[0], Y: v[1]}, aoc.Pt{X: v[2], Y: v[3]}
		out = append(out, sensor{at: at, beacon: beacon, radius: at.MDist(beacon)})
	})
	return out
}

type interval struct {
	lo, hi int
}

// coverage returns the merged, sorted columns of row y that lie within
// range of some sensor.
func coverage(sensors []sensor, y int) []interval {
	var ivs []interval
	for _, sn := range sensors {
		r := sn.radius - aoc.AbsDiff(sn.at.Y, y)
		if r < 0 {
			continue
		}
		ivs = append(ivs, interval{sn.at.X - r, sn.at.X + r})
	}
	slices.SortFunc(ivs, func(a, b interval) int { return a.lo - b.lo })
	var merged []interval
	for _, iv := range ivs {
		if n := len(merged); n > 0 && iv.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, iv.hi)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
