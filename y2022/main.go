// Command y2022 runs the Advent of Code 2022 solutions. Each part is checked
// against the sample in its doc comment before the real input, which is
// read from <input dir>/2022/<day>.input.
package main

import (
	"embed"

	"github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/monkeymap"
)

//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	monkeymap.Log = aoc.Log
	aoc.Run(2022, sources, &solver{})
}
