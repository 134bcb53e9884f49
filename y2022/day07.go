package main

import (
	"strings"

	"github.com/maisem/aoc2022"
)

/*
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() any {
	total := 0
	for _, n := range dirSizes(s.Lines()) {
		if n <= 100000 {
			total += n
		}
	}
	return total
}

// want=24933642
func (s solver) D7p2() any {
	sizes := dirSizes(s.Lines())
	need := 30000000 - (70000000 - sizes["/"])
	best := sizes["/"]
	for _, n := range sizes {
		if n >= need && n < best {
			best = n
		}
	}
	return best
}

// dirSizes replays a terminal session and returns the total size of every
// directory by absolute path.
func dirSizes(session []string) map[string]int {
	sizes := map[string]int{"/": 0}
	var cwd []string
	for _, line := range session {
		f := strings.Fields(line)
		switch {
		case len(f) == 3 && f[0] == "$" && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = nil
			case "..":
				if len(cwd) > 0 {
					cwd = cwd[:len(cwd)-1]
				}
			default:
				cwd = append(cwd, f[2])
			}
		case len(f) == 0 || f[0] == "$" || f[0] == "dir":
		default:
			n := aoc.Int(f[0])
			for i := 0; i <= len(cwd); i++ {
				sizes["/"+strings.Join(cwd[:i], "/")] += n
			}
		}
	}
	return sizes
}
