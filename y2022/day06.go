package main

/*
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func (s solver) D6p1() any {
	return firstMarker(s.Text(), 4)
}

// want=19
func (s solver) D6p2() any {
	return firstMarker(s.Text(), 14)
}

// firstMarker returns the number of characters read once the last n are all
// distinct, or -1.
func firstMarker(stream string, n int) int {
	var seen [256]int // last index+1 of each byte
	start := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if seen[c] > start {
			start = seen[c]
		}
		seen[c] = i + 1
		if i+1-start == n {
			return i + 1
		}
	}
	return -1
}
