package number

import "errors"

// AlphabetSize is the number of symbols a phone number may consist of.
const AlphabetSize = 12

var ErrInvalidNumber = errors.New("not a valid number")

func IsSymbol(c byte) bool {
	return (c >= '0' && c <= '9') || c == '*' || c == '#'
}

// ID returns the position of c in the alphabet order: '0'..'9' map to
// themselves, '*' to 10 and '#' to 11. The result is undefined for bytes
// outside the alphabet.
func ID(c byte) int {
	switch c {
	case '*':
		return 10
	case '#':
		return 11
	}
	return int(c - '0')
}

// Length returns len(s) when s is a non-empty string of alphabet symbols
// and 0 otherwise.
func Length(s string) int {
	for i := 0; i < len(s); i++ {
		if !IsSymbol(s[i]) {
			return 0
		}
	}
	return len(s)
}

func Valid(s string) bool {
	return Length(s) > 0
}

// Compare orders numbers digit by digit using ID, a strict prefix sorting
// before the longer number.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := ID(a[i]), ID(b[i])
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
