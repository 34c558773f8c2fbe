package utils

import (
	"fmt"
	"strings"
)

// CalcWinnings calculates the value of a non-jackpot ticket for one drawing.
// The megaplier argument is the drawing's multiplier when the option was
// purchased, 1 otherwise. Matching all 5 numbers plus the megaball is the
// jackpot and is classified by the caller; it never goes through this table.
func CalcWinnings(matched int, megaballMatched bool, megaplier int) int {
	if megaballMatched {
		switch matched {
		case 4:
			return 10000 * megaplier
		case 3:
			return 200 * megaplier
		case 2:
			return 10 * megaplier
		case 1:
			return 4 * megaplier
		default:
			return 2 * megaplier
		}
	}
	switch matched {
	case 5:
		return 1000000 * megaplier
	case 4:
		return 500 * megaplier
	case 3:
		return 10 * megaplier
	default:
		return 0
	}
}

// FormatBall formats a ball number with a leading zero, the way numbers are
// printed on tickets
func FormatBall(n int) string {
	return fmt.Sprintf("%02d", n)
}

// FormatBalls formats a list of ball numbers joined by the given separator
func FormatBalls(numbers []int, sep string) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = FormatBall(n)
	}
	return strings.Join(parts, sep)
}
