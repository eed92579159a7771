// Package sudoku reduces 9x9 Sudoku to an exact cover problem and drives
// internal/cover's generic solver over it.
package sudoku

import (
	"fmt"
	"regexp"
	"strconv"
)

// candidateString formats a R{row}C{col}#{digit} candidate id.
func candidateString(row, col, digit int) string {
	return fmt.Sprintf("R%dC%d#%d", row, col, digit)
}

// AllCandidates returns every R{row}C{col}#{digit} candidate, 1-indexed,
// row-major, digit innermost — the full 729-candidate universe.
func AllCandidates() []string {
	candidates := make([]string, 0, 9*9*9)
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			for digit := 1; digit <= 9; digit++ {
				candidates = append(candidates, candidateString(row, col, digit))
			}
		}
	}
	return candidates
}

// AllConstraints returns the 324 constraints in their four families — cell,
// row-digit, column-digit, block-digit — 81 apiece.
func AllConstraints() []string {
	constraints := make([]string, 0, 4*81)
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			constraints = append(constraints, fmt.Sprintf("R%dC%d", row, col))
		}
	}
	for row := 1; row <= 9; row++ {
		for digit := 1; digit <= 9; digit++ {
			constraints = append(constraints, fmt.Sprintf("R%d#%d", row, digit))
		}
	}
	for col := 1; col <= 9; col++ {
		for digit := 1; digit <= 9; digit++ {
			constraints = append(constraints, fmt.Sprintf("C%d#%d", col, digit))
		}
	}
	for block := 1; block <= 9; block++ {
		for digit := 1; digit <= 9; digit++ {
			constraints = append(constraints, fmt.Sprintf("B%d#%d", block, digit))
		}
	}
	return constraints
}

// ConstraintsOf returns the four constraints a single R{row}C{col}#{digit}
// candidate satisfies: its cell, its row-digit, its column-digit, and its
// block-digit.
func ConstraintsOf(candidate string) []string {
	row, col, digit, ok := parseCandidate(candidate)
	if !ok {
		panic(InternalInvariantViolation{fmt.Sprintf("malformed candidate %q", candidate)})
	}
	block := blockOf(row, col)
	return []string{
		fmt.Sprintf("R%dC%d", row, col),
		fmt.Sprintf("R%d#%d", row, digit),
		fmt.Sprintf("C%d#%d", col, digit),
		fmt.Sprintf("B%d#%d", block, digit),
	}
}

// blockOf returns the 1-indexed 3x3 block number for a 1-indexed row/col,
// numbered left to right, top to bottom.
func blockOf(row, col int) int {
	return 3*((row-1)/3) + (col-1)/3 + 1
}

var candidatePattern = regexp.MustCompile(`^R(\d)C(\d)#(\d)$`)

// parseCandidate splits "R{row}C{col}#{digit}" into its three 1-indexed
// integers. ok is false if candidate does not match that grammar exactly —
// the pattern is anchored so trailing garbage after a valid prefix is
// rejected, not silently ignored.
func parseCandidate(candidate string) (row, col, digit int, ok bool) {
	m := candidatePattern.FindStringSubmatch(candidate)
	if m == nil {
		return 0, 0, 0, false
	}
	row, _ = strconv.Atoi(m[1])
	col, _ = strconv.Atoi(m[2])
	digit, _ = strconv.Atoi(m[3])
	if row < 1 || row > 9 || col < 1 || col > 9 || digit < 1 || digit > 9 {
		return 0, 0, 0, false
	}
	return row, col, digit, true
}
