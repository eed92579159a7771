package sudoku

import "fmt"

// Grid is a 9x9 board of digits. Get and Set take row and column 1-indexed
// to match the candidate grammar; Get(row, col) == 0 means the cell is
// empty. The zero value is an empty board.
type Grid [9][9]int8

// Get returns the digit at (row, col), both 1-indexed, or 0 if empty.
func (g *Grid) Get(row, col int) int8 {
	return g[row-1][col-1]
}

// Set places digit at (row, col), both 1-indexed. digit 0 clears the cell.
func (g *Grid) Set(row, col int, digit int8) {
	g[row-1][col-1] = digit
}

// FromFixed builds a Grid from a list of R{row}C{col}#{digit} candidates,
// the format produced by the importer and consumed by Solve.
func FromFixed(fixed []string) (Grid, error) {
	var g Grid
	for _, candidate := range fixed {
		row, col, digit, ok := parseCandidate(candidate)
		if !ok {
			return Grid{}, &InputError{Msg: fmt.Sprintf("not a valid candidate: %q", candidate)}
		}
		if existing := g.Get(row, col); existing != 0 && existing != int8(digit) {
			return Grid{}, &InputError{Msg: fmt.Sprintf("cell R%dC%d given both %d and %d", row, col, existing, digit)}
		}
		g.Set(row, col, int8(digit))
	}
	return g, nil
}

// Fixed returns the R{row}C{col}#{digit} candidate for every filled cell,
// row-major.
func (g *Grid) Fixed() []string {
	var fixed []string
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			if digit := g.Get(row, col); digit != 0 {
				fixed = append(fixed, candidateString(row, col, int(digit)))
			}
		}
	}
	return fixed
}

// Block returns the same 1-indexed block number as blockOf, for a
// 1-indexed row/col pair, for callers outside the package.
func (g *Grid) Block(row, col int) int {
	return blockOf(row, col)
}
