// Package visualizer renders a solved (or partially solved) Sudoku, given
// as a list of R{row}C{col}#{digit} candidates, to a colorized 9x9 grid.
package visualizer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌─────┬─────┬─────╥─────┬─────┬─────╥─────┬─────┬─────┐"
	borderBot    = "└─────┴─────┴─────╨─────┴─────┴─────╨─────┴─────┴─────┘"
	dividerMinor = "├─────┼─────┼─────╫─────┼─────┼─────╫─────┼─────┼─────┤"
	dividerMajor = "╞═════╪═════╪═════╬═════╪═════╪═════╬═════╪═════╪═════╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

var valueColor = color.New(color.Bold, color.FgHiWhite)

var candidatePattern = regexp.MustCompile(`^R(\d)C(\d)#(\d)$`)

// Render writes candidates as a box-drawn 9x9 grid to w, in color. A cell
// with no matching candidate is left blank. If more than one candidate
// names the same cell, the last one in the list wins — the spec leaves
// this case undefined, and this is simply a reasonable choice.
func Render(w io.Writer, candidates []string) error {
	var grid [9][9]int8
	for _, c := range candidates {
		row, col, digit, ok := parseCandidate(c)
		if !ok {
			return fmt.Errorf("visualizer: not a candidate: %q", c)
		}
		grid[row-1][col-1] = int8(digit)
	}

	fmt.Fprintln(w, colorLine(borderTop))
	for r := 0; r < 9; r++ {
		if r != 0 {
			if r%3 == 0 {
				fmt.Fprintln(w, colorLine(dividerMajor))
			} else {
				fmt.Fprintln(w, colorLine(dividerMinor))
			}
		}
		printRow(w, grid[r])
	}
	fmt.Fprintln(w, colorLine(borderBot))
	return nil
}

func printRow(w io.Writer, row [9]int8) {
	for c := 0; c < 9; c++ {
		if c != 0 && c%3 == 0 {
			fmt.Fprint(w, valueColor.Sprint(edgeMajor))
		} else {
			fmt.Fprint(w, valueColor.Sprint(edgeMinor))
		}
		if digit := row[c]; digit != 0 {
			fmt.Fprint(w, valueColor.Sprintf("  %d  ", digit))
		} else {
			fmt.Fprint(w, "     ")
		}
	}
	fmt.Fprintln(w, valueColor.Sprint(edgeMinor))
}

func colorLine(s string) string { return valueColor.Sprint(s) }

func parseCandidate(candidate string) (row, col, digit int, ok bool) {
	m := candidatePattern.FindStringSubmatch(candidate)
	if m == nil {
		return 0, 0, 0, false
	}
	row, _ = strconv.Atoi(m[1])
	col, _ = strconv.Atoi(m[2])
	digit, _ = strconv.Atoi(m[3])
	return row, col, digit, true
}
