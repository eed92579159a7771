// Package deduce applies sound logical deduction (hidden singles, naked
// singles) to a set of fixed Sudoku candidates, producing a larger but
// still-consistent set before the exact cover search ever runs.
package deduce

import "github.com/kpitt/exactcover/internal/set"

// Cell holds the working state of one board position during deduction: its
// solved value, if any, and the digits still possible otherwise.
type Cell struct {
	Row, Col int
	Value    int8

	Candidates *set.Set[int]
}

func newCell(row, col int) *Cell {
	return &Cell{
		Row: row, Col: col,
		Candidates: set.NewSet(1, 2, 3, 4, 5, 6, 7, 8, 9),
	}
}

func (c *Cell) IsSolved() bool { return c.Value > 0 }

// PlaceValue marks the cell solved and clears its remaining candidates.
func (c *Cell) PlaceValue(val int) {
	c.Value = int8(val)
	c.Candidates.Clear()
}

// Box returns the 1-indexed 3x3 block number containing this cell, matching
// internal/sudoku's block numbering.
func (c *Cell) Box() int {
	return 3*((c.Row-1)/3) + (c.Col-1)/3 + 1
}
