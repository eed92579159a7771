package deduce

// Given is one placed digit: row, col, and digit are all 1-indexed.
type Given struct {
	Row, Col, Digit int
}

// Deduce runs hidden-single and naked-single elimination to a fixed point
// and returns the (possibly larger) set of givens: every digit Deduce adds
// is a necessary consequence of the input, never a guess. On
// self-contradictory input (two givens conflicting in the same house or
// cell) Deduce does not detect the contradiction: it runs to its fixed
// point as usual, keeps a given that names an already-placed cell with a
// different digit in its output, and never errors — the exact cover search
// discovers unsolvability the normal way.
func Deduce(givens []Given) []Given {
	board := newBoard()
	var conflicting []Given
	for _, g := range givens {
		cell := board.Cells[g.Row-1][g.Col-1]
		if !cell.IsSolved() {
			board.lockValue(g.Row, g.Col, g.Digit)
		} else if int(cell.Value) != g.Digit {
			conflicting = append(conflicting, g)
		}
	}

	for findHiddenSingles(board) || findNakedSingles(board) {
	}

	var out []Given
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			if cell := board.Cells[row-1][col-1]; cell.IsSolved() {
				out = append(out, Given{row, col, int(cell.Value)})
			}
		}
	}
	return append(out, conflicting...)
}

// findHiddenSingles locks the first cell that is the only remaining
// location for some digit within one of its row, column, or block, if any.
func findHiddenSingles(b *Board) bool {
	for _, house := range allHouses(b) {
		for digit, locs := range house.Unsolved {
			if locs.Size() == 1 {
				cell := house.Cells[locs.Values()[0]]
				b.lockValue(cell.Row, cell.Col, digit)
				return true
			}
		}
	}
	return false
}

// findNakedSingles locks the first cell with exactly one remaining
// candidate, if any.
func findNakedSingles(b *Board) bool {
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			cell := b.Cells[row-1][col-1]
			if !cell.IsSolved() && cell.Candidates.Size() == 1 {
				b.lockValue(row, col, cell.Candidates.Values()[0])
				return true
			}
		}
	}
	return false
}

func allHouses(b *Board) []*House {
	houses := make([]*House, 0, 27)
	houses = append(houses, b.Rows[:]...)
	houses = append(houses, b.Cols[:]...)
	houses = append(houses, b.Blocks[:]...)
	return houses
}
