package deduce

import "github.com/kpitt/exactcover/internal/set"

// LocSet is a set of location indices (0..8) within a single house.
type LocSet = *set.Set[int]

// ValLocMap maps an unsolved digit to the set of locations within a house
// where it could still go.
type ValLocMap map[int]LocSet

// House is a row, column, or block: it must contain each digit 1-9 exactly
// once. Unsolved tracks, for every digit not yet placed anywhere in the
// house, which of the house's 9 cells could still hold it.
type House struct {
	Unsolved ValLocMap
	Cells    [9]*Cell
	Kind     string
	Index    int
}

func newHouse(kind string, index int) *House {
	h := &House{
		Unsolved: make(ValLocMap),
		Kind:     kind,
		Index:    index,
	}
	for digit := 1; digit <= 9; digit++ {
		h.Unsolved[digit] = set.NewSet(0, 1, 2, 3, 4, 5, 6, 7, 8)
	}
	return h
}

// removeCandidateValue records that loc is now solved with digit: digit is
// no longer an open candidate anywhere in the house, and loc can no longer
// hold any other digit.
func (h *House) removeCandidateValue(digit, loc int) {
	delete(h.Unsolved, digit)
	for _, locs := range h.Unsolved {
		locs.Remove(loc)
	}
}
