package sudoku

import (
	"github.com/kpitt/exactcover/internal/cover"
	"github.com/kpitt/exactcover/internal/sudoku/deduce"
)

var rules = cover.Rules{
	AllCandidates:  AllCandidates,
	AllConstraints: AllConstraints,
	ConstraintsOf:  ConstraintsOf,
}

// Solve solves a 9x9 Sudoku given as a list of fixed R{row}C{col}#{digit}
// candidates (the givens). It first runs the candidates through a sound
// logical presolve (internal/sudoku/deduce) to find any hidden or naked
// singles they force, then excludes the fixed candidates themselves and
// every candidate sharing a constraint with them from the matrix entirely
// — F is satisfied elsewhere, not by search — and hands the reduced matrix
// to internal/cover's generic search.
//
// Returns the full list of R{row}C{col}#{digit} candidates making up the
// unique solved board (the fixed candidates concatenated with whatever the
// search chose), or Unsolvable if the givens admit no solution.
func Solve(fixed []string) ([]string, error) {
	givens, err := toGivens(fixed)
	if err != nil {
		return nil, err
	}

	deduced := deduce.Deduce(givens)
	fixedCandidates := fromGivens(deduced)
	reducedCandidates, reducedConstraints := reduce(fixedCandidates)

	matrix := cover.Build(rules, reducedCandidates, reducedConstraints)
	solution, ok := cover.Solve(matrix)
	if !ok {
		return nil, Unsolvable
	}
	return append(fixedCandidates, solution...), nil
}

// reduce computes the exact cover matrix inputs for the remaining search
// once fixedCandidates are taken out: every other candidate that shares no
// constraint with a fixed one, and every constraint not already satisfied
// by a fixed candidate. Per spec.md §4.3's strategy (b), F itself never
// enters the matrix — it's concatenated back onto the search result.
func reduce(fixedCandidates []string) (candidates, constraints []string) {
	fixedConstraints := make(map[string]bool)
	fixedSet := make(map[string]bool, len(fixedCandidates))
	for _, candidate := range fixedCandidates {
		fixedSet[candidate] = true
		for _, constraint := range ConstraintsOf(candidate) {
			fixedConstraints[constraint] = true
		}
	}

	for _, candidate := range AllCandidates() {
		if fixedSet[candidate] {
			continue
		}
		conflicts := false
		for _, constraint := range ConstraintsOf(candidate) {
			if fixedConstraints[constraint] {
				conflicts = true
				break
			}
		}
		if !conflicts {
			candidates = append(candidates, candidate)
		}
	}

	for _, constraint := range AllConstraints() {
		if !fixedConstraints[constraint] {
			constraints = append(constraints, constraint)
		}
	}
	return candidates, constraints
}

func toGivens(fixed []string) ([]deduce.Given, error) {
	givens := make([]deduce.Given, 0, len(fixed))
	for _, candidate := range fixed {
		row, col, digit, ok := parseCandidate(candidate)
		if !ok {
			return nil, &InputError{Msg: "not a valid candidate: " + candidate}
		}
		givens = append(givens, deduce.Given{Row: row, Col: col, Digit: digit})
	}
	return givens, nil
}

func fromGivens(givens []deduce.Given) []string {
	out := make([]string, len(givens))
	for i, g := range givens {
		out[i] = candidateString(g.Row, g.Col, g.Digit)
	}
	return out
}
