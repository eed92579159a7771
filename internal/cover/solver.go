package cover

// Rules supplies the three problem-specific facts the engine needs and
// nothing else: every candidate, every constraint, and which constraints a
// given candidate satisfies. There is no interface and no dynamic dispatch
// — just three function values, since that is all a caller ever needs to
// hand the matrix builder.
type Rules struct {
	AllCandidates  func() []string
	AllConstraints func() []string
	ConstraintsOf  func(candidate string) []string
}

// Build constructs a matrix from rules, restricted to the given candidate
// and constraint subsets. Passing rules.AllCandidates() and
// rules.AllConstraints() builds the full matrix; callers that want a
// reduced matrix (e.g. with fixed candidates and their constraints already
// satisfied elsewhere) pass pre-filtered slices instead.
//
// Constraints are pre-created as column headers even when no surviving
// candidate satisfies them yet, so a constraint left unsatisfiable by the
// candidate subset still shows up as a zero-size column and correctly
// fails the search, rather than silently vanishing from the matrix.
func Build(rules Rules, candidates []string, constraints []string) *Matrix {
	m := New()
	for _, constraint := range constraints {
		m.colHeadFor(constraint)
	}
	for _, candidate := range candidates {
		m.Add(candidate, rules.ConstraintsOf(candidate))
	}
	return m
}

// Solve runs Knuth's Algorithm X over m: repeatedly choose the column with
// fewest remaining candidates, branch over its candidates top to bottom,
// covering before recursing and uncovering on backtrack. It finds one
// solution, not all of them, and returns as soon as every constraint is
// satisfied — the matrix is left in the covered state of that solution,
// uncovering nothing further.
//
// The returned slice is the set of candidate ids chosen, in selection
// order. ok is false if the search exhausted every branch without
// satisfying all constraints.
func Solve(m *Matrix) (solution []string, ok bool) {
	solve(m, &solution)
	return solution, m.Solved()
}

func solve(m *Matrix, partial *[]string) {
	if m.Exhausted() {
		return
	}
	col := m.ChooseColumn()
	for _, candidate := range m.CandidatesOf(col) {
		m.Cover(candidate)
		*partial = append(*partial, candidate.ID(m))

		if m.Solved() {
			return
		}
		solve(m, partial)
		if m.Solved() {
			return
		}

		*partial = (*partial)[:len(*partial)-1]
		m.Uncover()
	}
}
