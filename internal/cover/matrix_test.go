package cover

import (
	"fmt"
	"testing"
)

// knuthExample is the textbook exact cover instance from Knuth's Dancing
// Links paper: 6 candidates over 7 constraints, unique solution {B, D, F}.
var knuthExample = map[string][]string{
	"A": {"c1", "c4", "c7"},
	"B": {"c1", "c4"},
	"C": {"c4", "c5", "c7"},
	"D": {"c3", "c5", "c6"},
	"E": {"c2", "c3", "c6", "c7"},
	"F": {"c2", "c7"},
}

func buildKnuth() *Matrix {
	m := New()
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		m.Add(name, knuthExample[name])
	}
	return m
}

func TestAddCreatesHeadersOnce(t *testing.T) {
	m := buildKnuth()
	if got := m.nodes[root].size; got != 0 {
		t.Fatalf("root should carry no size, got %d", got)
	}
	wantCols := 7
	n := 0
	for c := m.nodes[root].right; c != root; c = m.nodes[c].right {
		n++
	}
	if n != wantCols {
		t.Fatalf("want %d column headers, got %d", wantCols, n)
	}
	wantRows := 6
	n = 0
	for r := m.nodes[root].down; r != root; r = m.nodes[r].down {
		n++
	}
	if n != wantRows {
		t.Fatalf("want %d row heads, got %d", wantRows, n)
	}
}

func TestColumnSizes(t *testing.T) {
	m := buildKnuth()
	want := map[string]int{"c1": 2, "c2": 2, "c3": 2, "c4": 3, "c5": 2, "c6": 2, "c7": 4}
	for c := m.nodes[root].right; c != root; c = m.nodes[c].right {
		col := Column{c}
		if got := col.Size(m); got != want[col.Name(m)] {
			t.Errorf("column %s: want size %d, got %d", col.Name(m), want[col.Name(m)], got)
		}
	}
}

func TestChooseColumnPicksMinimum(t *testing.T) {
	m := buildKnuth()
	col := m.ChooseColumn()
	// c1, c2, c3, c5, c6 all have size 2; c1 occurs first in insertion order.
	if got := col.Size(m); got != 2 {
		t.Fatalf("want minimum size 2, got %d", got)
	}
}

func TestCoverUncoverIsIdentity(t *testing.T) {
	m := buildKnuth()
	before := snapshot(m)

	col := m.ChooseColumn()
	cands := m.CandidatesOf(col)
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate")
	}
	m.Cover(cands[0])
	m.Uncover()

	after := snapshot(m)
	if before != after {
		t.Fatalf("cover/uncover was not its own inverse:\nbefore=%s\nafter=%s", before, after)
	}
}

func TestCoverRemovesChosenRowWithoutSolving(t *testing.T) {
	m := buildKnuth()
	col := m.ChooseColumn()
	cands := m.CandidatesOf(col)
	m.Cover(cands[0])

	if m.Solved() {
		t.Fatal("single cover should not solve this instance")
	}
	if m.rowIsLive(cands[0].idx) {
		t.Fatal("covered candidate's row head should no longer be live")
	}
}

func TestUncoverOnEmptyHistoryPanics(t *testing.T) {
	m := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Uncover on empty history to panic")
		}
	}()
	m.Uncover()
}

func TestCoverUnknownCandidatePanics(t *testing.T) {
	m := buildKnuth()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Cover on an invalid candidate to panic")
		}
	}()
	m.Cover(Candidate{idx: 99999})
}

// snapshot captures every node's link fields, for before/after comparison.
func snapshot(m *Matrix) string {
	s := ""
	for i, n := range m.nodes {
		s += fmt.Sprintf("%d:%d,%d,%d,%d ", i, n.left, n.right, n.up, n.down)
	}
	return s
}
