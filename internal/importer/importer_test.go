package importer

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writePuzzle(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const wikipediaCSV = `
5,3,_,_,7,_,_,_,_
6,_,_,1,9,5,_,_,_
_,9,8,_,_,_,_,6,_

8,_,_,_,6,_,_,_,3
4,_,_,8,_,3,_,_,1
7,_,_,_,2,_,_,_,6

_,6,_,_,_,_,2,8,_
_,_,_,4,1,9,_,_,5
_,_,_,_,8,_,_,7,9
`

func TestImportFileParsesGivens(t *testing.T) {
	path := writePuzzle(t, wikipediaCSV)
	candidates, err := ImportFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 30 {
		t.Fatalf("want 30 givens, got %d: %v", len(candidates), candidates)
	}
	sort.Strings(candidates)
	if candidates[0] != "R1C1#5" {
		t.Errorf("want first candidate R1C1#5, got %s", candidates[0])
	}
}

func TestImportFileRejectsWrongFieldCount(t *testing.T) {
	path := writePuzzle(t, "5,3,_,_,7,_,_,_\n")
	if _, err := ImportFile(path); err == nil {
		t.Fatal("expected an error for a short row")
	}
}

func TestImportFileRejectsBadDigit(t *testing.T) {
	path := writePuzzle(t, "5,3,_,_,7,_,_,_,X\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n")
	if _, err := ImportFile(path); err == nil {
		t.Fatal("expected an error for a non-digit field")
	}
}

func TestImportFileRejectsMissingFile(t *testing.T) {
	if _, err := ImportFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestImportFileRejectsWrongRowCount(t *testing.T) {
	path := writePuzzle(t, "_,_,_,_,_,_,_,_,_\n_,_,_,_,_,_,_,_,_\n")
	if _, err := ImportFile(path); err == nil {
		t.Fatal("expected an error for too few rows")
	}
}
