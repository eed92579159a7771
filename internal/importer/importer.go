// Package importer parses a Sudoku puzzle file into fixed
// R{row}C{col}#{digit} candidates, the format internal/sudoku.Solve
// consumes.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a failure to read or parse a puzzle file, with enough
// context (path, and the offending line/field when applicable) to print a
// useful diagnostic.
type ParseError struct {
	Path string
	Line int // 1-indexed puzzle row; 0 if not line-specific
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("importer: %s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("importer: %s: %s", loc, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ImportFile reads a puzzle from path: nine non-blank lines of nine
// comma-separated fields, each either "_" (empty) or a single digit 1-9,
// with optional surrounding whitespace and blank lines ignored. It returns
// the fixed candidates for every given cell, in the
// R{row}C{col}#{digit} grammar.
func ImportFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "cannot open file", Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var candidates []string
	row := 0
	for {
		fields, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Path: path, Line: row + 1, Msg: "malformed CSV line", Err: err}
		}
		fields = trimAll(fields)
		if isBlank(fields) {
			continue
		}
		row++
		if len(fields) != 9 {
			return nil, &ParseError{Path: path, Line: row, Msg: fmt.Sprintf("want 9 fields, got %d", len(fields))}
		}
		for col, field := range fields {
			if field == "_" {
				continue
			}
			digit, err := strconv.Atoi(field)
			if err != nil || digit < 1 || digit > 9 {
				return nil, &ParseError{Path: path, Line: row, Msg: fmt.Sprintf("field %d: %q is not \"_\" or a digit 1-9", col+1, field)}
			}
			candidates = append(candidates, fmt.Sprintf("R%dC%d#%d", row, col+1, digit))
		}
	}
	if row != 9 {
		return nil, &ParseError{Path: path, Msg: fmt.Sprintf("want 9 puzzle rows, got %d", row)}
	}
	return candidates, nil
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
