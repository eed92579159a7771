// Command sudoku reads a 9x9 Sudoku puzzle from a CSV file and prints its
// unique solution.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/exactcover/internal/importer"
	"github.com/kpitt/exactcover/internal/sudoku"
	"github.com/kpitt/exactcover/internal/visualizer"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, color.HiRedString("internal error: %v", r))
			exitCode = 1
		}
	}()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sudoku <puzzle-file>")
		return 1
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	path := os.Args[1]
	fixed, err := importer.ImportFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("%v", err))
		return 1
	}

	solution, err := sudoku.Solve(fixed)
	if err != nil {
		if errors.Is(err, sudoku.Unsolvable) {
			fmt.Fprintln(os.Stderr, color.HiYellowString("%v", err))
			return 2
		}
		fmt.Fprintln(os.Stderr, color.HiRedString("%v", err))
		return 1
	}

	color.HiWhite("Solution:")
	if err := visualizer.Render(os.Stdout, solution); err != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("%v", err))
		return 1
	}
	return 0
}
