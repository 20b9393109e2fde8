// Package aoc holds the grid search toolkit and the puzzle runner used by
// the Advent of Code 2024 solutions. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"os"

	"github.com/plan-systems/klog"
)

// Puzzle is embedded by the solver struct passed to Run. It gives each part
// access to its input.
type Puzzle struct {
	year int
	day  day
	// SampleMode is set while a part runs against its sample.
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	real    []byte
}

// Day returns the day being solved.
func (p *Puzzle) Day() int {
	return p.day.day
}

// Input returns the sample for the current part in sample mode, and the
// contents of <data>/real/day_N.txt otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.real == nil {
		b, err := os.ReadFile(InputPath(flags.data, false, p.day.day, ""))
		if err != nil {
			klog.Fatalf("day %d: %v", p.day.day, err)
		}
		p.real = b
	}
	return p.real
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	return MustGet(ReadLines(bytes.NewReader(p.Input())))
}

// TwoChunks returns the input split on its first blank line.
func (p *Puzzle) TwoChunks() ([]string, []string) {
	a, b, err := ReadTwoChunks(bytes.NewReader(p.Input()))
	MustDo(err)
	return a, b
}

// Chunks returns the input split on blank lines.
func (p *Puzzle) Chunks() [][]string {
	return MustGet(ReadChunks(bytes.NewReader(p.Input())))
}

// ForLinesY calls onLine with each line of input and its row number.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	lines := p.Lines()
	for y, line := range lines {
		onLine(y, line)
	}
}

func (p *Puzzle) ForLines(onLine func(line string)) {
	for _, line := range p.Lines() {
		onLine(line)
	}
}

// Debugf logs in sample mode when -debug is set.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode && flags.debug {
		klog.Infof(format, args...)
	}
}

// Sample returns the sample of the part being run. A part without one is
// fatal.
func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		klog.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}
