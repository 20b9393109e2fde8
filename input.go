package aoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// InputPath returns the conventional location of a puzzle input:
// dir/test/day_N.txt or dir/real/day_N.txt, with an optional suffix before
// the extension.
func InputPath(dir string, test bool, day int, suffix string) string {
	sub := "real"
	if test {
		sub = "test"
	}
	return filepath.Join(dir, sub, fmt.Sprintf("day_%d%s.txt", day, suffix))
}

// ReadLines returns the lines of r without their line endings.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading lines")
	}
	return lines, nil
}

// ReadTwoChunks splits r on its first blank line. Blank lines are never
// returned, so any later blank lines are dropped from the second chunk.
func ReadTwoChunks(r io.Reader) (first, second []string, err error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, nil, err
	}
	split := false
	for _, line := range lines {
		if isBlank(line) {
			split = true
			continue
		}
		if split {
			second = append(second, line)
		} else {
			first = append(first, line)
		}
	}
	return first, second, nil
}

// ReadChunks splits r on every run of blank lines. Empty chunks are not
// returned.
func ReadChunks(r io.Reader) ([][]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	var chunks [][]string
	var cur []string
	for _, line := range lines {
		if isBlank(line) {
			if len(cur) > 0 {
				chunks = append(chunks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ReadLinesFile is ReadLines on the named file.
func ReadLinesFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadTwoChunksFile is ReadTwoChunks on the named file.
func ReadTwoChunksFile(name string) ([]string, []string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return ReadTwoChunks(f)
}

// ReadChunksFile is ReadChunks on the named file.
func ReadChunksFile(name string) ([][]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return ReadChunks(f)
}
