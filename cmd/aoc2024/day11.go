package main

import (
	"strings"

	aoc "github.com/maisem/aoc2024"
)

// blink is what a single stone turns into.
func blink(n int) []int {
	if n == 0 {
		return []int{1}
	}
	if d := aoc.NumDigits(n); d%2 == 0 {
		p := aoc.Pow10(d / 2)
		return []int{n / p, n % p}
	}
	return []int{n * 2024}
}

func countStones(stones []int, blinks int) int {
	return aoc.NewCounter(blink).CountAll(stones, blinks)
}

func (s solver) stones() []int {
	return aoc.MustGet(aoc.ParseInts(strings.Join(s.Lines(), " ")))
}

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return countStones(s.stones(), 25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return countStones(s.stones(), 75)
}
