package main

import (
	"strings"

	aoc "github.com/maisem/aoc2024"
	"tailscale.com/util/deephash"
)

// keypad maps each key to its position. gap is the one empty position a
// robot arm must never point at.
type keypad struct {
	keys map[byte]aoc.Pt
	gap  aoc.Pt
}

// newKeypad builds a keypad from its rows; a space marks the gap.
func newKeypad(rows ...string) keypad {
	kp := keypad{keys: make(map[byte]aoc.Pt)}
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			p := aoc.Pt{Row: r, Col: c}
			if row[c] == ' ' {
				kp.gap = p
				continue
			}
			kp.keys[row[c]] = p
		}
	}
	return kp
}

var (
	numericPad     = newKeypad("789", "456", "123", " 0A")
	directionalPad = newKeypad(" ^A", "<v>")
)

// move returns the presses on the next keypad up that move the arm from a
// to b and press b. Moves left go first and the rest go last, unless that
// would cross the gap.
func (kp keypad) move(a, b byte) []byte {
	from, to := kp.keys[a], kp.keys[b]
	vert, horiz := aoc.Down, aoc.Right
	if to.Row < from.Row {
		vert = aoc.Up
	}
	if to.Col < from.Col {
		horiz = aoc.Left
	}
	v := strings.Repeat(vert.String(), aoc.AbsDiff(to.Row, from.Row))
	h := strings.Repeat(horiz.String(), aoc.AbsDiff(to.Col, from.Col))

	horizFirst := horiz == aoc.Left
	if horizFirst && (aoc.Pt{Row: from.Row, Col: to.Col}) == kp.gap {
		horizFirst = false
	} else if !horizFirst && (aoc.Pt{Row: to.Row, Col: from.Col}) == kp.gap {
		horizFirst = true
	}
	if horizFirst {
		return []byte(h + v + "A")
	}
	return []byte(v + h + "A")
}

// press returns the chunks typed one keypad up to enter seq, with the arm
// starting on A. Every chunk ends in A.
func (kp keypad) press(seq []byte) [][]byte {
	out := make([][]byte, 0, len(seq))
	cur := byte('A')
	for _, b := range seq {
		out = append(out, kp.move(cur, b))
		cur = b
	}
	return out
}

// parseCode returns the numeric part of a door code such as 029A.
func parseCode(code string) (int, error) {
	num, ok := strings.CutSuffix(code, "A")
	if !ok || num == "" {
		return 0, &aoc.ParseError{Msg: "door code must be digits then A: " + code, Err: aoc.ErrBadNumber}
	}
	digits, err := aoc.Digits(num)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n, nil
}

// humanPresses returns how many buttons the human presses to type code
// through robots directional keypads. A chunk at one level turns into one
// chunk per press at the next, so the length of a level is the number of
// chunks one level further up.
func humanPresses(c *aoc.Counter[deephash.Sum, []byte], code string, robots int) int {
	chunks := numericPad.press([]byte(code))
	lens := make([]int, len(chunks))
	for i, ch := range chunks {
		lens[i] = c.CountAfter(ch, robots+1)
	}
	return aoc.Sum(lens...)
}

// sumComplexity sums press count times numeric part over codes.
func sumComplexity(codes []string, robots int) (int, error) {
	c := aoc.NewHashedCounter(directionalPad.press)
	total := 0
	for i, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		n, err := parseCode(code)
		if err != nil {
			if pe, ok := err.(*aoc.ParseError); ok {
				pe.Line = i + 1
			}
			return 0, err
		}
		total += n * humanPresses(c, code, robots)
	}
	return total, nil
}

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	return aoc.MustGet(sumComplexity(s.Lines(), 2))
}

// want=154115708116294
func (s solver) D21p2() any {
	return aoc.MustGet(sumComplexity(s.Lines(), 25))
}
