package aoc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// NumDigits returns the number of decimal digits in n. NumDigits(0) is 1.
func NumDigits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10^n.
func Pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// ParseInts parses whitespace separated integers.
func ParseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Line: 1, Col: i + 1, Msg: "bad integer " + strconv.Quote(f), Err: ErrBadNumber}
		}
		out = append(out, v)
	}
	return out, nil
}

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for i, c := range line {
		if c < '0' || c > '9' {
			return nil, &ParseError{Line: 1, Col: i + 1, Msg: "not a digit: " + strconv.QuoteRune(c), Err: ErrBadNumber}
		}
		in = append(in, int(c-'0'))
	}
	return in, nil
}

// Int returns the int value of the string. It panics on bad input.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings. It panics on bad input.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(errors.WithStack(err))
	}
	return v
}
