package aoc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoords(t *testing.T) {
	got, err := ParseCoords([]string{"5,4", " 4, 2 ", "", "0,6"})
	require.NoError(t, err)
	assert.Equal(t, []Pt{
		{Row: 4, Col: 5},
		{Row: 2, Col: 4},
		{Row: 6, Col: 0},
	}, got)
}

func TestParseCoordsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		line int
	}{
		{"missing-comma", []string{"1,1", "1 2"}, 2},
		{"letters", []string{"a,b"}, 1},
		{"negative", []string{"0,0", "0,0", "-1,3"}, 3},
		{"three-values", []string{"1,2,3"}, 1},
		{"half", []string{"7,"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCoords(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadCoord), "got %v", err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestParseErrorString(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Line: 3, Col: 7, Msg: "boom", Err: ErrBadCell}, "parse 3:7: boom"},
		{&ParseError{Line: 2, Msg: "short row", Err: ErrRagged}, "parse 2: short row"},
		{&ParseError{Err: ErrNoStart}, "parse: aoc: missing start"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts("  125 17\t-3 ")
	require.NoError(t, err)
	assert.Equal(t, []int{125, 17, -3}, got)

	_, err = ParseInts("1 x 3")
	assert.True(t, errors.Is(err, ErrBadNumber))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Col)
}

func TestDigits(t *testing.T) {
	got, err := Digits("2333133121")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3, 3, 1, 3, 3, 1, 2, 1}, got)

	_, err = Digits("12a")
	assert.True(t, errors.Is(err, ErrBadNumber))
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 1, NumDigits(0))
	assert.Equal(t, 4, NumDigits(2024))
	assert.Equal(t, 3, NumDigits(-512))
	assert.Equal(t, 1000, Pow10(3))
	assert.Equal(t, []int{1, 2}, Ints("1", " 2"))
	assert.Panics(t, func() { Int("nope") })
	assert.Panics(t, func() { MustDo(ErrNoPath) })
}
