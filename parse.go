package aoc

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Causes wrapped by ParseError.
var (
	ErrEmptyInput = errors.New("aoc: empty input")
	ErrRagged     = errors.New("aoc: rows have different lengths")
	ErrBadCell    = errors.New("aoc: unexpected grid character")
	ErrNoStart    = errors.New("aoc: missing start")
	ErrNoEnd      = errors.New("aoc: missing end")
	ErrDuplicate  = errors.New("aoc: duplicate marker")
	ErrBadNumber  = errors.New("aoc: bad number")
	ErrBadCoord   = errors.New("aoc: bad coordinate")
)

// ParseError describes malformed puzzle input. Line and Col are 1-based; a
// zero value means the position is unknown.
type ParseError struct {
	Line, Col int
	Msg       string
	Err       error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse")
	if e.Line > 0 {
		fmt.Fprintf(&b, " %d", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(&b, ":%d", e.Col)
		}
	}
	b.WriteString(": ")
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else if e.Err != nil {
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

type coordList struct {
	Coords []*coord `parser:"@@*"`
}

type coord struct {
	X int `parser:"@Int \",\""`
	Y int `parser:"@Int"`
}

var coordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var coordParser = participle.MustBuild[coordList](
	participle.Lexer(coordLexer),
)

// ParseCoords parses lines of "X,Y" pairs. X is the column and Y the row.
// Blank lines are skipped.
func ParseCoords(lines []string) ([]Pt, error) {
	var out []Pt
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cl, err := coordParser.ParseString("", line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Msg: err.Error(), Err: ErrBadCoord}
		}
		if len(cl.Coords) != 1 {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("want one coordinate, got %d", len(cl.Coords)), Err: ErrBadCoord}
		}
		c := cl.Coords[0]
		out = append(out, Pt{Row: c.Y, Col: c.X})
	}
	return out, nil
}
