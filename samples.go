package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// sample is the expected answer for a part and the input it is checked on.
type sample struct {
	input string
	want  string
}

// A sample comment starts with want=ANSWER; anything after the first blank
// line up to the end of the comment is the input.
var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// commentText strips the comment markers from a single ast.Comment.
func commentText(c string) string {
	if body, ok := strings.CutPrefix(c, "/*"); ok {
		return strings.TrimSuffix(body, "*/")
	}
	return strings.TrimPrefix(c, "//")
}

func parseSample(comment string) (sample, bool) {
	m := sampleRx.FindStringSubmatch(commentText(comment))
	if m == nil {
		return sample{}, false
	}
	return sample{want: strings.TrimSpace(m[1]), input: m[2]}, true
}

// extractSamples reads the doc comments of every solver method in the Go
// files of src. A sample without input reuses the input of the one before
// it in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, errors.Wrap(err, "listing sources")
	}
	slices.Sort(names)
	out := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s to extract samples", name)
		}
		fileSamples(f, out)
	}
	return out, nil
}

// fileSamples adds the samples of the functions declared in f to out, in
// declaration order.
func fileSamples(f *ast.File, out map[string]sample) {
	var prev string
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		i := slices.IndexFunc(fn.Doc.List, func(c *ast.Comment) bool {
			_, ok := parseSample(c.Text)
			return ok
		})
		if i < 0 {
			continue
		}
		s, _ := parseSample(fn.Doc.List[i].Text)
		if s.input == "" {
			s.input = prev
		}
		prev = s.input
		out[fn.Name.Name] = s
	}
}
