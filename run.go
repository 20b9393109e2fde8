package aoc

import (
	"flag"
	"fmt"
	"io/fs"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/vyevs/ansi"
	"golang.org/x/exp/maps"
)

// day is one puzzle day and its parts in part order.
type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. The methods must take no arguments and return any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("register: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	days := make(map[int]day)
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, errors.Errorf("%s: want func() any, got %v", name, v.Method(i).Type())
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: day", name)
		}
		d := days[n]
		d.day = n
		d.parts = append(d.parts, partSolver{fn: fn, Part: m[2], Name: name})
		days[n] = d
	}
	for _, d := range days {
		slices.SortFunc(d.parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days, nil
}

var flags struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	data       string
}

func init() {
	flag.IntVar(&flags.day, "day", -1, "day to run; all days if unset")
	flag.StringVar(&flags.part, "part", "", "part to run; all parts if unset")
	flag.BoolVar(&flags.onlySample, "sample", false, "only check the samples")
	flag.BoolVar(&flags.skipSample, "skip-sample", false, "do not check the samples")
	flag.BoolVar(&flags.debug, "debug", false, "log Puzzle.Debugf output in sample mode")
	flag.StringVar(&flags.data, "data", "data", "directory holding test/ and real/ inputs")
}

var initFlags = sync.OnceFunc(flag.Parse)

var (
	pass = ansi.FGColorName("green") + "ok" + ansi.Clear
	fail = ansi.FGColorName("red") + "FAIL" + ansi.Clear
)

// modes returns the input modes to run, sample first.
func modes() []bool {
	var out []bool
	if !flags.skipSample {
		out = append(out, true)
	}
	if !flags.onlySample {
		out = append(out, false)
	}
	return out
}

// runDay runs every selected part of d. It stops at, and reports false for,
// the first sample that gives the wrong answer.
func runDay(slvr any, year int, d day, samples map[string]sample) bool {
	p := &Puzzle{year: year, day: d, samples: samples}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	fmt.Println("Running day", d.day)
	for _, ps := range d.parts {
		if flags.part != "" && ps.Part != flags.part {
			continue
		}
		p.solver = ps
		for _, sm := range modes() {
			p.SampleMode = sm
			if !sm {
				p.Input() // read before the clock starts
			}
			klog.V(1).Infof("day %d part %s sample=%v", d.day, ps.Part, sm)
			start := time.Now()
			got := fmt.Sprint(ps.fn())
			took := time.Since(start).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %s (took %v)\n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; got != want {
				fmt.Printf("part %s: %s %s; want %s\n", ps.Part, got, fail, want)
				return false
			}
			fmt.Printf("part %s sample: %s %s (%v)\n", ps.Part, got, pass, took)
		}
	}
	return true
}

// Run registers the solver methods of slvr, reads their samples from the
// Go files in src, and runs the day selected by -day, or every day. It
// exits with status 1 if any sample gave the wrong answer.
// slvr must be a pointer to a struct embedding *Puzzle.
func Run(year int, src fs.FS, slvr any) {
	samples, err := extractSamples(src)
	if err != nil {
		klog.Fatalf("%v", err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		klog.Fatalf("%v", err)
	}
	initFlags()

	nums := maps.Keys(days)
	if flags.day != -1 {
		if _, ok := days[flags.day]; !ok {
			klog.Fatalf("no day %d", flags.day)
		}
		nums = []int{flags.day}
	}
	if failed := runDays(slvr, year, days, nums, samples); len(failed) > 0 {
		klog.Exitf("wrong sample answers on days %v", failed)
	}
}

// runDays runs the numbered days in order and returns the days whose
// samples failed.
func runDays(slvr any, year int, days map[int]day, nums []int, samples map[string]sample) []int {
	slices.Sort(nums)
	var failed []int
	for i, n := range nums {
		if i > 0 {
			fmt.Println()
		}
		if !runDay(slvr, year, days[n], samples) {
			failed = append(failed, n)
		}
	}
	return failed
}
