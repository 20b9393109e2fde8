// Command aoc2024 runs the Advent of Code 2024 solutions.
//
//	aoc2024 -day 16 -data ./data
package main

import (
	"embed"
	"flag"

	aoc "github.com/maisem/aoc2024"
	"github.com/plan-systems/klog"
)

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	defer klog.Flush()

	aoc.Run(2024, source, &solver{})
}
