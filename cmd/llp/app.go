package main

import (
	"github.com/urfave/cli/v2"
)

// app is the llp command-line dispatcher: `llp run <algorithm> <path>`
// loads a fixture file in the format its algorithm expects, solves it,
// and prints the result as a table.
var app = &cli.App{
	Name:  "llp",
	Usage: "run a lattice-linear-predicate kernel algorithm against an input fixture",
	Commands: []*cli.Command{
		&runCommand,
	},
}

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "dispatch to an algorithm by name",
	ArgsUsage: "<algorithm> <path>",
	Flags: []cli.Flag{
		&workersFlag,
		&sourceFlag,
		&selfLoopsFlag,
	},
	Action: runAction,
}

var workersFlag = cli.IntFlag{
	Name:  "workers",
	Usage: "cap on concurrently running phase tasks (0 = default)",
	Value: 0,
}

var sourceFlag = cli.IntFlag{
	Name:  "source",
	Usage: "source vertex for bellmanford",
	Value: 0,
}

var selfLoopsFlag = cli.BoolFlag{
	Name:  "self-loops",
	Usage: "allow self-loops when loading an unweighted undirected graph (fastcomp)",
	Value: false,
}
