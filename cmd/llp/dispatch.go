package main

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/llp-go/lattice/bellmanford"
	"github.com/llp-go/lattice/boruvka"
	"github.com/llp-go/lattice/fastcomp"
	"github.com/llp-go/lattice/galeshapley"
	"github.com/llp-go/lattice/johnson"
	"github.com/llp-go/lattice/llp"
	"github.com/llp-go/lattice/loader"
	"github.com/llp-go/lattice/prefixsum"
	"github.com/llp-go/lattice/reduce"
)

// ErrUnknownAlgorithm indicates the first positional argument did not
// name a dispatchable algorithm.
var ErrUnknownAlgorithm = errors.New("llp: unknown algorithm")

func runAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.Wrap(llp.ErrInvalidArgument, "llp run: expected <algorithm> <path>")
	}
	algorithm, path := c.Args().Get(0), c.Args().Get(1)

	var opts []llp.Option
	if n := c.Int("workers"); n > 0 {
		opts = append(opts, llp.WithMaxWorkers(n))
	}

	ctx := context.Background()
	switch algorithm {
	case "reduce":
		return runReduce(ctx, path, opts)
	case "prefixsum":
		return runPrefixSum(ctx, path, opts)
	case "bellmanford":
		return runBellmanFord(ctx, path, c.Int("source"), opts)
	case "johnson":
		return runJohnson(ctx, path, opts)
	case "fastcomp":
		return runFastComp(ctx, path, c.Bool("self-loops"), opts)
	case "boruvka":
		return runBoruvka(ctx, path, opts)
	case "galeshapley":
		return runGaleShapley(ctx, path)
	default:
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", algorithm)
	}
}

func runReduce(ctx context.Context, path string, opts []llp.Option) error {
	a, err := loader.LoadIntArrayFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run reduce")
	}
	tree, err := reduce.Tree(ctx, a, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run reduce")
	}
	printIndexValueTable(tree)
	return nil
}

func runPrefixSum(ctx context.Context, path string, opts []llp.Option) error {
	a, err := loader.LoadIntArrayFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run prefixsum")
	}
	p, err := prefixsum.Solve(ctx, a, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run prefixsum")
	}
	printIndexValueTable(p)
	return nil
}

func runBellmanFord(ctx context.Context, path string, source int, opts []llp.Option) error {
	g, err := loader.LoadDirectedGraphFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run bellmanford")
	}
	d, ok, err := bellmanford.Solve(ctx, g, source, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run bellmanford")
	}
	if !ok {
		fmt.Println("negative cycle detected: no result")
		return nil
	}
	printIndexValueTable(d)
	return nil
}

func runJohnson(ctx context.Context, path string, opts []llp.Option) error {
	g, err := loader.LoadDirectedGraphFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run johnson")
	}
	price, ok, err := johnson.Solve(ctx, g, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run johnson")
	}
	if !ok {
		fmt.Println("negative cycle detected: no result")
		return nil
	}
	printIndexValueTable(price)
	return nil
}

func runFastComp(ctx context.Context, path string, selfLoops bool, opts []llp.Option) error {
	g, err := loader.LoadUnweightedUndirectedGraphFile(path, selfLoops)
	if err != nil {
		return errors.Wrap(err, "llp run fastcomp")
	}
	parent, err := fastcomp.Solve(ctx, g, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run fastcomp")
	}
	printIndexValueTableInt(parent)
	return nil
}

func runBoruvka(ctx context.Context, path string, opts []llp.Option) error {
	g, err := loader.LoadWeightedUndirectedGraphFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run boruvka")
	}
	edges, total, err := boruvka.Solve(ctx, g, opts...)
	if err != nil {
		return errors.Wrap(err, "llp run boruvka")
	}
	printEdgeTable(edges)
	fmt.Printf("total weight: %d\n", total)
	return nil
}

func runGaleShapley(ctx context.Context, path string) error {
	problem, err := loader.LoadMatchingProblemFile(path)
	if err != nil {
		return errors.Wrap(err, "llp run galeshapley")
	}
	menMatching, _, err := galeshapley.Solve(ctx, problem)
	if err != nil {
		return errors.Wrap(err, "llp run galeshapley")
	}
	printManWomanTable(menMatching)
	return nil
}
