package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/llp-go/lattice/graphs"
)

func printIndexValueTable(values []int64) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"index", "value"})
	for i, v := range values {
		t.AppendRow(table.Row{i, v})
	}
	t.Render()
}

func printIndexValueTableInt(values []int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"index", "value"})
	for i, v := range values {
		t.AppendRow(table.Row{i, v})
	}
	t.Render()
}

func printManWomanTable(menMatching []int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"man", "woman"})
	for man, woman := range menMatching {
		t.AppendRow(table.Row{man, woman})
	}
	t.Render()
}

func printEdgeTable(edges []graphs.Edge) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"u", "v", "weight"})
	for _, e := range edges {
		t.AppendRow(table.Row{e.U, e.V, e.Weight})
	}
	t.Render()
}
