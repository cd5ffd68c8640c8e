// Package graphs defines the value types the LLP algorithm instances
// operate over: a weighted directed adjacency matrix with parent lists,
// and a weighted undirected graph with per-vertex incidence.
package graphs
