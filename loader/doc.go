// Package loader reads the plain-text fixture formats used to seed the
// algorithm packages in this module: a flat integer array, a weighted
// directed graph given as per-vertex destination/weight line pairs, an
// unweighted undirected graph given as per-vertex neighbor lists, a
// weighted undirected graph given as an edge list, and a stable-matching
// problem given as two blocks of preference permutations.
//
// Every Load* function reads from an io.Reader; a LoadXFile convenience
// wrapper opens a path and delegates to it.
package loader
