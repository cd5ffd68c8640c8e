// Package reduce computes subtree sums over a binary tree built on top
// of a 1-D integer array, as an instance of the LLP kernel.
//
// For an input of length n the tree has n-1 nodes laid out
// breadth-first (root at index 0), where nodes in [n/2-1, n-2] ("leaf
// parents") sum two array elements directly and nodes in [0, n/2-1)
// sum their two children. Tree and Solve both return this full n-1
// node vector; the prefixsum package calls Tree on an input already
// padded to a power of two and reuses the result as its summation
// table.
package reduce
