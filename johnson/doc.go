// Package johnson reweights a directed graph so that every edge becomes
// non-negative, as an instance of the LLP kernel, and supplements that
// core with an all-pairs shortest-path routine built on top of it.
//
// Every vertex v carries a tentative price[v] and a budget of n-1
// advances, mirroring bellmanford's mechanism but computing price as the
// max over parent edges of price[u] - w(u,v) instead of a min over sums.
// Solve reports ok=false on negative-cycle detection, the same policy
// bellmanford uses, so that a caller driving both algorithms can share
// error handling.
//
// AllPairs reweights every edge to w'(u,v) = w(u,v) + price[v] - price[u]
// (non-negative whenever Solve succeeds) and runs the dijkstra package
// once per source vertex, then un-reweights the resulting distances.
package johnson
