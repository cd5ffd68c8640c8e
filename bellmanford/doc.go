// Package bellmanford computes single-source shortest-path distances on
// a weighted directed graph as an instance of the LLP kernel.
//
// Every vertex v carries a tentative distance d[v] and a budget of n-1
// advances. v is forbidden while some parent edge still improves d[v];
// advancing relaxes v to its best parent and decrements its budget.
// Exhausting the budget while still forbidden flags a reachable
// negative cycle.
//
// Solve reports ok=false on negative-cycle detection rather than
// returning d unconditionally, matching the consistent policy also used
// by the johnson package (see that package's doc comment for the
// rationale).
package bellmanford
