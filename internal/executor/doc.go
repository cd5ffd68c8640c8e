// Package executor provides a bounded worker pool exposing a single
// primitive: invoke a batch of index-keyed units of work in parallel and
// join on all of them, failing fast on the first error.
//
// Every phase of the LLP orchestrator (collectForbidden, each advance
// sub-step) is one call to Pool.Run. Task order within a batch is
// unspecified; tasks must only write the coordinate(s) keyed by their own
// index.
package executor
