// Package dfs provides depth-first ordering over string dependency maps.
//
// TopologicalSort returns the vertices so that each one follows everything
// it depends on. The graph package uses it to insert referenced tables
// before the tables that point at them, so foreign-key targets always exist
// when a referencing row is linked.
//
// Algorithm
//
//	Classic three-color DFS (White, Gray, Black). Meeting a Gray vertex is a
//	back edge and therefore a cycle. Post-order is emitted directly, which
//	puts dependencies first.
//
// Determinism
//
//	Vertices and each dependency list are walked in ascending order.
//
// Complexity
//
//   - Time:   O(V log V + E log E) with the sorting of vertex and edge lists.
//   - Memory: O(V) for the state map and recursion stack.
//
// Errors
//
//   - ErrGraphNil       if the map is nil.
//   - ErrUnknownVertex  if a dependency is not a vertex.
//   - ErrCycleDetected  if the dependencies form a cycle.
//   - ctx.Err()         when the WithCancelContext context is done.
package dfs
