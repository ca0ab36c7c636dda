// Package bfs enumerates every simple path between a start node and the value
// elements accepted by a criterion, over the heterogeneous graph of value
// elements and records.
//
// What
//
//   - Explores partial paths in non-decreasing length from the start node.
//   - Element neighbors are records; record neighbors are owned elements and
//     linked records (see core.Store.Neighbors).
//   - By default a value element is entered only when it is accepted, which
//     ends the path there. WithValueTraversal lifts that restriction.
//   - Cycle avoidance is per path, not global: two branches reaching the same
//     node are both kept.
//
// Why
//
//	Stimulation scoring needs every route from an observed value to the target,
//	not only the shortest one.
//
// Determinism
//
//	Neighbors come back in a fixed order (column order, then ascending handle),
//	so the returned path order is reproducible.
//
// Complexity
//
//	The number of simple paths is exponential in the worst case. Nothing is
//	bounded by default; WithMaxDepth and WithMaxPaths cap the work.
//
// Usage
//
//	paths, err := bfs.Paths(store, core.ElementRef(start),
//	    func(id core.ElementID) bool { return store.Element(id).Feature == "score" },
//	    bfs.WithMaxDepth(6),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrAcceptNil        if the criterion is nil.
//   - ErrStartInvalid     if the start node has no kind.
//   - ErrOptionViolation  if an Option is invalid (negative limits).
//   - ctx.Err()           on cancellation.
//   - Wrapped OnVisit hook errors.
package bfs
