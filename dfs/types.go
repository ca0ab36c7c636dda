package dfs

import "errors"

// Visitation states used by the sorter.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS stack.
	Black        // Black: the vertex and all its dependencies are emitted.
)

var (
	// ErrGraphNil is returned when a nil dependency map is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a dependency cycle was found.
	// The wrapping error names the vertex that closed the cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUnknownVertex indicates a dependency that is not itself a vertex.
	ErrUnknownVertex = errors.New("dfs: unknown vertex")
)
