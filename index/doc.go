// Package index implements the ordered feature index: one per data feature
// (column), holding every distinct value of that feature exactly once.
//
// What
//
//   - A 2-3 search tree (at most 2 settled elements and 3 children per node,
//     a transient third element resolved by a split before Insert returns).
//     Splits push the middle element into the parent, creating a new root when
//     needed, and hand each half a contiguous half of the children
//     (split point ceil(childCount/2)). Depth guarantees match a B-tree of
//     minimum degree 2.
//   - An ascending doubly-linked chain, independent of the tree shape, that
//     threads every element of the index.
//   - Transition weights on the chain. For numeric features and adjacent
//     (a, b): weight(a→b) = 1 − (b − a)/(max − min). Text features carry
//     weight 0 on every link.
//
// Storage
//
//	Tree nodes live in a slab owned by the Index and refer to each other by
//	slot number. Elements live in the shared core.Store; the tree and the chain
//	only hold core.ElementID handles.
//
// Complexity (n = distinct keys)
//
//   - Search, Min, Max: O(log n)
//   - Insert of a new key: O(n). The chain splice walks from the leftmost
//     element and weights are recomputed over the whole chain. Acceptable for
//     batch ingestion; a hot path for indexes beyond a few thousand keys.
//   - Insert of a known key: O(log n).
//
// Errors
//
//   - *core.SchemaError    key of the wrong family (numeric vs text) or missing.
//   - *core.StructuralError a split found a node without 3 elements, or Check
//     found a broken invariant.
package index
