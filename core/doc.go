// Package core defines the value and record nodes of an associative graph,
// the ordered Key they are indexed by, and the slab Store that owns them.
//
// What
//
//   - Key: a tagged integer, float or text value with a total order inside
//     one key family (numeric or text).
//   - Element: one distinct (feature, key) value node with its duplicate count,
//     learned priority, ascending-chain links and transition weights, and the
//     set of records that use it.
//   - Record: one source-table row, owning the elements of its columns and
//     linked to related records through foreign keys.
//   - Node: a tagged union {ElementNode | RecordNode, ID} used wherever the two
//     node kinds meet (paths, neighbor lists, priority updates).
//   - Store: slab storage addressed by ElementID / RecordID handles. Chain and
//     link references are plain handles, never owning pointers.
//
// Neighbor rules
//
//	Element → the records linked to it (ascending RecordID).
//	Record  → its owned elements (column order), then linked records (ascending RecordID).
//
// Errors
//
// The error taxonomy shared by every package of the module lives here:
//
//   - ErrStructural / *StructuralError: a tree or index invariant is broken.
//   - ErrLookup / *LookupError: an expected feature, value or path is absent.
//     Causes: ErrUnknownFeature, ErrUnknownValue, ErrMissingValue, ErrNoPath.
//   - ErrSchema / *SchemaError: table or key declarations disagree with rows.
//
// All three are unrecoverable at the point of detection and are never retried.
//
// Concurrency
//
//	Store is not synchronized. The owning graph serializes mutation.
package core
