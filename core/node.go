package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ElementID addresses an Element inside a Store.
type ElementID int32

// RecordID addresses a Record inside a Store.
type RecordID int32

// NoElement marks an absent chain neighbor.
const NoElement ElementID = -1

// InitialPriority is the priority of every freshly created node.
const InitialPriority = 1.0

// Element is one distinct (feature, key) value node.
type Element struct {
	// Key is the indexed value.
	Key Key
	// Feature is the name of the owning index.
	Feature string
	// Duplicates counts insertions of Key; always >= 1.
	Duplicates int
	// Priority is the learned scalar, initially 1.0.
	Priority float64

	// Prev and Next thread the ascending chain of the owning index.
	Prev, Next ElementID
	// PrevWeight and NextWeight are the transition weights toward Prev and Next.
	PrevWeight, NextWeight float64

	records *roaring.Bitmap
}

// Records returns the records using this element in ascending order.
func (e *Element) Records() []RecordID {
	return toRecordIDs(e.records)
}

// RecordCount returns the number of records using this element.
func (e *Element) RecordCount() int {
	return int(e.records.GetCardinality())
}

// HasRecord reports whether r uses this element.
func (e *Element) HasRecord(r RecordID) bool {
	return e.records.Contains(uint32(r))
}

// Weight returns 1/Duplicates, the element↔record edge weight.
func (e *Element) Weight() float64 {
	return 1.0 / float64(e.Duplicates)
}

// Record is one source-table row.
type Record struct {
	// Table is the class of the record (source table name).
	Table string
	// Duplicates is the record multiplicity; one record per row keeps it at 1.
	Duplicates int
	// Priority is the learned scalar, initially 1.0.
	Priority float64

	elements []ElementID
	links    *roaring.Bitmap
}

// Elements returns the owned value elements in column order.
func (r *Record) Elements() []ElementID {
	out := make([]ElementID, len(r.elements))
	copy(out, r.elements)
	return out
}

// Links returns the linked records in ascending order.
func (r *Record) Links() []RecordID {
	return toRecordIDs(r.links)
}

// IsLinked reports whether o is linked to this record.
func (r *Record) IsLinked(o RecordID) bool {
	return r.links.Contains(uint32(o))
}

// Weight returns 1/Duplicates, the weight of an edge entering this record
// from another record.
func (r *Record) Weight() float64 {
	return 1.0 / float64(r.Duplicates)
}

func toRecordIDs(bm *roaring.Bitmap) []RecordID {
	out := make([]RecordID, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, RecordID(it.Next()))
	}
	return out
}

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	// ElementNode tags a value element handle.
	ElementNode NodeKind = iota + 1
	// RecordNode tags a record handle.
	RecordNode
)

// Node is the tagged union of the two graph node kinds.
type Node struct {
	Kind NodeKind
	ID   int32
}

// ElementRef wraps an element handle.
func ElementRef(id ElementID) Node { return Node{Kind: ElementNode, ID: int32(id)} }

// RecordRef wraps a record handle.
func RecordRef(id RecordID) Node { return Node{Kind: RecordNode, ID: int32(id)} }

// IsElement reports whether n is a value element.
func (n Node) IsElement() bool { return n.Kind == ElementNode }

// IsRecord reports whether n is a record.
func (n Node) IsRecord() bool { return n.Kind == RecordNode }

// Element returns the element handle; ok is false for records.
func (n Node) Element() (id ElementID, ok bool) {
	return ElementID(n.ID), n.Kind == ElementNode
}

// Record returns the record handle; ok is false for elements.
func (n Node) Record() (id RecordID, ok bool) {
	return RecordID(n.ID), n.Kind == RecordNode
}

func (n Node) String() string {
	switch n.Kind {
	case ElementNode:
		return fmt.Sprintf("e%d", n.ID)
	case RecordNode:
		return fmt.Sprintf("r%d", n.ID)
	default:
		return "?"
	}
}
