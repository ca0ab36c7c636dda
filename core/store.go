package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Store is the slab that owns every Element and Record of one graph.
//
// Handles stay valid for the lifetime of the Store; nothing is ever deleted.
type Store struct {
	elements []*Element
	records  []*Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// NewElement allocates an element for (feature, key) with one occurrence,
// priority 1.0 and no chain neighbors.
func (s *Store) NewElement(feature string, key Key) ElementID {
	id := ElementID(len(s.elements))
	s.elements = append(s.elements, &Element{
		Key:        key,
		Feature:    feature,
		Duplicates: 1,
		Priority:   InitialPriority,
		Prev:       NoElement,
		Next:       NoElement,
		records:    roaring.New(),
	})
	return id
}

// NewRecord allocates a record of the given table with priority 1.0.
func (s *Store) NewRecord(table string) RecordID {
	id := RecordID(len(s.records))
	s.records = append(s.records, &Record{
		Table:      table,
		Duplicates: 1,
		Priority:   InitialPriority,
		links:      roaring.New(),
	})
	return id
}

// Element returns the element behind id. It panics on a handle that was
// never issued by this Store.
func (s *Store) Element(id ElementID) *Element {
	return s.elements[id]
}

// Record returns the record behind id. It panics on a handle that was
// never issued by this Store.
func (s *Store) Record(id RecordID) *Record {
	return s.records[id]
}

// ElementCount returns the number of allocated elements.
func (s *Store) ElementCount() int { return len(s.elements) }

// RecordCount returns the number of allocated records.
func (s *Store) RecordCount() int { return len(s.records) }

// Attach links element e and record r in both directions.
// Attaching twice is a no-op.
func (s *Store) Attach(e ElementID, r RecordID) {
	el, rec := s.elements[e], s.records[r]
	if el.records.CheckedAdd(uint32(r)) {
		rec.elements = append(rec.elements, e)
	}
}

// Link joins records a and b in both directions. Self links are ignored.
func (s *Store) Link(a, b RecordID) {
	if a == b {
		return
	}
	s.records[a].links.Add(uint32(b))
	s.records[b].links.Add(uint32(a))
}

// Priority returns the priority of n.
func (s *Store) Priority(n Node) float64 {
	if id, ok := n.Element(); ok {
		return s.elements[id].Priority
	}
	id, _ := n.Record()
	return s.records[id].Priority
}

// Scale multiplies the priority of n by factor.
func (s *Store) Scale(n Node, factor float64) {
	if id, ok := n.Element(); ok {
		s.elements[id].Priority *= factor
		return
	}
	id, _ := n.Record()
	s.records[id].Priority *= factor
}

// Neighbors returns the neighbors of n following the element and record
// neighbor rules.
func (s *Store) Neighbors(n Node) []Node {
	switch n.Kind {
	case ElementNode:
		return s.ElementNeighbors(ElementID(n.ID))
	case RecordNode:
		return s.RecordNeighbors(RecordID(n.ID))
	default:
		return nil
	}
}

// ElementNeighbors returns the records linked to e.
func (s *Store) ElementNeighbors(e ElementID) []Node {
	el := s.elements[e]
	out := make([]Node, 0, el.records.GetCardinality())
	it := el.records.Iterator()
	for it.HasNext() {
		out = append(out, RecordRef(RecordID(it.Next())))
	}
	return out
}

// RecordNeighbors returns the owned elements of r followed by its linked records.
func (s *Store) RecordNeighbors(r RecordID) []Node {
	rec := s.records[r]
	out := make([]Node, 0, len(rec.elements)+int(rec.links.GetCardinality()))
	for _, e := range rec.elements {
		out = append(out, ElementRef(e))
	}
	it := rec.links.Iterator()
	for it.HasNext() {
		out = append(out, RecordRef(RecordID(it.Next())))
	}
	return out
}

// Describe renders n with its feature/key or table for diagnostics.
func (s *Store) Describe(n Node) string {
	if id, ok := n.Element(); ok {
		el := s.elements[id]
		return fmt.Sprintf("%s=%s", el.Feature, el.Key)
	}
	id, _ := n.Record()
	return fmt.Sprintf("%s#%d", s.records[id].Table, id)
}
