package index

import (
	"fmt"

	"github.com/katalvlaran/magn/core"
)

// noSlot marks an absent parent.
const noSlot = -1

// node is one tree node: 1–2 settled elements (transiently 3), a parent slot
// and either no children or len(elems)+1 of them.
type node struct {
	elems    []core.ElementID
	parent   int
	children []int
}

func (n *node) leaf() bool { return len(n.children) == 0 }

// Index is the ordered index of one feature.
type Index struct {
	feature string
	store   *core.Store

	nodes []*node
	root  int

	head, tail core.ElementID
	size       int
	numeric    bool
}

// New returns an empty index for feature whose elements are allocated in store.
func New(feature string, store *core.Store) *Index {
	return &Index{
		feature: feature,
		store:   store,
		nodes:   []*node{{parent: noSlot}},
		root:    0,
		head:    core.NoElement,
		tail:    core.NoElement,
	}
}

// Feature returns the feature name of the index.
func (ix *Index) Feature() string { return ix.feature }

// Len returns the number of distinct keys.
func (ix *Index) Len() int { return ix.size }

// Numeric reports whether the index holds numeric keys. It is false for an
// empty index.
func (ix *Index) Numeric() bool { return ix.size > 0 && ix.numeric }

// Accepts reports whether key belongs to the family of the index.
func (ix *Index) Accepts(key core.Key) bool {
	if !key.Valid() {
		return false
	}
	return ix.size == 0 || key.Numeric() == ix.numeric
}

func (ix *Index) key(id core.ElementID) core.Key {
	return ix.store.Element(id).Key
}

// Search returns the element holding key. ok is false when key is absent.
func (ix *Index) Search(key core.Key) (id core.ElementID, ok bool) {
	if ix.size == 0 || !ix.Accepts(key) {
		return core.NoElement, false
	}
	n := ix.nodes[ix.root]
	for {
		for _, e := range n.elems {
			if ix.key(e).Equal(key) {
				return e, true
			}
		}
		if n.leaf() {
			return core.NoElement, false
		}
		n = ix.nodes[n.children[ix.childFor(n, key)]]
	}
}

// childFor picks the child slot to descend into: first when key is below the
// lowest element, last when above the highest, otherwise the middle one.
func (ix *Index) childFor(n *node, key core.Key) int {
	switch {
	case key.Less(ix.key(n.elems[0])):
		return 0
	case ix.key(n.elems[len(n.elems)-1]).Less(key):
		return len(n.children) - 1
	default:
		return 1
	}
}

// Insert adds key to the index. A known key only has its duplicate count
// incremented; a new key gets a fresh element, is threaded into the chain
// and the tree is rebalanced. The element handle is returned in both cases.
func (ix *Index) Insert(key core.Key) (core.ElementID, error) {
	if !key.Valid() {
		return core.NoElement, &core.SchemaError{Column: ix.feature, Msg: "missing key"}
	}
	if f, ok := key.Float64(); ok && !core.Finite(f) {
		return core.NoElement, &core.SchemaError{Column: ix.feature, Msg: fmt.Sprintf("non-finite key %s", key)}
	}
	if !ix.Accepts(key) {
		return core.NoElement, &core.SchemaError{
			Column: ix.feature,
			Msg:    fmt.Sprintf("key %s does not match the index key family", key),
		}
	}

	// 1. Descend to the leaf, stopping early on an equal key.
	slot := ix.root
	for {
		n := ix.nodes[slot]
		for _, e := range n.elems {
			if el := ix.store.Element(e); el.Key.Equal(key) {
				el.Duplicates++
				return e, nil
			}
		}
		if n.leaf() {
			break
		}
		slot = n.children[ix.childFor(n, key)]
	}

	// 2. New element: thread it, then settle it in the leaf.
	id := ix.store.NewElement(ix.feature, key)
	if ix.size == 0 {
		ix.numeric = key.Numeric()
	}
	ix.thread(id)
	ix.size++
	ix.insertSorted(ix.nodes[slot], id)

	// 3. Resolve overfull nodes bottom-up.
	for slot != noSlot && len(ix.nodes[slot].elems) > 2 {
		parent, err := ix.split(slot)
		if err != nil {
			return core.NoElement, err
		}
		slot = parent
	}

	// 4. Refresh transition weights along the whole chain.
	ix.fixWeights()

	return id, nil
}

// insertSorted places id into n.elems keeping ascending order.
func (ix *Index) insertSorted(n *node, id core.ElementID) {
	k := ix.key(id)
	pos := len(n.elems)
	for i, e := range n.elems {
		if k.Less(ix.key(e)) {
			pos = i
			break
		}
	}
	n.elems = append(n.elems, core.NoElement)
	copy(n.elems[pos+1:], n.elems[pos:])
	n.elems[pos] = id
}

func (ix *Index) newNode(parent int) int {
	ix.nodes = append(ix.nodes, &node{parent: parent})
	return len(ix.nodes) - 1
}

// split resolves a node holding exactly 3 elements: the middle one moves to
// the parent and the node becomes two single-element siblings. It returns the
// parent slot so the caller can cascade.
func (ix *Index) split(slot int) (int, error) {
	n := ix.nodes[slot]
	if len(n.elems) != 3 {
		return noSlot, &core.StructuralError{
			Feature: ix.feature,
			Op:      "split",
			Msg:     fmt.Sprintf("node holds %d elements, want 3", len(n.elems)),
		}
	}
	if !n.leaf() && len(n.children) != 4 {
		return noSlot, &core.StructuralError{
			Feature: ix.feature,
			Op:      "split",
			Msg:     fmt.Sprintf("node holds %d children, want 4", len(n.children)),
		}
	}
	left, middle, right := n.elems[0], n.elems[1], n.elems[2]

	// New root when splitting the old one.
	if n.parent == noSlot {
		root := ix.newNode(noSlot)
		ix.nodes[root].children = []int{slot}
		n.parent = root
		ix.root = root
	}
	parent := ix.nodes[n.parent]
	ix.insertSorted(parent, middle)

	// Right sibling takes the upper half of the children.
	sib := ix.newNode(n.parent)
	sibling := ix.nodes[sib]
	sibling.elems = []core.ElementID{right}
	if !n.leaf() {
		cut := (len(n.children) + 1) / 2
		sibling.children = append([]int(nil), n.children[cut:]...)
		for _, c := range sibling.children {
			ix.nodes[c].parent = sib
		}
		n.children = append([]int(nil), n.children[:cut]...)
	}
	n.elems = []core.ElementID{left}

	// Sibling goes right after the split node among the parent's children.
	pos := -1
	for i, c := range parent.children {
		if c == slot {
			pos = i
			break
		}
	}
	if pos < 0 {
		return noSlot, &core.StructuralError{Feature: ix.feature, Op: "split", Msg: "node missing from its parent"}
	}
	parent.children = append(parent.children, 0)
	copy(parent.children[pos+2:], parent.children[pos+1:])
	parent.children[pos+1] = sib

	return n.parent, nil
}

// thread splices id into the ascending chain before the first element whose
// key is >= its own, or at the tail.
func (ix *Index) thread(id core.ElementID) {
	el := ix.store.Element(id)
	if ix.head == core.NoElement {
		ix.head, ix.tail = id, id
		return
	}
	cur := ix.head
	for cur != core.NoElement && ix.key(cur).Less(el.Key) {
		cur = ix.store.Element(cur).Next
	}
	if cur == core.NoElement {
		last := ix.store.Element(ix.tail)
		last.Next = id
		el.Prev = ix.tail
		ix.tail = id
		return
	}
	next := ix.store.Element(cur)
	el.Prev = next.Prev
	el.Next = cur
	if next.Prev != core.NoElement {
		ix.store.Element(next.Prev).Next = id
	} else {
		ix.head = id
	}
	next.Prev = id
}

// fixWeights recomputes every transition weight of the chain.
func (ix *Index) fixWeights() {
	if ix.head == core.NoElement {
		return
	}
	lo, _ := ix.key(ix.head).Float64()
	hi, _ := ix.key(ix.tail).Float64()
	span := hi - lo

	for cur := ix.head; cur != core.NoElement; {
		el := ix.store.Element(cur)
		if el.Prev == core.NoElement {
			el.PrevWeight = 0
		}
		if el.Next == core.NoElement {
			el.NextWeight = 0
			break
		}
		next := ix.store.Element(el.Next)
		w := 0.0
		if ix.numeric && span > 0 {
			a, _ := el.Key.Float64()
			b, _ := next.Key.Float64()
			w = 1 - (b-a)/span
		}
		el.NextWeight = w
		next.PrevWeight = w
		cur = el.Next
	}
}

// Min returns the element with the smallest key.
func (ix *Index) Min() (core.ElementID, bool) {
	if ix.size == 0 {
		return core.NoElement, false
	}
	n := ix.nodes[ix.root]
	for !n.leaf() {
		n = ix.nodes[n.children[0]]
	}
	return n.elems[0], true
}

// Max returns the element with the largest key.
func (ix *Index) Max() (core.ElementID, bool) {
	if ix.size == 0 {
		return core.NoElement, false
	}
	n := ix.nodes[ix.root]
	for !n.leaf() {
		n = ix.nodes[n.children[len(n.children)-1]]
	}
	return n.elems[len(n.elems)-1], true
}

// Elements returns every element in chain (ascending) order.
func (ix *Index) Elements() []core.ElementID {
	out := make([]core.ElementID, 0, ix.size)
	for cur := ix.head; cur != core.NoElement; cur = ix.store.Element(cur).Next {
		out = append(out, cur)
	}
	return out
}

// Keys returns every key in ascending order.
func (ix *Index) Keys() []core.Key {
	out := make([]core.Key, 0, ix.size)
	for cur := ix.head; cur != core.NoElement; cur = ix.store.Element(cur).Next {
		out = append(out, ix.key(cur))
	}
	return out
}

// Depth returns the number of tree levels; 0 for an empty index.
func (ix *Index) Depth() int {
	if ix.size == 0 {
		return 0
	}
	d := 1
	for n := ix.nodes[ix.root]; !n.leaf(); n = ix.nodes[n.children[0]] {
		d++
	}
	return d
}
