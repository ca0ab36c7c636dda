package index

import (
	"fmt"
	"math"

	"github.com/katalvlaran/magn/core"
)

// Check walks the tree and the chain and reports the first broken invariant:
//
//   - every node holds 1 or 2 elements (an empty root only for an empty index)
//   - internal nodes hold len(elems)+1 children whose parent slot points back
//   - all leaves sit at the same depth
//   - in-order traversal is strictly ascending and visits Len() elements
//   - the chain visits the same elements in the same order, with consistent
//     back links
//   - transition weights lie in [0, 1] and match 1 − (b − a)/(max − min) for
//     numeric indexes, 0 for text ones
func (ix *Index) Check() error {
	if ix.size == 0 {
		if len(ix.nodes[ix.root].elems) != 0 || ix.head != core.NoElement {
			return ix.violation("empty index holds elements")
		}
		return nil
	}
	if ix.nodes[ix.root].parent != noSlot {
		return ix.violation("root has a parent")
	}

	var (
		order     []core.ElementID
		leafDepth = -1
	)
	var walk func(slot, depth int) error
	walk = func(slot, depth int) error {
		n := ix.nodes[slot]
		if len(n.elems) < 1 || len(n.elems) > 2 {
			return ix.violation(fmt.Sprintf("node %d holds %d elements", slot, len(n.elems)))
		}
		if n.leaf() {
			if leafDepth < 0 {
				leafDepth = depth
			} else if leafDepth != depth {
				return ix.violation(fmt.Sprintf("leaf %d at depth %d, want %d", slot, depth, leafDepth))
			}
			order = append(order, n.elems...)
			return nil
		}
		if len(n.children) != len(n.elems)+1 {
			return ix.violation(fmt.Sprintf("node %d holds %d elements and %d children", slot, len(n.elems), len(n.children)))
		}
		for i, c := range n.children {
			if ix.nodes[c].parent != slot {
				return ix.violation(fmt.Sprintf("child %d of node %d points to parent %d", c, slot, ix.nodes[c].parent))
			}
			if err := walk(c, depth+1); err != nil {
				return err
			}
			if i < len(n.elems) {
				order = append(order, n.elems[i])
			}
		}
		return nil
	}
	if err := walk(ix.root, 0); err != nil {
		return err
	}

	if len(order) != ix.size {
		return ix.violation(fmt.Sprintf("tree holds %d elements, index reports %d", len(order), ix.size))
	}
	for i := 1; i < len(order); i++ {
		if !ix.key(order[i-1]).Less(ix.key(order[i])) {
			return ix.violation(fmt.Sprintf("keys %s and %s out of order", ix.key(order[i-1]), ix.key(order[i])))
		}
	}

	chain := ix.Elements()
	if len(chain) != len(order) {
		return ix.violation(fmt.Sprintf("chain holds %d elements, tree %d", len(chain), len(order)))
	}
	for i, id := range chain {
		if id != order[i] {
			return ix.violation(fmt.Sprintf("chain position %d differs from tree order", i))
		}
		el := ix.store.Element(id)
		if el.Feature != ix.feature {
			return ix.violation(fmt.Sprintf("element %d belongs to feature %q", id, el.Feature))
		}
		if i > 0 && el.Prev != chain[i-1] {
			return ix.violation(fmt.Sprintf("element %d has a stale back link", id))
		}
	}
	if ix.tail != chain[len(chain)-1] {
		return ix.violation("tail does not end the chain")
	}

	return ix.checkWeights(chain)
}

func (ix *Index) checkWeights(chain []core.ElementID) error {
	const eps = 1e-9
	lo, _ := ix.key(chain[0]).Float64()
	hi, _ := ix.key(chain[len(chain)-1]).Float64()
	for i := 0; i+1 < len(chain); i++ {
		a, b := ix.store.Element(chain[i]), ix.store.Element(chain[i+1])
		want := 0.0
		if ix.numeric {
			x, _ := a.Key.Float64()
			y, _ := b.Key.Float64()
			want = 1 - (y-x)/(hi-lo)
		}
		if !(a.NextWeight >= 0 && a.NextWeight <= 1) || !(math.Abs(a.NextWeight-want) <= eps) {
			return ix.violation(fmt.Sprintf("weight %s→%s is %g, want %g", a.Key, b.Key, a.NextWeight, want))
		}
		if !(math.Abs(b.PrevWeight-a.NextWeight) <= eps) {
			return ix.violation(fmt.Sprintf("weight %s←%s is %g, want %g", a.Key, b.Key, b.PrevWeight, a.NextWeight))
		}
	}
	return nil
}

func (ix *Index) violation(msg string) error {
	return &core.StructuralError{Feature: ix.feature, Op: "check", Msg: msg}
}
