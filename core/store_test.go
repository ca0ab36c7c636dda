package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magn/core"
)

// TestStore_AttachIsBidirectional verifies element↔record links and dedup.
func TestStore_AttachIsBidirectional(t *testing.T) {
	s := core.NewStore()
	e := s.NewElement("genre", core.Text("rock"))
	r := s.NewRecord("reviews")

	s.Attach(e, r)
	s.Attach(e, r) // second attach is a no-op

	assert.Equal(t, []core.RecordID{r}, s.Element(e).Records())
	assert.Equal(t, []core.ElementID{e}, s.Record(r).Elements())
	assert.True(t, s.Element(e).HasRecord(r))
}

// TestStore_Link covers record↔record links and ignored self links.
func TestStore_Link(t *testing.T) {
	s := core.NewStore()
	a := s.NewRecord("reviews")
	b := s.NewRecord("years")

	s.Link(a, b)
	s.Link(b, a)
	s.Link(a, a)

	assert.Equal(t, []core.RecordID{b}, s.Record(a).Links())
	assert.Equal(t, []core.RecordID{a}, s.Record(b).Links())
}

// TestStore_Neighbors checks the per-variant neighbor rules.
func TestStore_Neighbors(t *testing.T) {
	s := core.NewStore()
	id := s.NewElement("id", core.Int(0))
	genre := s.NewElement("genre", core.Text("rock"))
	r0 := s.NewRecord("reviews")
	r1 := s.NewRecord("years")
	s.Attach(id, r0)
	s.Attach(genre, r0)
	s.Link(r0, r1)

	assert.Equal(t, []core.Node{core.RecordRef(r0)}, s.Neighbors(core.ElementRef(genre)))
	assert.Equal(t,
		[]core.Node{core.ElementRef(id), core.ElementRef(genre), core.RecordRef(r1)},
		s.Neighbors(core.RecordRef(r0)),
	)
	assert.Nil(t, s.Neighbors(core.Node{}))
}

// TestStore_PriorityScale multiplies priorities of both node kinds.
func TestStore_PriorityScale(t *testing.T) {
	s := core.NewStore()
	e := core.ElementRef(s.NewElement("score", core.Float(1.5)))
	r := core.RecordRef(s.NewRecord("reviews"))

	require.Equal(t, core.InitialPriority, s.Priority(e))
	s.Scale(e, 1.5)
	s.Scale(r, 0.5)
	assert.InDelta(t, 1.5, s.Priority(e), 1e-12)
	assert.InDelta(t, 0.5, s.Priority(r), 1e-12)
	assert.Equal(t, "score=1.5", s.Describe(e))
	assert.Equal(t, "reviews#0", s.Describe(r))
}

// TestNode_TaggedUnion exercises the accessors of both variants.
func TestNode_TaggedUnion(t *testing.T) {
	n := core.ElementRef(4)
	id, ok := n.Element()
	assert.True(t, ok)
	assert.Equal(t, core.ElementID(4), id)
	_, ok = n.Record()
	assert.False(t, ok)
	assert.Equal(t, "e4", n.String())
	assert.Equal(t, "r2", core.RecordRef(2).String())
}
