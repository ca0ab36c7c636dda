package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magn/bfs"
	"github.com/katalvlaran/magn/core"
)

// fixture is a two-table graph:
//
//	score=1.5 ─ r0 ─ genre=rock ─ r2 ─ score=9.0
//	            │                 │
//	            r1 ── year=2020 ── r3
type fixture struct {
	s              *core.Store
	rock, s15, s90 core.ElementID
	year           core.ElementID
	r0, r1, r2, r3 core.RecordID
}

func newFixture() fixture {
	s := core.NewStore()
	f := fixture{s: s}
	f.rock = s.NewElement("genre", core.Text("rock"))
	f.s15 = s.NewElement("score", core.Float(1.5))
	f.s90 = s.NewElement("score", core.Float(9.0))
	f.year = s.NewElement("year", core.Int(2020))
	f.r0, f.r1, f.r2, f.r3 = s.NewRecord("reviews"), s.NewRecord("years"), s.NewRecord("reviews"), s.NewRecord("years")

	s.Attach(f.rock, f.r0)
	s.Attach(f.s15, f.r0)
	s.Attach(f.rock, f.r2)
	s.Attach(f.s90, f.r2)
	s.Attach(f.year, f.r1)
	s.Attach(f.year, f.r3)
	s.Link(f.r0, f.r1)
	s.Link(f.r2, f.r3)
	return f
}

func (f fixture) feature(name string) bfs.Accept {
	return func(id core.ElementID) bool { return f.s.Element(id).Feature == name }
}

// TestPaths_Errors verifies that invalid inputs and options are rejected.
func TestPaths_Errors(t *testing.T) {
	f := newFixture()
	start := core.ElementRef(f.rock)

	_, err := bfs.Paths(nil, start, f.feature("score"))
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Paths(f.s, start, nil)
	assert.ErrorIs(t, err, bfs.ErrAcceptNil)
	_, err = bfs.Paths(f.s, core.Node{}, f.feature("score"))
	assert.ErrorIs(t, err, bfs.ErrStartInvalid)
	_, err = bfs.Paths(f.s, start, f.feature("score"), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Paths(f.s, start, f.feature("score"), bfs.WithMaxPaths(-3))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestPaths_FeatureTarget finds both scores reachable from the shared genre.
func TestPaths_FeatureTarget(t *testing.T) {
	f := newFixture()
	paths, err := bfs.Paths(f.s, core.ElementRef(f.rock), f.feature("score"))
	require.NoError(t, err)

	want := []bfs.Path{
		{core.ElementRef(f.rock), core.RecordRef(f.r0), core.ElementRef(f.s15)},
		{core.ElementRef(f.rock), core.RecordRef(f.r2), core.ElementRef(f.s90)},
	}
	assert.Equal(t, want, paths)
}

// TestPaths_ThroughForeignKeys follows record↔record links.
func TestPaths_ThroughForeignKeys(t *testing.T) {
	f := newFixture()
	paths, err := bfs.Paths(f.s, core.ElementRef(f.s15), f.feature("year"))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t,
		bfs.Path{core.ElementRef(f.s15), core.RecordRef(f.r0), core.RecordRef(f.r1), core.ElementRef(f.year)},
		paths[0],
	)
}

// TestPaths_ExactElement targets one element rather than a feature.
func TestPaths_ExactElement(t *testing.T) {
	f := newFixture()
	target := f.s90
	paths, err := bfs.Paths(f.s, core.ElementRef(f.rock), func(id core.ElementID) bool { return id == target })
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, core.ElementRef(f.s90), paths[0].Last())
}

// TestPaths_ValueTraversal enters intermediate elements when enabled and
// keeps branches that share nodes.
func TestPaths_ValueTraversal(t *testing.T) {
	f := newFixture()

	// Without traversal: year → r1 → r0 → 1.5 and year → r3 → r2 → 9.0.
	plain, err := bfs.Paths(f.s, core.ElementRef(f.year), f.feature("score"))
	require.NoError(t, err)
	assert.Len(t, plain, 2)

	// With traversal, genre=rock becomes a bridge between the two reviews.
	wide, err := bfs.Paths(f.s, core.ElementRef(f.year), f.feature("score"), bfs.WithValueTraversal(true))
	require.NoError(t, err)
	assert.Len(t, wide, 4)
	for _, p := range wide {
		seen := map[core.Node]bool{}
		for _, n := range p {
			assert.False(t, seen[n], "node %v repeats in %v", n, p)
			seen[n] = true
		}
	}
}

// TestPaths_Limits covers MaxDepth and MaxPaths.
func TestPaths_Limits(t *testing.T) {
	f := newFixture()

	shallow, err := bfs.Paths(f.s, core.ElementRef(f.s15), f.feature("year"), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Empty(t, shallow)

	one, err := bfs.Paths(f.s, core.ElementRef(f.rock), f.feature("score"), bfs.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

// TestPaths_StartAccepted returns the single-node path.
func TestPaths_StartAccepted(t *testing.T) {
	f := newFixture()
	paths, err := bfs.Paths(f.s, core.ElementRef(f.s15), f.feature("score"))
	require.NoError(t, err)
	assert.Equal(t, []bfs.Path{{core.ElementRef(f.s15)}}, paths)
}

// TestPaths_FilterAndHooks prunes an edge and observes enqueue/visit calls.
func TestPaths_FilterAndHooks(t *testing.T) {
	f := newFixture()
	var enq, vis int
	paths, err := bfs.Paths(f.s, core.ElementRef(f.rock), f.feature("score"),
		bfs.WithFilterNeighbor(func(curr, nbr core.Node) bool { return nbr != core.RecordRef(f.r2) }),
		bfs.WithOnEnqueue(func(core.Node, int) { enq++ }),
		bfs.WithOnVisit(func(core.Node, int) error { vis++; return nil }),
	)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.Equal(t, enq, vis)
	assert.Positive(t, enq)

	boom := errors.New("boom")
	_, err = bfs.Paths(f.s, core.ElementRef(f.rock), f.feature("score"),
		bfs.WithOnVisit(func(core.Node, int) error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}

// TestPaths_Cancelled stops on a cancelled context.
func TestPaths_Cancelled(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Paths(f.s, core.ElementRef(f.rock), f.feature("score"), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
