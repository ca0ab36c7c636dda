package graph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/magn/core"
	"github.com/katalvlaran/magn/index"
	"github.com/katalvlaran/magn/schema"
)

// Graph is the associative graph: one ordered index per feature, one record
// per source row, and the links between them.
//
// Build and Fit take the write lock; Predict and PredictBatch share the read
// lock. Values returned by Index and Store are live and must not be used
// while a Build or Fit is running.
type Graph struct {
	mu sync.RWMutex

	store    *core.Store
	indexes  map[string]*index.Index
	features []string
	tables   map[string]*builtTable
	order    []string
	opts     Options
}

// builtTable remembers what Build made of one table.
type builtTable struct {
	name        string
	features    []string
	foreignKeys []schema.ForeignKey
	records     []core.RecordID
}

// New returns an empty Graph configured by opts.
func New(opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Graph{
		store:   core.NewStore(),
		indexes: make(map[string]*index.Index),
		tables:  make(map[string]*builtTable),
		opts:    o,
	}, nil
}

// Index returns the index of feature.
func (g *Graph) Index(feature string) (*index.Index, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ix, ok := g.indexes[feature]
	return ix, ok
}

// Features returns every feature name in ascending order.
func (g *Graph) Features() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.features...)
}

// Tables returns the built table names in build order.
func (g *Graph) Tables() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.order...)
}

// Records returns the records created for table, in row order.
func (g *Graph) Records(table string) []core.RecordID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.tables[table]
	if !ok {
		return nil
	}
	return append([]core.RecordID(nil), t.records...)
}

// Store exposes the node store for inspection.
func (g *Graph) Store() *core.Store {
	return g.store
}

// Element returns the element holding key in feature.
func (g *Graph) Element(feature string, key core.Key) (core.ElementID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ix, ok := g.indexes[feature]
	if !ok {
		return core.NoElement, false
	}
	return ix.Search(key)
}

// addFeature registers ix and keeps g.features sorted.
func (g *Graph) addFeature(ix *index.Index) {
	g.indexes[ix.Feature()] = ix
	i := sort.SearchStrings(g.features, ix.Feature())
	g.features = append(g.features, "")
	copy(g.features[i+1:], g.features[i:])
	g.features[i] = ix.Feature()
}
