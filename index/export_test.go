package index

// SplitRoot exposes split on the root slot to the external tests.
func (ix *Index) SplitRoot() error {
	_, err := ix.split(ix.root)
	return err
}

// SetHeadWeight overwrites the outgoing weight of the smallest element.
func (ix *Index) SetHeadWeight(w float64) {
	ix.store.Element(ix.head).NextWeight = w
}
