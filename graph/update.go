package graph

import "github.com/katalvlaran/magn/core"

// normalize min-max scales xs into [0, 1]. Equal values all map to 0 and an
// empty input yields nil.
func normalize(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	out := make([]float64, len(xs))
	span := hi - lo
	if span == 0 {
		return out
	}
	for i, x := range xs {
		out[i] = (x - lo) / span
	}
	return out
}

// categoricalDeltas is the error of each neuron against a text target:
// 0 on an equal key, 1 otherwise, then normalized.
func categoricalDeltas(target core.Key, neurons []core.Key) []float64 {
	raw := make([]float64, len(neurons))
	for i, n := range neurons {
		if !n.Equal(target) {
			raw[i] = 1
		}
	}
	return normalize(raw)
}

// numericDeltas is target minus neuron for numeric neurons and 0 for text
// neurons, then normalized.
func numericDeltas(target core.Key, neurons []core.Key) []float64 {
	t, _ := target.Float64()
	raw := make([]float64, len(neurons))
	for i, n := range neurons {
		if v, ok := n.Float64(); ok {
			raw[i] = t - v
		}
	}
	return normalize(raw)
}

// deltas picks the rule matching the target's key family.
func deltas(target core.Key, neurons []core.Key) []float64 {
	if target.Numeric() {
		return numericDeltas(target, neurons)
	}
	return categoricalDeltas(target, neurons)
}

// updateFactor is the priority multiplier for a node on a path with
// normalized stimulation s whose neuron has normalized delta d.
func updateFactor(lr, d, s float64) float64 {
	if d == 0 {
		return 1 + lr*s
	}
	return 1 - lr*d*s
}
