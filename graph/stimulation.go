package graph

import (
	"github.com/katalvlaran/magn/bfs"
	"github.com/katalvlaran/magn/core"
)

// stimulation scores p as the sum of its edge stimuli. Priorities and
// weights are never negative, so neither is the result.
func stimulation(s *core.Store, p bfs.Path) float64 {
	var sum float64
	for i := 0; i+1 < len(p); i++ {
		sum += edgeStimulus(s, p[i], p[i+1])
	}
	return sum
}

// edgeStimulus scores the traversal u→v.
//
//	element→element  u.priority × transition weight toward v
//	element↔record   element.priority / element.duplicates
//	record→record    u.priority / v.duplicates
func edgeStimulus(s *core.Store, u, v core.Node) float64 {
	ue, uIsElem := u.Element()
	ve, vIsElem := v.Element()
	switch {
	case uIsElem && vIsElem:
		e := s.Element(ue)
		if e.Next == ve {
			return e.Priority * e.NextWeight
		}
		return e.Priority * e.PrevWeight
	case uIsElem:
		e := s.Element(ue)
		return e.Priority * e.Weight()
	case vIsElem:
		e := s.Element(ve)
		return e.Priority * e.Weight()
	default:
		vr, _ := v.Record()
		return s.Priority(u) * s.Record(vr).Weight()
	}
}
