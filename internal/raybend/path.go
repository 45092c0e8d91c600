package raybend

import (
	"math"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Path accumulates a save-distance-filtered sequence of trace nodes
// and owns the stopping heuristic for targeted traces. It is written
// only by one TracePath call and read-only afterwards.
type Path struct {
	Start            Start
	SaveStepDistance Real
	Nodes            []Node

	reserved  int
	target    geom.Vector
	hasTarget bool
	// Chord distance to the target at the previous and current
	// candidate node; NaN until the first candidates arrive.
	prevTargetDist Real
	currTargetDist Real
}

// NewPath builds an open-ended path: no target point, so termination
// is entirely field-driven. Call Reserve to bound the node count;
// without it the path accepts unbounded growth.
func NewPath(start Start, saveStep Real) *Path {
	return &Path{
		Start:            start,
		SaveStepDistance: saveStep,
		prevTargetDist:   math.NaN(),
		currTargetDist:   math.NaN(),
	}
}

// NewPathToward builds a path aimed at a target point: the trace stops
// at closest approach, and capacity is pre-sized from the straight-line
// distance with a margin for curvature.
func NewPathToward(start Start, saveStep Real, target geom.Vector) *Path {
	p := NewPath(start, saveStep)
	p.target = target
	p.hasTarget = true
	if saveStep > 0 {
		p.Reserve(int(math.Ceil(capacityMargin * target.Sub(start.Point).Len() / saveStep)))
	}
	return p
}

// Reserve bounds the number of retained nodes and pre-allocates them.
func (p *Path) Reserve(n int) {
	if n <= 0 {
		return
	}
	p.reserved = n
	if cap(p.Nodes) < n {
		nodes := make([]Node, len(p.Nodes), n)
		copy(nodes, p.Nodes)
		p.Nodes = nodes
	}
}

func (p *Path) Size() int { return len(p.Nodes) }

// Capacity reports the consumer's remaining appetite: the reserved
// node count while the heuristic wants to keep going, zero afterwards
// (which terminates the propagator's loop).
func (p *Path) Capacity() int {
	if !p.keepGoing() {
		return 0
	}
	if p.reserved == 0 {
		return math.MaxInt
	}
	return p.reserved
}

// keepGoing turns false once a targeted trace starts receding from the
// target point: a local closest-approach detector, assuming a path
// that approaches and then recedes monotonically.
func (p *Path) keepGoing() bool {
	if !p.hasTarget {
		return true
	}
	if math.IsNaN(p.prevTargetDist) || math.IsNaN(p.currTargetDist) {
		return true
	}
	return p.prevTargetDist >= p.currTargetDist
}

// EmplaceCandidateNode offers one node to the path. The node is
// retained when it is the very first, when its chord distance from the
// last retained node exceeds the save distance, or when it is the one
// that flipped keepGoing, so the terminal node is never lost to the
// distance filter.
func (p *Path) EmplaceCandidateNode(n Node) {
	wasGoing := p.keepGoing()
	if p.hasTarget {
		p.prevTargetDist = p.currTargetDist
		p.currTargetDist = n.Location.Sub(p.target).Len()
	}
	turned := wasGoing && !p.keepGoing()

	if len(p.Nodes) == 0 {
		p.Nodes = append(p.Nodes, n)
		return
	}
	last := p.Nodes[len(p.Nodes)-1]
	if n.Location.Sub(last.Location).Len() > p.SaveStepDistance || turned {
		p.Nodes = append(p.Nodes, n)
	}
}

// TotalDeviation returns the angle in radians between the first
// incoming and the last outgoing tangent of the recorded path, via the
// logarithm of the rotor connecting them.
func (p *Path) TotalDeviation() Real {
	if len(p.Nodes) == 0 {
		return 0
	}
	first := p.Nodes[0].TangentIn
	last := p.Nodes[len(p.Nodes)-1].TangentOut
	return 2 * geom.RotorBetween(first, last).Log().Len()
}
