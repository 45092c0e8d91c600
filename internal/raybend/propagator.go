package raybend

import (
	"math"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Propagator advances a ray through an index field in fixed-size
// spatial steps. It holds read-only configuration only, so a single
// value can trace any number of independent paths.
type Propagator struct {
	Field        IndexField
	StepDistance Real
}

// StepResult is the outcome of resolving a single integration step.
type StepResult struct {
	IoROut  Real
	Tangent geom.Vector
	Change  DirChange
}

// NextStep resolves one integration step. The outgoing index depends
// on where the refracted ray exits the step, which depends on the
// outgoing tangent, which depends on the outgoing index; the loop
// solves that circularity by fixed-point iteration: probe half a step
// along the current tangent candidate, sample the index there, refract
// the incoming tangent against it, repeat until the tangent settles.
func (pr Propagator) NextStep(tIn geom.Vector, iorIn Real, loc geom.Vector) StepResult {
	grad := pr.Field.GradientAt(loc, pr.StepDistance)
	half := 0.5 * pr.StepDistance

	if grad.Len2() < math.SmallestNonzeroFloat64 {
		// Locally uniform medium: no refraction, just predict the
		// index half a step ahead.
		out, ok := pr.Field.ValueAt(loc.Add(tIn.Mul(half)))
		if !ok {
			return StepResult{noIoR(), tIn, Stopped}
		}
		return StepResult{out, tIn, Unaltered}
	}

	iorOut := noIoR()
	tangent := tIn
	kind := Unset
	reflected := false
	for i := 0; i < maxResolveIterations; i++ {
		probeDir := tangent
		if reflected {
			// A reflected ray exits on the entry side of the
			// interface, along the gradient rather than the tangent.
			probeDir = grad.Norm()
		}
		out, ok := pr.Field.ValueAt(loc.Add(probeDir.Mul(half)))
		if !ok {
			out = noIoR()
		}
		iorOut = out
		if reflected {
			// This pass only re-resolved the exit index on the entry
			// side; the mirrored tangent stands.
			break
		}

		next, k := NextTangent(tIn, iorIn, grad, iorOut)
		if k == Stopped {
			return StepResult{iorOut, tIn, Stopped}
		}
		kind = k
		if k == Reflected {
			reflected = true
			tangent = next
			continue
		}
		diff := next.Sub(tangent)
		tangent = next
		if diff.Len2() <= convergenceTol {
			break
		}
		if i == maxResolveIterations-1 {
			DebugLogOnce("step at %+v did not settle within %d iterations", loc, maxResolveIterations)
		}
	}
	// Non-convergence after the cap is a silent approximation: the
	// last computed values stand.
	if !hasIoR(iorOut) {
		kind = Stopped
	}
	return StepResult{iorOut, tangent, kind}
}

// TracePath runs the trace loop until the consumer reports no
// remaining capacity or the field stops the ray. A non-positive or NaN
// step distance makes the whole trace a no-op.
func (pr Propagator) TracePath(p *Path) {
	if !(pr.StepDistance > 0) {
		return
	}
	tangent := p.Start.Tangent
	loc := p.Start.Point

	// Half-step lookback so the first forward step has a defined
	// incoming index.
	iorPrev, ok := pr.Field.ValueAt(loc.Sub(tangent.Mul(0.5 * pr.StepDistance)))
	if !ok {
		iorPrev = noIoR()
	}
	for p.Size() < p.Capacity() {
		st := pr.NextStep(tangent, iorPrev, loc)
		if st.Change == Stopped {
			break
		}
		next := loc.Add(st.Tangent.Mul(pr.StepDistance))
		p.EmplaceCandidateNode(Node{
			TangentIn:  tangent,
			IoRIn:      iorPrev,
			Location:   loc,
			IoROut:     st.IoROut,
			TangentOut: st.Tangent,
			Change:     st.Change,
		})
		tangent, loc, iorPrev = st.Tangent, next, st.IoROut
	}
	DebugLog("traced %d nodes from %+v", p.Size(), p.Start.Point)
}
