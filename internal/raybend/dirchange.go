package raybend

// DirChange classifies how one propagation step changed the ray tangent.
type DirChange uint8

const (
	Unset     DirChange = iota // no step resolved yet
	Unaltered                  // zero local gradient, tangent kept
	Converged                  // refracted toward the gradient (into the denser side)
	Diverged                   // refracted away from the gradient
	Reflected                  // total internal reflection
	Stopped                    // ray left the field's valid domain
	Started                    // reversal dual of Stopped
)

// Reversed maps the change onto the one observed when the same path is
// traced backward. Converged/Diverged and Stopped/Started are duals;
// the rest are their own reverse.
func (d DirChange) Reversed() DirChange {
	switch d {
	case Converged:
		return Diverged
	case Diverged:
		return Converged
	case Stopped:
		return Started
	case Started:
		return Stopped
	}
	return d
}

func (d DirChange) String() string {
	switch d {
	case Unset:
		return "unset"
	case Unaltered:
		return "unaltered"
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	case Reflected:
		return "reflected"
	case Stopped:
		return "stopped"
	case Started:
		return "started"
	}
	return "unknown"
}
