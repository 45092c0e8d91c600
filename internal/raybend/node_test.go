package raybend

import (
	"testing"

	"github.com/gradientoptics/raybend/internal/geom"
)

func TestNodeReversedTwiceIsIdentity(t *testing.T) {
	n := Node{
		TangentIn:  geom.Vector{X: 0.6, Z: 0.8},
		IoRIn:      1.0,
		Location:   geom.Vector{X: 1, Y: 2, Z: 3},
		IoROut:     1.5,
		TangentOut: geom.Vector{X: 0.38, Z: 0.92},
		Change:     Converged,
	}
	if got := n.Reversed().Reversed(); got != n {
		t.Fatalf("Reversed twice changed the node: %+v", got)
	}
}

func TestNodeReversedSwapsAndFlips(t *testing.T) {
	n := Node{
		TangentIn:  geom.Vector{X: 1},
		IoRIn:      1.0,
		Location:   geom.Vector{X: 5},
		IoROut:     1.5,
		TangentOut: geom.Vector{Y: 1},
		Change:     Diverged,
	}
	r := n.Reversed()
	if r.TangentIn != n.TangentOut.Neg() || r.TangentOut != n.TangentIn.Neg() {
		t.Fatalf("tangents not swapped and negated: %+v", r)
	}
	if r.IoRIn != n.IoROut || r.IoROut != n.IoRIn {
		t.Fatalf("indices not swapped: %+v", r)
	}
	if r.Location != n.Location {
		t.Fatalf("location should be unchanged")
	}
	if r.Change != Converged {
		t.Fatalf("change not mapped through reversal: %s", r.Change)
	}
}
