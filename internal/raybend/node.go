package raybend

import "github.com/gradientoptics/raybend/internal/geom"

// Node is one recorded sample along a traced path. Immutable once
// produced by the propagator.
type Node struct {
	TangentIn  geom.Vector
	IoRIn      Real
	Location   geom.Vector
	IoROut     Real
	TangentOut geom.Vector
	Change     DirChange
}

// Reversed returns the node observed when the same path is traced
// backward: incoming and outgoing quantities swap, tangents flip, and
// the change kind maps through its reversal rule.
func (n Node) Reversed() Node {
	return Node{
		TangentIn:  n.TangentOut.Neg(),
		IoRIn:      n.IoROut,
		Location:   n.Location,
		IoROut:     n.IoRIn,
		TangentOut: n.TangentIn.Neg(),
		Change:     n.Change.Reversed(),
	}
}
