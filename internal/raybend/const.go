package raybend

// Fixed numeric policy of the propagation core.
const (
	// maxResolveIterations caps the per-step fixed-point solve for the
	// outgoing index of refraction.
	maxResolveIterations = 10
	// convergenceTol is machine epsilon, applied to the squared
	// magnitude of the tangent change between iterations.
	convergenceTol = 0x1p-52
	// capacityMargin pads the straight-line node-count estimate of a
	// targeted path to leave room for curvature.
	capacityMargin = 1.125
)
