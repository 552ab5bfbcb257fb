package shape

// Tolerance policy for the float64 code path. Every package in this module
// compares against these constants; there is deliberately no second copy
// of an epsilon anywhere else.
const (
	// Epsilon bounds dot-product and projection-gap comparisons.
	Epsilon = 1e-6

	// EpsilonSq bounds squared lengths. A vector with LenSqr below this
	// is treated as the zero vector.
	EpsilonSq = 1e-12
)
