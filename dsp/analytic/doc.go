// Package analytic computes discrete analytic signals and the instantaneous
// amplitude and phase derived from them.
//
// The analytic signal z of a real signal x is x + i*H(x), where H is the
// Hilbert transform. Its magnitude is the signal envelope and its angle the
// instantaneous phase, the quantity phase-weighted stacking coheres on.
//
// # Usage
//
//	phase, err := analytic.Phase(samples)
//	env, err := analytic.Envelope(samples)
package analytic
