// Package hkstack implements the H-kappa stacking method of Zhu & Kanamori
// (2001) for estimating Moho depth and average crustal Vp/Vs from teleseismic
// receiver functions.
//
// A stack evaluates a closed-form travel-time model for the Ps, PpPs, and
// PpSs converted phases over a 2-D grid of crustal thickness H and velocity
// ratio kappa, sums the receiver-function amplitudes read at the predicted
// times across many events, and picks the grid cell where the phases add up
// coherently. Optionally the summation is weighted by instantaneous-phase
// coherence (Schimmel & Paulssen, 1997), and the optimum's uncertainty is
// estimated by a parallel nonparametric bootstrap with a bivariate-normal
// confidence ellipse.
//
// # Usage
//
//	ts, err := rftn.NewTraceSet("TA_M54A", traces)
//	res, err := hkstack.Analyze(ctx, ts, hkstack.Config{
//		DepthMin: 30, DepthMax: 50, DepthInc: 0.1,
//		KappaMin: 1.6, KappaMax: 1.9, KappaInc: 0.01,
//		Bootstrap: true,
//	})
//	fmt.Printf("H = %.1f km, Vp/Vs = %.2f\n", res.Depth, res.Kappa)
package hkstack
