// Package interp provides fractional-sample interpolation primitives used
// when reading waveform amplitudes at predicted, generally non-integer,
// sample positions.
//
//   - [Linear2]:       2-point linear interpolation
//   - [Linear2Cmplx]:  the same for complex samples (e.g. phase phasors)
//   - [FracIndex]:     time to (integer index, fractional remainder)
package interp
