// Package rftn defines the receiver-function trace model consumed by the
// stacking engine: amplitude samples on a uniform time grid plus the scalar
// metadata (begin time, sample interval, ray parameter) the travel-time
// predictions need. Waveform loading, deconvolution, and alignment are the
// job of upstream collaborators; this package only validates and carries
// their output.
package rftn
