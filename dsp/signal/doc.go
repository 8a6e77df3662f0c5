// Package signal implements a discrete-spectrum model of a band-limited
// periodic signal.
//
// A Signal owns a fixed-length buffer of complex frequency-domain
// coefficients, one per discrete frequency bin. Components are written with
// SetFreq, which maintains the conjugate symmetry required for a real-valued
// waveform, and the buffer is read back through the TimeDomain and FreqDomain
// views. Views are recomputed on every call and carry no state of their own.
//
// A Signal is not safe for concurrent use. Independent instances may be
// processed in parallel.
package signal
