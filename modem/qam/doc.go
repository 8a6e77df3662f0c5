// Package qam builds carrier-modulated waveforms from a symbol mapping.
//
// A Scheme maps fixed-width bit groups to (amplitude, phase) symbols and
// drives the dsp/signal spectrum model once per symbol interval, writing the
// carrier with the symbol's amplitude and phase and concatenating the
// resulting waveforms. BPSK and QPSK are provided as ready-made mappings;
// arbitrary QAM constellations are plain map literals.
package qam
