package signal

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-sigproc/dsp/spectrum"
)

// TimeDomain returns the time axis and the real part of the normalized
// inverse transform of the spectrum.
//
// The axis holds n evenly spaced points over [0, duration] inclusive. The
// view is recomputed on every call; mutating the signal afterwards does not
// affect previously returned slices.
func (s *Signal) TimeDomain() (times, samples []float64, err error) {
	n := len(s.spectrum)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("signal: time-domain plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, s.spectrum); err != nil {
		return nil, nil, fmt.Errorf("signal: inverse transform: %w", err)
	}

	times = make([]float64, n)
	samples = make([]float64, n)

	step := 0.0
	if n > 1 {
		step = s.duration / float64(n-1)
	}
	for i, c := range out {
		times[i] = float64(i) * step
		samples[i] = real(c)
	}
	return times, samples, nil
}

// FreqDomain returns the single-sided frequency view: the frequency axis
// from 0 to Nyquist, the unilateral magnitudes, and the phases in degrees.
//
// Magnitudes are normalized so that a component written with SetFreq reads
// back with the amplitude that was requested.
func (s *Signal) FreqDomain() (freqs, mags, phases []float64) {
	return spectrum.SingleSided(s.spectrum, s.sampleRate)
}
