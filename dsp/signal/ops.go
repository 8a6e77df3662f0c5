package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// Copy returns a deep copy of the signal.
func (s *Signal) Copy() *Signal {
	c := &Signal{
		duration:   s.duration,
		sampleRate: s.sampleRate,
		spectrum:   make([]complex128, len(s.spectrum)),
	}
	copy(c.spectrum, s.spectrum)
	return c
}

// Mix adds the spectrum of other into s bin by bin. Both signals must share
// the same bin count and sample rate.
func (s *Signal) Mix(other *Signal) error {
	if other == nil || len(other.spectrum) != len(s.spectrum) || other.sampleRate != s.sampleRate {
		return ErrMixMismatch
	}
	for i, v := range other.spectrum {
		s.spectrum[i] += v
	}
	return nil
}

// ShiftFreq translates the occupied band by offsetHz, rebuilding the
// conjugate mirror for the shifted bins. Components that land below 0 Hz or
// above Nyquist are dropped.
func (s *Signal) ShiftFreq(offsetHz float64) {
	n := len(s.spectrum)
	shift := int(math.Round(offsetHz * float64(n) / s.sampleRate))
	half := n / 2

	next := make([]complex128, n)
	for i := 0; i <= half; i++ {
		j := i + shift
		if j < 0 || j > half {
			continue
		}
		next[j] = s.spectrum[i]
		if j != 0 && n-j != j {
			next[n-j] = cmplx.Conj(s.spectrum[i])
		}
	}
	s.spectrum = next
}

// FromSamples builds a signal from time-domain samples taken at sampleRate.
// The spectrum is the forward transform of the samples; the duration is
// len(samples)/sampleRate.
func FromSamples(sampleRate float64, samples []float64) (*Signal, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	n := len(samples)
	if n < 1 {
		return nil, ErrZeroLength
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("signal: forward plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("signal: forward transform: %w", err)
	}

	return &Signal{
		duration:   float64(n) / sampleRate,
		sampleRate: sampleRate,
		spectrum:   bins,
	}, nil
}

// Sample builds a signal by evaluating f on the uniform sample grid
// t = i/sampleRate and transforming the result.
func Sample(duration, sampleRate float64, f func(t float64) float64) (*Signal, error) {
	if f == nil {
		return nil, ErrNilTimeFunction
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	n := int(duration * sampleRate)
	if n < 1 {
		return nil, ErrZeroLength
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = f(float64(i) / sampleRate)
	}

	s, err := FromSamples(sampleRate, samples)
	if err != nil {
		return nil, err
	}
	s.duration = duration
	return s, nil
}
