package signal

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// DefaultHarmonicLimit is the square-wave harmonic cutoff in Hz used when no
// positive limit is given.
const DefaultHarmonicLimit = 8000.0

var (
	ErrInvalidDuration   = errors.New("signal: duration must be > 0")
	ErrInvalidSampleRate = errors.New("signal: sample rate must be > 0")
	ErrZeroLength        = errors.New("signal: duration and sample rate yield no samples")
	ErrInvalidFrequency  = errors.New("signal: base frequency must be > 0")
	ErrMixMismatch       = errors.New("signal: mix requires matching length and sample rate")
	ErrNilTimeFunction   = errors.New("signal: nil time function")
)

// Signal holds a fixed-length complex spectrum together with the duration and
// sample rate that define its bin grid.
//
// Bin i represents the frequency i*rate/n for i <= n/2 and its
// negative-frequency image above that. For every i != 0 the model keeps
// spectrum[i] equal to the conjugate of spectrum[n-i], so the inverse
// transform stays real-valued.
type Signal struct {
	duration   float64
	sampleRate float64
	spectrum   []complex128
}

// New creates a silent signal of the given duration in seconds and sample
// rate in Hz. The bin count floor(duration*sampleRate) is fixed for the
// lifetime of the signal.
func New(duration, sampleRate float64) (*Signal, error) {
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

	return &Signal{
		duration:   duration,
		sampleRate: sampleRate,
		spectrum:   make([]complex128, n),
	}, nil
}

// Duration returns the signal duration in seconds.
func (s *Signal) Duration() float64 { return s.duration }

// SampleRate returns the sample rate in Hz.
func (s *Signal) SampleRate() float64 { return s.sampleRate }

// Len returns the number of spectrum bins, which equals the number of
// time-domain samples.
func (s *Signal) Len() int { return len(s.spectrum) }

// Bin returns the complex coefficient at bin i.
func (s *Signal) Bin(i int) complex128 { return s.spectrum[i] }

// Spectrum returns a copy of the full complex spectrum.
func (s *Signal) Spectrum() []complex128 {
	out := make([]complex128, len(s.spectrum))
	copy(out, s.spectrum)
	return out
}

// SetFreq writes one sinusoid of the given amplitude and phase shift (in
// degrees) at the given frequency in Hz.
//
// The frequency is quantized to the nearest bin. The written components are
// scaled by the bin count so the time-domain waveform carries the requested
// amplitude, and for nonzero frequencies the energy is split evenly between
// the positive- and negative-frequency mirror bins as a conjugate pair.
//
// A frequency whose bin lies beyond Nyquist wraps around the bin grid and is
// heard as a different frequency. Aliasing is a property of the model, not an
// error.
func (s *Signal) SetFreq(freqHz, amplitude, phaseDeg float64) {
	n := len(s.spectrum)

	index := int(math.Round(freqHz * float64(n) / s.sampleRate))
	index = ((index % n) + n) % n

	re := float64(n) * amplitude * math.Cos(phaseDeg*math.Pi/180)
	im := float64(n) * amplitude * math.Sin(phaseDeg*math.Pi/180)

	if freqHz == 0 {
		// DC occupies a single bin, unhalved and with no mirror
		s.spectrum[index] = complex(re, im)
		return
	}

	re /= 2
	im /= 2
	s.spectrum[index] = complex(re, im)
	s.spectrum[(n-index)%n] = complex(re, -im)
}

// Clear zeroes every bin whose frequency satisfies pred. A nil predicate
// matches all frequencies and resets the signal to silence.
//
// Each bin i is labeled with the non-negative frequency i*rate/n, including
// indices above n/2. Callers that want a symmetric result must supply a
// predicate that matches both a frequency and its mirror label.
func (s *Signal) Clear(pred func(freqHz float64) bool) {
	if pred == nil {
		core.ZeroComplex(s.spectrum)
		return
	}

	n := float64(len(s.spectrum))
	for i := range s.spectrum {
		if pred(float64(i) * s.sampleRate / n) {
			s.spectrum[i] = 0
		}
	}
}

// SquareWave replaces the signal with a band-limited square wave of the given
// base frequency: odd harmonics f, 3f, 5f, ... up to limitHz, each with
// amplitude 1/f and a -90 degree phase shift. A non-positive limitHz selects
// DefaultHarmonicLimit.
//
// The spectrum is untouched when the base frequency is invalid.
func (s *Signal) SquareWave(freqHz, limitHz float64) error {
	if freqHz <= 0 {
		return ErrInvalidFrequency
	}
	if limitHz <= 0 {
		limitHz = DefaultHarmonicLimit
	}

	s.Clear(nil)
	for f := freqHz; f <= limitHz; f += 2 * freqHz {
		s.SetFreq(f, 1/f, -90)
	}
	return nil
}
