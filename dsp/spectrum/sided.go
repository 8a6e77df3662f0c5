package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// SingleSided converts a full conjugate-symmetric spectrum into its
// single-sided view over [0, Nyquist].
//
// The returned slices hold ceil((n+1)/2) points. Magnitudes are normalized by
// the bin count and doubled for every index except DC, so a unilateral
// sinusoid written with amplitude a reads back as a. Phases are in degrees in
// the range (-180, 180].
func SingleSided(bins []complex128, sampleRate float64) (freqs, mags, phases []float64) {
	n := len(bins)
	if n == 0 || sampleRate <= 0 {
		return nil, nil, nil
	}

	m := (n + 2) / 2 // ceil((n+1)/2)
	half := bins[:m]

	freqs = make([]float64, m)
	step := sampleRate / float64(n)
	for i := range freqs {
		freqs[i] = float64(i) * step
	}

	mags = Magnitude(half)
	vecmath.ScaleBlockInPlace(mags, 1/float64(n))
	if m > 1 {
		// compensate for the discarded negative-frequency mirror
		vecmath.ScaleBlockInPlace(mags[1:], 2)
	}

	phases = PhaseDegrees(half)
	return freqs, mags, phases
}
