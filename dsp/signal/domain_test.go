package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

func TestTimeDomainAxis(t *testing.T) {
	s, err := New(2.0, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	times, samples, err := s.TimeDomain()
	if err != nil {
		t.Fatalf("TimeDomain() error = %v", err)
	}
	if len(times) != 8 || len(samples) != 8 {
		t.Fatalf("axis/sample lengths = %d/%d, want 8/8", len(times), len(samples))
	}

	if times[0] != 0 {
		t.Fatalf("times[0] = %v, want 0", times[0])
	}
	if !core.NearlyEqual(times[len(times)-1], 2.0, 1e-12) {
		t.Fatalf("times[last] = %v, want duration", times[len(times)-1])
	}

	step := 2.0 / 7
	for i := 1; i < len(times); i++ {
		if !core.NearlyEqual(times[i]-times[i-1], step, 1e-12) {
			t.Fatalf("uneven axis spacing at %d: %v", i, times[i]-times[i-1])
		}
	}
}

func TestTimeDomainTwoHertzCosine(t *testing.T) {
	s, err := New(1.0, 8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetFreq(2, 1.0, 0)

	_, samples, err := s.TimeDomain()
	if err != nil {
		t.Fatalf("TimeDomain() error = %v", err)
	}

	// cos(2*pi*2*k/8): a two-cycle cosine over the 8-sample buffer
	want := []float64{1, 0, -1, 0, 1, 0, -1, 0}
	for k := range want {
		if math.Abs(samples[k]-want[k]) > 1e-9 {
			t.Fatalf("samples[%d] = %v, want %v", k, samples[k], want[k])
		}
	}
}

func TestTimeDomainMixedRadixLengths(t *testing.T) {
	// bin counts with factors other than 2 must transform as accurately as
	// the power-of-two sizes
	for _, rate := range []float64{200, 500, 1000} {
		s, err := New(1.0, rate)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		s.SetFreq(2, 1.0, 0)

		_, samples, err := s.TimeDomain()
		if err != nil {
			t.Fatalf("TimeDomain() error = %v", err)
		}
		for k, v := range samples {
			want := math.Cos(2 * math.Pi * 2 * float64(k) / rate)
			if math.Abs(v-want) > 1e-9 {
				t.Fatalf("rate %v: samples[%d] = %v, want %v", rate, k, v, want)
			}
		}
	}
}

func TestTimeDomainRecomputed(t *testing.T) {
	s, err := New(1.0, 16)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetFreq(2, 1, 0)

	_, first, err := s.TimeDomain()
	if err != nil {
		t.Fatalf("TimeDomain() error = %v", err)
	}

	s.Clear(nil)
	_, second, err := s.TimeDomain()
	if err != nil {
		t.Fatalf("TimeDomain() error = %v", err)
	}

	if first[0] != 1 {
		t.Fatalf("first view clobbered: %v", first[0])
	}
	for k, v := range second {
		if v != 0 {
			t.Fatalf("second view not silent at %d: %v", k, v)
		}
	}
}

func TestFreqDomainPointCount(t *testing.T) {
	for _, tc := range []struct {
		duration, rate float64
		want           int
	}{
		{1.0, 8, 5},
		{1.0, 7, 4},
		{1.0, 9, 5},
		{0.5, 1000, 251},
	} {
		s, err := New(tc.duration, tc.rate)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		freqs, mags, phases := s.FreqDomain()
		if len(freqs) != tc.want || len(mags) != tc.want || len(phases) != tc.want {
			t.Fatalf("duration=%v rate=%v: %d/%d/%d points, want %d",
				tc.duration, tc.rate, len(freqs), len(mags), len(phases), tc.want)
		}
	}
}

func TestFreqDomainAxisEndsAtNyquist(t *testing.T) {
	s, err := New(1.0, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	freqs, _, _ := s.FreqDomain()
	if freqs[0] != 0 {
		t.Fatalf("freqs[0] = %v, want 0", freqs[0])
	}
	if freqs[len(freqs)-1] != 500 {
		t.Fatalf("freqs[last] = %v, want 500", freqs[len(freqs)-1])
	}
}

func TestFreqDomainMagnitudeAndPhase(t *testing.T) {
	s, err := New(1.0, 1000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetFreq(50, 0.3, -90)
	s.SetFreq(120, 1.5, 45)

	freqs, mags, phases := s.FreqDomain()
	for i, f := range freqs {
		var wantMag, wantPhase float64
		switch f {
		case 50:
			wantMag, wantPhase = 0.3, -90
		case 120:
			wantMag, wantPhase = 1.5, 45
		}
		if math.Abs(mags[i]-wantMag) > 1e-9 {
			t.Fatalf("mags at %v Hz = %v, want %v", f, mags[i], wantMag)
		}
		if wantMag != 0 && math.Abs(phases[i]-wantPhase) > 1e-9 {
			t.Fatalf("phase at %v Hz = %v, want %v", f, phases[i], wantPhase)
		}
	}
}

func TestFreqDomainDC(t *testing.T) {
	s, err := New(1.0, 100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetFreq(0, 0.25, 0)

	_, mags, _ := s.FreqDomain()
	if math.Abs(mags[0]-0.25) > 1e-12 {
		t.Fatalf("DC magnitude = %v, want 0.25 (no doubling)", mags[0])
	}
}
