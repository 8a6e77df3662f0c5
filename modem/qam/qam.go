package qam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sigproc/dsp/signal"
)

const (
	defaultSampleRate = 22050.0
	defaultBaudRate   = 10.0
)

var (
	ErrNoModulation    = errors.New("qam: modulation map must not be empty")
	ErrInvalidBitWidth = errors.New("qam: bits per baud must be > 0")
	ErrInvalidCarrier  = errors.New("qam: carrier frequency must be > 0")
	ErrEmptyData       = errors.New("qam: data must not be empty")
	ErrDataWidth       = errors.New("qam: data length must be a multiple of bits per baud")
	ErrUnknownSymbol   = errors.New("qam: bit group missing from modulation map")
)

// Symbol is one constellation point: the carrier amplitude and phase shift in
// degrees transmitted for one bit group.
type Symbol struct {
	Amplitude float64
	PhaseDeg  float64
}

// Scheme describes a modulation scheme.
//
// Zero values for BaudRate and SampleRate select defaults (10 baud, 22050 Hz).
// Modulation keys are bit strings of exactly BitsPerBaud characters.
type Scheme struct {
	BaudRate    float64
	BitsPerBaud int
	CarrierFreq float64
	SampleRate  float64
	Modulation  map[string]Symbol
}

// BPSK returns a binary phase-shift keying scheme on the given carrier.
func BPSK(carrierHz float64) Scheme {
	return Scheme{
		BitsPerBaud: 1,
		CarrierFreq: carrierHz,
		Modulation: map[string]Symbol{
			"0": {Amplitude: 1, PhaseDeg: 0},
			"1": {Amplitude: 1, PhaseDeg: 180},
		},
	}
}

// QPSK returns a quadrature phase-shift keying scheme on the given carrier.
func QPSK(carrierHz float64) Scheme {
	return Scheme{
		BitsPerBaud: 2,
		CarrierFreq: carrierHz,
		Modulation: map[string]Symbol{
			"00": {Amplitude: 1, PhaseDeg: 0},
			"01": {Amplitude: 1, PhaseDeg: 90},
			"10": {Amplitude: 1, PhaseDeg: 180},
			"11": {Amplitude: 1, PhaseDeg: 270},
		},
	}
}

func (sch Scheme) normalized() Scheme {
	if sch.BaudRate <= 0 {
		sch.BaudRate = defaultBaudRate
	}
	if sch.SampleRate <= 0 {
		sch.SampleRate = defaultSampleRate
	}
	return sch
}

func (sch Scheme) validate() error {
	if sch.BitsPerBaud <= 0 {
		return ErrInvalidBitWidth
	}
	if sch.CarrierFreq <= 0 {
		return ErrInvalidCarrier
	}
	if len(sch.Modulation) == 0 {
		return ErrNoModulation
	}
	return nil
}

// GenerateSignal modulates the given bit string into a composite signal.
//
// Each group of BitsPerBaud bits occupies one symbol interval of 1/BaudRate
// seconds, during which the carrier is transmitted with the amplitude and
// phase of the mapped symbol. The symbol waveforms are synthesized through
// the spectrum model and concatenated.
func (sch Scheme) GenerateSignal(bits string) (*signal.Signal, error) {
	sch = sch.normalized()
	if err := sch.validate(); err != nil {
		return nil, err
	}
	if bits == "" {
		return nil, ErrEmptyData
	}
	if len(bits)%sch.BitsPerBaud != 0 {
		return nil, fmt.Errorf("%w: %d bits, %d per baud", ErrDataWidth, len(bits), sch.BitsPerBaud)
	}

	symbolDuration := 1 / sch.BaudRate
	numSymbols := len(bits) / sch.BitsPerBaud

	samples := make([]float64, 0, numSymbols*int(symbolDuration*sch.SampleRate))
	for i := 0; i < numSymbols; i++ {
		group := bits[i*sch.BitsPerBaud : (i+1)*sch.BitsPerBaud]
		sym, ok := sch.Modulation[group]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, group)
		}

		s, err := signal.New(symbolDuration, sch.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("qam: symbol %d: %w", i, err)
		}
		s.SetFreq(sch.CarrierFreq, sym.Amplitude, sym.PhaseDeg)

		_, burst, err := s.TimeDomain()
		if err != nil {
			return nil, fmt.Errorf("qam: symbol %d: %w", i, err)
		}
		samples = append(samples, burst...)
	}

	out, err := signal.FromSamples(sch.SampleRate, samples)
	if err != nil {
		return nil, fmt.Errorf("qam: composite signal: %w", err)
	}
	return out, nil
}

// SymbolFor returns the symbol mapped to one bit group.
func (sch Scheme) SymbolFor(group string) (Symbol, error) {
	if err := sch.validate(); err != nil {
		return Symbol{}, err
	}
	if len(group) != sch.BitsPerBaud || strings.Trim(group, "01") != "" {
		return Symbol{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, group)
	}
	sym, ok := sch.Modulation[group]
	if !ok {
		return Symbol{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, group)
	}
	return sym, nil
}
