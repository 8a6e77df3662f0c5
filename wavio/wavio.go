// Package wavio persists a signal's time-domain waveform as 16-bit PCM WAV.
package wavio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	wav "github.com/youpy/go-wav"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/signal"
)

var ErrNilSignal = errors.New("wavio: nil signal")

// Write encodes the signal's waveform as mono 16-bit PCM. Samples are clamped
// to [-1, 1] before quantization.
func Write(w io.Writer, s *signal.Signal) error {
	if s == nil {
		return ErrNilSignal
	}

	_, samples, err := s.TimeDomain()
	if err != nil {
		return fmt.Errorf("wavio: render waveform: %w", err)
	}

	wavSamples := make([]wav.Sample, len(samples))
	for i, v := range samples {
		val := int(core.Clamp(v, -1, 1) * math.MaxInt16)
		wavSamples[i] = wav.Sample{Values: [2]int{val, val}}
	}

	writer := wav.NewWriter(w, uint32(len(samples)), 1, uint32(s.SampleRate()), 16)
	if err := writer.WriteSamples(wavSamples); err != nil {
		return fmt.Errorf("wavio: write samples: %w", err)
	}
	return nil
}

// Read decodes a WAV stream into a signal. Only the first channel is used;
// the spectrum is reconstructed from the decoded samples.
//
// The stream is buffered in memory because the decoder needs random access.
func Read(r io.Reader) (*signal.Signal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wavio: buffer stream: %w", err)
	}
	reader := wav.NewReader(bytes.NewReader(data))

	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("wavio: read format: %w", err)
	}

	var samples []float64
	for {
		chunk, err := reader.ReadSamples()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wavio: read samples: %w", err)
		}
		for _, smp := range chunk {
			samples = append(samples, reader.FloatValue(smp, 0))
		}
	}

	s, err := signal.FromSamples(float64(format.SampleRate), samples)
	if err != nil {
		return nil, fmt.Errorf("wavio: rebuild signal: %w", err)
	}
	return s, nil
}
