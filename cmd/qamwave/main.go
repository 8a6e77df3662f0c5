// Command qamwave modulates a bit string onto a carrier and writes the
// waveform as a 16-bit PCM WAV file.
//
// Usage:
//
//	qamwave [flags] <data-bits>
//
// Examples:
//
//	qamwave -o out.wav 100110
//	qamwave -scheme qpsk -carrier 50 -baud 10 -o out.wav 0010
//	qamwave -scheme bpsk -rate 8000 -gain -6 -o out.wav 1011
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/modem/qam"
	"github.com/cwbudde/algo-sigproc/wavio"
)

func main() {
	var (
		schemeName = flag.String("scheme", "bpsk", "modulation scheme: bpsk or qpsk")
		carrier    = flag.Float64("carrier", 50, "carrier frequency in Hz")
		baud       = flag.Float64("baud", 10, "symbol rate in baud")
		rate       = flag.Float64("rate", 22050, "sample rate in Hz")
		gainDB     = flag.Float64("gain", 0, "output gain in dB")
		outPath    = flag.String("o", "out.wav", "output WAV path")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <data-bits>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	bits := flag.Arg(0)

	var sch qam.Scheme
	switch *schemeName {
	case "bpsk":
		sch = qam.BPSK(*carrier)
	case "qpsk":
		sch = qam.QPSK(*carrier)
	default:
		fmt.Fprintf(os.Stderr, "unknown scheme %q\n", *schemeName)
		os.Exit(2)
	}
	sch.BaudRate = *baud
	sch.SampleRate = *rate

	gain := core.DBToLinear(*gainDB)
	for key, sym := range sch.Modulation {
		sym.Amplitude *= gain
		sch.Modulation[key] = sym
	}

	s, err := sch.GenerateSignal(bits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modulate: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := wavio.Write(f, s); err != nil {
		fmt.Fprintf(os.Stderr, "write wav: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d symbols, %.3f s at %.0f Hz\n",
		*outPath, len(bits)/sch.BitsPerBaud, s.Duration(), s.SampleRate())
}
