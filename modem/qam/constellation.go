package qam

import (
	"math"
	"sort"
)

// Point is one constellation point in the I/Q plane.
type Point struct {
	Bits string
	I    float64
	Q    float64
}

// Constellation returns the scheme's constellation points, sorted by bit
// pattern for deterministic output.
func (sch Scheme) Constellation() []Point {
	points := make([]Point, 0, len(sch.Modulation))
	for bits, sym := range sch.Modulation {
		rad := sym.PhaseDeg * math.Pi / 180
		points = append(points, Point{
			Bits: bits,
			I:    sym.Amplitude * math.Cos(rad),
			Q:    sym.Amplitude * math.Sin(rad),
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Bits < points[j].Bits })
	return points
}
