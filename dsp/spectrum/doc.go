// Package spectrum provides views over complex frequency-domain bins.
//
// The package does not implement a transform itself. It operates on bins
// produced elsewhere and extracts magnitude, phase, and the single-sided
// representation used for display and analysis.
package spectrum
