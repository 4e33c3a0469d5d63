// Package core holds small numeric and decibel helpers shared by the
// equalizer packages, plus the processor configuration options used by
// offline analysis.
package core
