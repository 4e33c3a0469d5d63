package testutil

import (
	"math"
	"math/rand"
)

// Impulse returns a unit impulse of length n at position pos. An out-of-range
// pos yields silence.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// DeterministicSine returns a sine of freqHz starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] drawn
// from a generator seeded with seed.
func DeterministicNoise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (2*rng.Float64() - 1) * amplitude
	}

	return out
}

// StereoNoise returns channels buffers of independent noise. Channel ch uses
// seed+ch.
func StereoNoise(seed int64, channels, n int) [][]float64 {
	bufs := make([][]float64, channels)
	for ch := range bufs {
		bufs[ch] = DeterministicNoise(seed+int64(ch), 1, n)
	}

	return bufs
}

// CloneChannels deep-copies a set of channel buffers.
func CloneChannels(bufs [][]float64) [][]float64 {
	out := make([][]float64, len(bufs))
	for ch := range bufs {
		out[ch] = append([]float64(nil), bufs[ch]...)
	}

	return out
}
