package onepole

import (
	"math"
	"math/cmplx"
)

// Coefficients holds the recurrence coefficients (A0, B1) and the output
// mix (M0, M1) of a one-pole filter.
type Coefficients struct {
	A0, B1 float64
	M0, M1 float64
}

// NoOp passes the input through unchanged regardless of state.
var NoOp = Coefficients{M0: 1}

// State is the single delay term of a one-pole filter.
type State struct {
	Z1 float64
}

// Lowpass designs a one-pole low-pass at cutoffHz.
func Lowpass(cutoffHz, sampleRateRecip float64) Coefficients {
	b1 := math.Exp((-2 * math.Pi) * cutoffHz * sampleRateRecip)

	return Coefficients{A0: 1 - b1, B1: b1, M0: 0, M1: 1}
}

// Highpass designs a one-pole high-pass at cutoffHz as the complement of
// the matching low-pass.
func Highpass(cutoffHz, sampleRateRecip float64) Coefficients {
	b1 := math.Exp((-2 * math.Pi) * cutoffHz * sampleRateRecip)

	return Coefficients{A0: 1 - b1, B1: b1, M0: 1, M1: -1}
}

// Tick advances the filter by one sample and returns the output.
func (s *State) Tick(x float64, c *Coefficients) float64 {
	s.Z1 = c.A0*x + c.B1*s.Z1
	return c.M0*x + c.M1*s.Z1
}

// ProcessBlock filters buf in-place. Zero-alloc.
func (s *State) ProcessBlock(buf []float64, c *Coefficients) {
	a0, b1, m0, m1 := c.A0, c.B1, c.M0, c.M1
	z1 := s.Z1

	for i, x := range buf {
		z1 = a0*x + b1*z1
		buf[i] = m0*x + m1*z1
	}

	s.Z1 = z1
}

// Reset clears the delay term.
func (s *State) Reset() {
	s.Z1 = 0
}

// Response computes the complex frequency response at freqHz:
//
//	H(z) = m0 + m1*a0 / (1 - b1 z^-1)
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))

	return complex(c.M0, 0) + complex(c.M1*c.A0, 0)/(1-complex(c.B1, 0)*ejw)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
