package svf

import (
	"math"
	"math/cmplx"
)

// Transfer is the direct-form transfer function of one SVF section,
// normalized so the leading denominator coefficient is 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Transfer struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Transfer converts the section to direct-form coefficients.
//
// The trapezoidal SVF is equivalent to the bilinear transform of the analog
// state variable filter, with band-pass tap v1 = g(1-z^-2)/D and low-pass
// tap v2 = g^2(1+z^-1)^2/D. g and k are recovered from A1 and A2.
func (c *Coefficients) Transfer() Transfer {
	if c.A1 == 0 {
		return Transfer{B0: c.M0}
	}

	g := c.A2 / c.A1
	gk := 1/c.A1 - 1 - g*g

	d0 := 1 + gk + g*g
	d1 := 2*g*g - 2
	d2 := 1 - gk + g*g

	b0 := c.M0*d0 + c.M1*g + c.M2*g*g
	b1 := c.M0*d1 + 2*c.M2*g*g
	b2 := c.M0*d2 - c.M1*g + c.M2*g*g

	return Transfer{
		B0: b0 / d0,
		B1: b1 / d0,
		B2: b2 / d0,
		A1: d1 / d0,
		A2: d2 / d0,
	}
}

// Response computes the complex frequency response H(e^jw) of the section
// at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	t := c.Transfer()
	return t.Response(freqHz, sampleRate)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Response evaluates the transfer function at freqHz.
func (t Transfer) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(t.B0, 0) + complex(t.B1, 0)*ejw + complex(t.B2, 0)*ej2w
	den := complex(1, 0) + complex(t.A1, 0)*ejw + complex(t.A2, 0)*ej2w

	return num / den
}
