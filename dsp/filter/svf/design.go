package svf

import "math"

// Butterworth pole quality factors per section, lowest first.
const QButterworthOrd2 = 0.70710678118654752440

var (
	QButterworthOrd4 = [2]float64{0.54119610014619698440, 1.3065629648763765279}
	QButterworthOrd6 = [3]float64{
		0.51763809020504152470,
		0.70710678118654752440,
		1.9318516525781365735,
	}
	QButterworthOrd8 = [4]float64{
		0.50979557910415916894,
		0.60134488693504528054,
		0.89997622313641570464,
		2.5629154477415061788,
	}
)

// Resonance compression applied to normalized Q above 1 when cascading,
// so the combined peak of a higher-order stage stays usable.
const (
	Ord4QScale = 0.35
	Ord6QScale = 0.2
	Ord8QScale = 0.14
)

// FromGK builds coefficients from the prewarped gain g, damping k and the
// output mix (m0, m1, m2).
func FromGK(g, k, m0, m1, m2 float64) Coefficients {
	a1 := 1 / (1 + g*(g+k))
	a2 := g * a1
	a3 := g * a2

	return Coefficients{A1: a1, A2: a2, A3: a3, M0: m0, M1: m1, M2: m2}
}

// LowpassOrd2 designs a second-order low-pass section.
func LowpassOrd2(cutoffHz, q, sampleRateRecip float64) Coefficients {
	g := prewarp(cutoffHz, sampleRateRecip)
	k := 1 / q

	return FromGK(g, k, 0, 0, 1)
}

// HighpassOrd2 designs a second-order high-pass section.
func HighpassOrd2(cutoffHz, q, sampleRateRecip float64) Coefficients {
	g := prewarp(cutoffHz, sampleRateRecip)
	k := 1 / q

	return FromGK(g, k, 1, -k, -1)
}

// LowpassOrd4 designs a fourth-order low-pass cascade of two sections.
func LowpassOrd4(cutoffHz, q, sampleRateRecip float64) [2]Coefficients {
	var out [2]Coefficients
	cascade(out[:], QButterworthOrd4[:], Ord4QScale, cutoffHz, q, sampleRateRecip, true)
	return out
}

// LowpassOrd6 designs a sixth-order low-pass cascade of three sections.
func LowpassOrd6(cutoffHz, q, sampleRateRecip float64) [3]Coefficients {
	var out [3]Coefficients
	cascade(out[:], QButterworthOrd6[:], Ord6QScale, cutoffHz, q, sampleRateRecip, true)
	return out
}

// LowpassOrd8 designs an eighth-order low-pass cascade of four sections.
func LowpassOrd8(cutoffHz, q, sampleRateRecip float64) [4]Coefficients {
	var out [4]Coefficients
	cascade(out[:], QButterworthOrd8[:], Ord8QScale, cutoffHz, q, sampleRateRecip, true)
	return out
}

// HighpassOrd4 designs a fourth-order high-pass cascade of two sections.
func HighpassOrd4(cutoffHz, q, sampleRateRecip float64) [2]Coefficients {
	var out [2]Coefficients
	cascade(out[:], QButterworthOrd4[:], Ord4QScale, cutoffHz, q, sampleRateRecip, false)
	return out
}

// HighpassOrd6 designs a sixth-order high-pass cascade of three sections.
func HighpassOrd6(cutoffHz, q, sampleRateRecip float64) [3]Coefficients {
	var out [3]Coefficients
	cascade(out[:], QButterworthOrd6[:], Ord6QScale, cutoffHz, q, sampleRateRecip, false)
	return out
}

// HighpassOrd8 designs an eighth-order high-pass cascade of four sections.
func HighpassOrd8(cutoffHz, q, sampleRateRecip float64) [4]Coefficients {
	var out [4]Coefficients
	cascade(out[:], QButterworthOrd8[:], Ord8QScale, cutoffHz, q, sampleRateRecip, false)
	return out
}

// Notch designs a band-reject section.
func Notch(cutoffHz, q, sampleRateRecip float64) Coefficients {
	g := prewarp(cutoffHz, sampleRateRecip)
	k := 1 / q

	return FromGK(g, k, 1, -k, 0)
}

// Bell designs a peaking section with gainDB boost or cut at cutoffHz.
func Bell(cutoffHz, q, gainDB, sampleRateRecip float64) Coefficients {
	a := gainDBToA(gainDB)

	g := prewarp(cutoffHz, sampleRateRecip)
	k := 1 / (q * a)

	return FromGK(g, k, 1, k*(a*a-1), 0)
}

// LowShelf designs a low shelving section.
func LowShelf(cutoffHz, q, gainDB, sampleRateRecip float64) Coefficients {
	a := gainDBToA(gainDB)

	g := math.Tan(math.Pi*cutoffHz*sampleRateRecip) / math.Sqrt(a)
	k := 1 / q

	return FromGK(g, k, 1, k*(a-1), a*a-1)
}

// HighShelf designs a high shelving section.
func HighShelf(cutoffHz, q, gainDB, sampleRateRecip float64) Coefficients {
	a := gainDBToA(gainDB)

	g := math.Tan(math.Pi*cutoffHz*sampleRateRecip) / math.Sqrt(a)
	k := 1 / q

	return FromGK(g, k, a*a, k*(1-a)*a, 1-a*a)
}

// Allpass designs a second-order allpass section.
func Allpass(cutoffHz, q, sampleRateRecip float64) Coefficients {
	g := prewarp(cutoffHz, sampleRateRecip)
	k := 1 / q

	return FromGK(g, k, 1, -2*k, 0)
}

// cascade fills dst with one section per Butterworth pole Q. All sections
// share the same g; only the damping differs.
func cascade(dst []Coefficients, poleQ []float64, scale, cutoffHz, q, sampleRateRecip float64, lowpass bool) {
	g := prewarp(cutoffHz, sampleRateRecip)
	qn := scaleQNormForOrder(qNorm(q), scale)

	for i := range dst {
		k := 1 / (qn * poleQ[i])
		if lowpass {
			dst[i] = FromGK(g, k, 0, 0, 1)
		} else {
			dst[i] = FromGK(g, k, 1, -k, -1)
		}
	}
}

func prewarp(cutoffHz, sampleRateRecip float64) float64 {
	return math.Tan(math.Pi * cutoffHz * sampleRateRecip)
}

func qNorm(q float64) float64 {
	return q * (1 / QButterworthOrd2)
}

func gainDBToA(gainDB float64) float64 {
	return math.Pow(10, gainDB*(1.0/40.0))
}

func scaleQNormForOrder(qNorm, scale float64) float64 {
	if qNorm > 1 {
		return 1 + (qNorm-1)*scale
	}

	return qNorm
}
