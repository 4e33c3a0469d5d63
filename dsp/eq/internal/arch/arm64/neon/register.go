//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Process:   process,
	})
}

// process runs channels in pairs with each section's coefficients hoisted
// into registers. A trailing odd channel falls back to the scalar block loops.
func process(onePole []onepole.Coefficients, sv []svf.Coefficients, channels []registry.Channel, bufs [][]float64) {
	n := len(bufs)

	for ch := 0; ch < n; ch += 2 {
		if ch+1 == n {
			single(onePole, sv, &channels[ch], bufs[ch])
			break
		}

		l, r := bufs[ch], bufs[ch+1]
		left, right := &channels[ch], &channels[ch+1]

		for j := range onePole {
			left.OnePole[j].Z1, right.OnePole[j].Z1 = onePoleLanes(&onePole[j], left.OnePole[j].Z1, right.OnePole[j].Z1, l, r)
		}

		for j := range sv {
			svfLanes(&sv[j], &left.SVF[j], &right.SVF[j], l, r)
		}
	}
}

func single(onePole []onepole.Coefficients, sv []svf.Coefficients, st *registry.Channel, buf []float64) {
	for j := range onePole {
		st.OnePole[j].ProcessBlock(buf, &onePole[j])
	}

	for j := range sv {
		st.SVF[j].ProcessBlock(buf, &sv[j])
	}
}

// onePoleLanes is 2x-unrolled over samples.
func onePoleLanes(c *onepole.Coefficients, zl, zr float64, l, r []float64) (float64, float64) {
	a0, b1, m0, m1 := c.A0, c.B1, c.M0, c.M1

	i := 0
	n := len(l)
	r = r[:n]

	for ; i+1 < n; i += 2 {
		xl0, xr0 := l[i], r[i]
		zl = a0*xl0 + b1*zl
		zr = a0*xr0 + b1*zr
		l[i] = m0*xl0 + m1*zl
		r[i] = m0*xr0 + m1*zr

		xl1, xr1 := l[i+1], r[i+1]
		zl = a0*xl1 + b1*zl
		zr = a0*xr1 + b1*zr
		l[i+1] = m0*xl1 + m1*zl
		r[i+1] = m0*xr1 + m1*zr
	}

	if i < n {
		xl, xr := l[i], r[i]
		zl = a0*xl + b1*zl
		zr = a0*xr + b1*zr
		l[i] = m0*xl + m1*zl
		r[i] = m0*xr + m1*zr
	}

	return zl, zr
}

func svfLanes(c *svf.Coefficients, sl, sr *svf.State, l, r []float64) {
	a1, a2, a3 := c.A1, c.A2, c.A3
	m0, m1, m2 := c.M0, c.M1, c.M2
	l1, l2 := sl.IC1, sl.IC2
	r1, r2 := sr.IC1, sr.IC2

	r = r[:len(l)]
	for i, xl := range l {
		xr := r[i]

		v3l, v3r := xl-l2, xr-r2
		v1l := a1*l1 + a2*v3l
		v1r := a1*r1 + a2*v3r
		v2l := l2 + a2*l1 + a3*v3l
		v2r := r2 + a2*r1 + a3*v3r
		l1, r1 = 2*v1l-l1, 2*v1r-r1
		l2, r2 = 2*v2l-l2, 2*v2r-r2

		l[i] = m0*xl + m1*v1l + m2*v2l
		r[i] = m0*xr + m1*v1r + m2*v2r
	}

	sl.IC1, sl.IC2 = l1, l2
	sr.IC1, sr.IC2 = r1, r2
}
