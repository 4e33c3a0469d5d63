//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Process:   process,
	})
}

// process runs channels in pairs, one section at a time over the whole block,
// so both lanes share the hoisted coefficients of a section.
// TODO: replace the pair loops with an explicit SSE2 asm kernel.
func process(onePole []onepole.Coefficients, sv []svf.Coefficients, channels []registry.Channel, bufs [][]float64) {
	ch := 0
	for ; ch+1 < len(bufs); ch += 2 {
		l, r := bufs[ch], bufs[ch+1]

		for j := range onePole {
			onePolePair(&onePole[j], &channels[ch].OnePole[j], &channels[ch+1].OnePole[j], l, r)
		}

		for j := range sv {
			svfPair(&sv[j], &channels[ch].SVF[j], &channels[ch+1].SVF[j], l, r)
		}
	}

	if ch < len(bufs) {
		buf := bufs[ch]

		for j := range onePole {
			channels[ch].OnePole[j].ProcessBlock(buf, &onePole[j])
		}

		for j := range sv {
			channels[ch].SVF[j].ProcessBlock(buf, &sv[j])
		}
	}
}

func onePolePair(c *onepole.Coefficients, sl, sr *onepole.State, l, r []float64) {
	a0, b1, m0, m1 := c.A0, c.B1, c.M0, c.M1
	zl, zr := sl.Z1, sr.Z1

	r = r[:len(l)]
	for i := range l {
		xl, xr := l[i], r[i]
		zl = a0*xl + b1*zl
		zr = a0*xr + b1*zr
		l[i] = m0*xl + m1*zl
		r[i] = m0*xr + m1*zr
	}

	sl.Z1, sr.Z1 = zl, zr
}

func svfPair(c *svf.Coefficients, sl, sr *svf.State, l, r []float64) {
	a1, a2, a3 := c.A1, c.A2, c.A3
	m0, m1, m2 := c.M0, c.M1, c.M2
	ic1l, ic2l := sl.IC1, sl.IC2
	ic1r, ic2r := sr.IC1, sr.IC2

	r = r[:len(l)]
	for i := range l {
		xl, xr := l[i], r[i]

		v3l := xl - ic2l
		v3r := xr - ic2r
		v1l := a1*ic1l + a2*v3l
		v1r := a1*ic1r + a2*v3r
		v2l := ic2l + a2*ic1l + a3*v3l
		v2r := ic2r + a2*ic1r + a3*v3r
		ic1l = 2*v1l - ic1l
		ic1r = 2*v1r - ic1r
		ic2l = 2*v2l - ic2l
		ic2r = 2*v2r - ic2r

		l[i] = m0*xl + m1*v1l + m2*v2l
		r[i] = m0*xr + m1*v1r + m2*v2r
	}

	sl.IC1, sl.IC2 = ic1l, ic2l
	sr.IC1, sr.IC2 = ic1r, ic2r
}
