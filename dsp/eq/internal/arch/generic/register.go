package generic

import (
	"github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Process:   Process,
	})
}

// Process is the scalar reference kernel: for every channel and sample it
// runs all one-pole sections, then all SVF sections.
func Process(onePole []onepole.Coefficients, sv []svf.Coefficients, channels []registry.Channel, bufs [][]float64) {
	for ch, buf := range bufs {
		opState := channels[ch].OnePole
		svState := channels[ch].SVF

		for i, x := range buf {
			for j := range onePole {
				x = opState[j].Tick(x, &onePole[j])
			}

			for j := range sv {
				x = svState[j].Tick(x, &sv[j])
			}

			buf[i] = x
		}
	}
}
