//go:build amd64 && !purego

package sse2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq/internal/arch/generic"
	"github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
)

func testSections() ([]onepole.Coefficients, []svf.Coefficients) {
	const recip = 1.0 / 48000

	lp4 := svf.LowpassOrd4(9000, 1.2, recip)
	onePole := []onepole.Coefficients{onepole.Highpass(30, recip)}
	sv := []svf.Coefficients{
		lp4[0],
		lp4[1],
		svf.Bell(1000, 2, 6, recip),
		svf.HighShelf(6000, 0.7, -4, recip),
	}

	return onePole, sv
}

func testInput(channels, n int) [][]float64 {
	bufs := make([][]float64, channels)
	for ch := range bufs {
		bufs[ch] = make([]float64, n)
		for i := range bufs[ch] {
			bufs[ch][i] = math.Sin(0.07*float64(i*(ch+1))) + 0.25*float64(ch)
		}
	}

	return bufs
}

func newChannels(n, onePole, sv int) []registry.Channel {
	out := make([]registry.Channel, n)
	for i := range out {
		out[i] = registry.Channel{
			OnePole: make([]onepole.State, onePole),
			SVF:     make([]svf.State, sv),
		}
	}

	return out
}

func TestProcess_MatchesGeneric(t *testing.T) {
	onePole, sv := testSections()

	for _, channels := range []int{1, 2, 3, 4} {
		for _, n := range []int{0, 1, 2, 37} {
			want := testInput(channels, n)
			got := testInput(channels, n)
			wantState := newChannels(channels, len(onePole), len(sv))
			gotState := newChannels(channels, len(onePole), len(sv))

			// Two calls so that carried state is exercised.
			for range 2 {
				generic.Process(onePole, sv, wantState, want)
				process(onePole, sv, gotState, got)
			}

			for ch := range got {
				for i := range got[ch] {
					if !almostEq(got[ch][i], want[ch][i], 1e-12) {
						t.Fatalf("channels=%d n=%d ch=%d sample %d: got %.15f, want %.15f",
							channels, n, ch, i, got[ch][i], want[ch][i])
					}
				}

				for j := range sv {
					g, w := gotState[ch].SVF[j], wantState[ch].SVF[j]
					if !almostEq(g.IC1, w.IC1, 1e-12) || !almostEq(g.IC2, w.IC2, 1e-12) {
						t.Fatalf("channels=%d n=%d ch=%d svf %d state: got %+v, want %+v", channels, n, ch, j, g, w)
					}
				}
			}
		}
	}
}

func BenchmarkProcess_SSE2Kernel(b *testing.B) {
	onePole, sv := testSections()
	bufs := testInput(2, 1024)
	st := newChannels(2, len(onePole), len(sv))

	b.SetBytes(2 * 1024 * 8)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		process(onePole, sv, st, bufs)
	}
}

func almostEq(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
