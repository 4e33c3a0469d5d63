//go:build arm64 && !purego

package eq

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetKernelDispatchForTest() {
	defaultKernel = nil
	defaultKernelInitOnce = sync.Once{}
}

func TestKernelDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, HasNEON: true, Architecture: "arm64"},
			wantImpl: "generic",
		},
		{
			name:     "neon",
			features: cpu.Features{HasNEON: true, Architecture: "arm64"},
			wantImpl: "neon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()
			defer resetKernelDispatchForTest()

			resetKernelDispatchForTest()

			p := newTestProcessor(t, 2)
			if p.Kernel() != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, p.Kernel())
			}
		})
	}
}
