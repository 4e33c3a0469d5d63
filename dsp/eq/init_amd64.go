//go:build amd64 && !purego

package eq

import (
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"   // initialize backend registry
)
