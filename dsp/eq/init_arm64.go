//go:build arm64 && !purego

package eq

import (
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/generic"
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
)
