//go:build purego || (!amd64 && !arm64)

package eq

import (
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/generic"
	_ "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
)
