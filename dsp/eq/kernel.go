package eq

import (
	"fmt"
	"sync"

	archregistry "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	defaultKernel         *archregistry.OpEntry
	defaultKernelInitOnce sync.Once
)

func initDefaultKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("eq: no kernel registered (missing generic fallback?)")
	}

	if entry.Process == nil {
		panic("eq: selected kernel missing Process")
	}

	defaultKernel = entry
}

// selectKernel returns the kernel named name, or the best kernel for the
// running CPU when name is empty.
func selectKernel(name string) (*archregistry.OpEntry, error) {
	if name == "" {
		defaultKernelInitOnce.Do(initDefaultKernel)
		return defaultKernel, nil
	}

	entry := archregistry.Global.ByName(name)
	if entry == nil || entry.Process == nil {
		return nil, fmt.Errorf("eq: kernel %q: %w", name, ErrUnknownKernel)
	}

	return entry, nil
}

// Kernels returns the names of the block kernels compiled into this build,
// highest priority first. Any of them may be passed to WithKernel.
func Kernels() []string {
	entries := archregistry.Global.ListEntries()

	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}

	return names
}
