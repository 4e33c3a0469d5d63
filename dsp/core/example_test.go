package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(8192),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=8192
}

func ExampleLinearToDB() {
	fmt.Printf("%.2f dB\n", core.LinearToDB(0.5))
	fmt.Printf("%.4f\n", core.DBToLinear(-6))

	// Output:
	// -6.02 dB
	// 0.5012
}
