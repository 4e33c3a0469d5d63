package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/buffer"
)

func ExamplePlanar() {
	b := buffer.New(2, 4)
	b.Channel(0)[0] = 1

	for ch, s := range b.Channels() {
		fmt.Println(ch, s)
	}
	// Output:
	// 0 [1 0 0 0]
	// 1 [0 0 0 0]
}
