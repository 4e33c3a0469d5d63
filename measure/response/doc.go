// Package response measures the frequency response of an equalizer setting.
//
// Two independent paths are provided:
//
//   - Measure renders the impulse response of an eq.Processor and transforms
//     it with an FFT, so it observes what Process actually does.
//   - Analytic multiplies the transfer functions of the dense coefficient
//     arrays of an eq.CoeffEngine, which is exact and cheap.
//
// Agreement between the two is a useful end-to-end check of a setting.
//
// # Usage
//
//	params := eq.DefaultParams(1)
//	params.Bands[0] = eq.BandParams{Enabled: true, Type: eq.Bell, CutoffHz: 1000, Q: 1, GainDB: 6}
//	res, err := response.Measure(params, core.WithSampleRate(48000), core.WithBlockSize(8192))
//	fmt.Printf("%.2f dB at 1 kHz\n", res.At(1000).MagnitudeDB)
package response
