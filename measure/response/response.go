package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
	algofft "github.com/cwbudde/algo-fft"
)

// ErrFFTSize is returned when the block size is not a power of two >= 2.
var ErrFFTSize = errors.New("response: FFT size must be a power of two >= 2")

var renderPool = buffer.NewPool()

// Point is the response at one frequency.
type Point struct {
	FreqHz      float64
	MagnitudeDB float64
	PhaseRad    float64
}

func pointFromComplex(freqHz float64, h complex128) Point {
	return Point{
		FreqHz:      freqHz,
		MagnitudeDB: core.LinearToDB(cmplx.Abs(h)),
		PhaseRad:    cmplx.Phase(h),
	}
}

// Result is a measured spectrum covering bins 0..FFTSize/2.
type Result struct {
	SampleRate float64
	FFTSize    int
	Spectrum   []complex128
}

// BinHz returns the frequency spacing of the spectrum bins.
func (r *Result) BinHz() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// At returns the response at the bin nearest to freqHz.
func (r *Result) At(freqHz float64) Point {
	bin := int(math.Round(freqHz / r.BinHz()))
	bin = max(0, min(bin, len(r.Spectrum)-1))

	return pointFromComplex(float64(bin)*r.BinHz(), r.Spectrum[bin])
}

// Points returns the response at every bin.
func (r *Result) Points() []Point {
	out := make([]Point, len(r.Spectrum))
	for i, h := range r.Spectrum {
		out[i] = pointFromComplex(float64(i)*r.BinHz(), h)
	}

	return out
}

// Measure renders BlockSize samples of the impulse response of params through
// a mono eq.Processor and returns its spectrum. The block size is the FFT
// size; responses that have not decayed within it are truncated.
func Measure(params eq.Params, opts ...core.ProcessorOption) (*Result, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	n := cfg.BlockSize
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, n)
	}

	p, err := eq.New(cfg.SampleRate, len(params.Bands), eq.WithChannels(1))
	if err != nil {
		return nil, err
	}

	if err := p.SetParams(params); err != nil {
		return nil, err
	}

	render := renderPool.Get(1, n)
	defer renderPool.Put(render)

	ir := render.Channel(0)
	ir[0] = 1

	if err := p.Process(render.Channels()); err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	return &Result{
		SampleRate: cfg.SampleRate,
		FFTSize:    n,
		Spectrum:   out[:n/2+1],
	}, nil
}

// Cascade returns the combined transfer function of a one-pole and SVF
// section chain at freqHz.
func Cascade(onePole []onepole.Coefficients, sv []svf.Coefficients, freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)

	for i := range onePole {
		h *= onePole[i].Response(freqHz, sampleRate)
	}

	for i := range sv {
		h *= sv[i].Response(freqHz, sampleRate)
	}

	return h
}

// Analytic evaluates the response of the flushed coefficients of e at every
// frequency in freqs.
func Analytic(e *eq.CoeffEngine, sampleRate float64, freqs []float64) []Point {
	onePole, sv := e.OnePole(), e.SVF()

	out := make([]Point, len(freqs))
	for i, f := range freqs {
		out[i] = pointFromComplex(f, Cascade(onePole, sv, f, sampleRate))
	}

	return out
}

// AnalyticParams designs params at sampleRate and evaluates the response at
// every frequency in freqs.
func AnalyticParams(params eq.Params, sampleRate float64, freqs []float64) ([]Point, error) {
	e, err := eq.NewCoeffEngine(sampleRate, len(params.Bands))
	if err != nil {
		return nil, err
	}

	if err := e.Set(params); err != nil {
		return nil, err
	}

	e.Flush()

	return Analytic(e, sampleRate, freqs), nil
}

// LogFrequencies returns n frequencies spaced logarithmically from loHz to
// hiHz inclusive.
func LogFrequencies(loHz, hiHz float64, n int) []float64 {
	if n <= 0 || loHz <= 0 || hiHz <= 0 {
		return nil
	}

	if n == 1 {
		return []float64{loHz}
	}

	out := make([]float64, n)

	ratio := math.Log(hiHz / loHz)
	for i := range out {
		out[i] = loHz * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}
