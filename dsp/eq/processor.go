package eq

import (
	"fmt"

	archregistry "github.com/cwbudde/algo-eq/dsp/eq/internal/arch/registry"
)

// Latency is the processing delay of the equalizer in samples.
const Latency = 0

// Processor applies one EQ setting to a fixed number of channels. It owns a
// CoeffEngine shared by all channels and one StateEngine per channel.
//
// A Processor is not safe for concurrent use. Process performs no heap
// allocation once constructed.
type Processor struct {
	sampleRate float64
	coeff      *CoeffEngine
	states     []*StateEngine
	kernel     *archregistry.OpEntry

	// Reused per Process call; refreshed from the state engines.
	channels []archregistry.Channel
	monoBufs [][]float64
}

// New creates a Processor for sampleRate with a fixed number of bands.
// The initial parameters are DefaultParams(bands): every stage disabled.
func New(sampleRate float64, bands int, opts ...Option) (*Processor, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if err := validateBands(bands); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	kernel, err := selectKernel(cfg.kernel)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		sampleRate: sampleRate,
		coeff:      newCoeffEngine(sampleRate, bands),
		states:     make([]*StateEngine, cfg.channels),
		kernel:     kernel,
		channels:   make([]archregistry.Channel, cfg.channels),
		monoBufs:   make([][]float64, 1),
	}

	for ch := range p.states {
		p.states[ch] = newStateEngine(bands)
	}

	return p, nil
}

// SampleRate returns the sample rate in Hz.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// Channels returns the channel count.
func (p *Processor) Channels() int { return len(p.states) }

// Bands returns the band count.
func (p *Processor) Bands() int { return p.coeff.Bands() }

// Kernel returns the name of the selected block kernel.
func (p *Processor) Kernel() string { return p.kernel.Name }

// Params returns a copy of the current parameters.
func (p *Processor) Params() Params { return p.coeff.Params() }

// CoeffEngine returns the shared coefficient engine for inspection.
func (p *Processor) CoeffEngine() *CoeffEngine { return p.coeff }

// StateEngine returns the state engine of channel ch for inspection.
func (p *Processor) StateEngine(ch int) *StateEngine { return p.states[ch] }

// SetParams stores a new parameter snapshot. Coefficients are recomputed on
// the next FlushParamChanges or Process call.
func (p *Processor) SetParams(params Params) error {
	return p.coeff.Set(params)
}

// NeedsFlush reports whether parameter changes are pending.
func (p *Processor) NeedsFlush() bool {
	return p.coeff.NeedsFlush()
}

// FlushParamChanges applies pending parameter changes. When the set of active
// filters changed, every channel's memory is re-laid out to match.
func (p *Processor) FlushParamChanges() {
	topo := p.coeff.Flush()
	if topo == nil {
		return
	}

	for _, st := range p.states {
		st.Sync(topo)
	}
}

// Process filters bufs in-place, one buffer per channel. All buffers must
// have the same length.
func (p *Processor) Process(bufs [][]float64) error {
	if len(bufs) != len(p.states) {
		return fmt.Errorf("eq: got %d buffers for %d channels: %w", len(bufs), len(p.states), ErrChannelCount)
	}

	n := len(bufs[0])
	for ch := 1; ch < len(bufs); ch++ {
		if len(bufs[ch]) != n {
			return fmt.Errorf("eq: buffer %d has %d samples, buffer 0 has %d: %w", ch, len(bufs[ch]), n, ErrBufferLength)
		}
	}

	p.FlushParamChanges()

	if p.coeff.Empty() {
		return nil
	}

	onePole, sv := p.coeff.OnePole(), p.coeff.SVF()

	for ch, st := range p.states {
		if len(st.onePole) != len(onePole) || len(st.svf) != len(sv) {
			panic(fmt.Sprintf("eq: channel %d state layout (%d,%d) does not match coefficients (%d,%d)",
				ch, len(st.onePole), len(st.svf), len(onePole), len(sv)))
		}

		p.channels[ch] = archregistry.Channel{OnePole: st.onePole, SVF: st.svf}
	}

	p.kernel.Process(onePole, sv, p.channels, bufs)

	return nil
}

// ProcessMono filters buf in-place. The processor must have one channel.
func (p *Processor) ProcessMono(buf []float64) error {
	p.monoBufs[0] = buf
	err := p.Process(p.monoBufs)
	p.monoBufs[0] = nil

	return err
}

// Reset clears the filter memory of every channel.
func (p *Processor) Reset() {
	for _, st := range p.states {
		st.Reset()
	}
}
