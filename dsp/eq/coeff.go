package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
)

// coeffStage caches the designed sections of one stage and remembers where
// they live in the dense arrays (-1 for no slot).
type coeffStage struct {
	onePole     onepole.Coefficients
	svf         [maxCascade]svf.Coefficients
	onePoleSlot int
	svfSlot     int
	dirty       bool
}

// CoeffEngine owns the parameter snapshot and the dense coefficient arrays
// shared by every channel.
type CoeffEngine struct {
	params Params
	topo   Topology
	stages []coeffStage

	onePole []onepole.Coefficients
	svf     []svf.Coefficients

	sampleRateRecip float64
	needsFlush      bool
	topologyChanged bool
}

// NewCoeffEngine creates an engine for sampleRate and a fixed band count,
// starting from DefaultParams.
func NewCoeffEngine(sampleRate float64, bands int) (*CoeffEngine, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if err := validateBands(bands); err != nil {
		return nil, err
	}

	return newCoeffEngine(sampleRate, bands), nil
}

func newCoeffEngine(sampleRate float64, bands int) *CoeffEngine {
	e := &CoeffEngine{
		params:          DefaultParams(bands),
		topo:            newTopology(bands),
		stages:          make([]coeffStage, int(stageFirstBand)+bands),
		onePole:         make([]onepole.Coefficients, 0, maxOnePole),
		svf:             make([]svf.Coefficients, 0, svfCapacity(bands)),
		sampleRateRecip: 1 / sampleRate,
	}

	e.topo.capture(&e.params)

	for i := range e.stages {
		e.stages[i].onePoleSlot = -1
		e.stages[i].svfSlot = -1
	}

	return e
}

// Params returns a copy of the stored parameter snapshot.
func (e *CoeffEngine) Params() Params {
	return e.params.Clone()
}

// Bands returns the fixed band count.
func (e *CoeffEngine) Bands() int {
	return len(e.params.Bands)
}

// Set diffs p against the stored snapshot stage by stage. Changed stages are
// marked dirty; a change of an enabled flag or a pass-stage order also marks
// the topology as changed. No coefficients are computed until Flush.
func (e *CoeffEngine) Set(p Params) error {
	if len(p.Bands) != len(e.params.Bands) {
		return fmt.Errorf("eq: params carry %d bands, engine has %d: %w", len(p.Bands), len(e.params.Bands), ErrBandCount)
	}

	e.setPass(stageLowpass, &e.params.Lowpass, p.Lowpass)
	e.setPass(stageHighpass, &e.params.Highpass, p.Highpass)

	for i := range p.Bands {
		cur := &e.params.Bands[i]
		if *cur == p.Bands[i] {
			continue
		}

		if cur.Enabled != p.Bands[i].Enabled {
			e.topologyChanged = true
		}

		*cur = p.Bands[i]
		e.markDirty(stageFirstBand + stage(i))
	}

	return nil
}

func (e *CoeffEngine) setPass(s stage, cur *PassParams, next PassParams) {
	if *cur == next {
		return
	}

	if cur.Enabled != next.Enabled || cur.Order != next.Order {
		e.topologyChanged = true
	}

	*cur = next
	e.markDirty(s)
}

func (e *CoeffEngine) markDirty(s stage) {
	e.stages[s].dirty = true
	e.needsFlush = true
}

// NeedsFlush reports whether Set recorded changes not yet flushed.
func (e *CoeffEngine) NeedsFlush() bool {
	return e.needsFlush
}

// Flush recomputes the coefficients of every dirty stage. When the topology
// changed, the dense arrays are rebuilt in canonical order and the new shape
// is returned; otherwise dirty stages are rewritten in their existing slots
// and Flush returns nil.
//
// The returned Topology is owned by the engine and valid until the next Flush.
func (e *CoeffEngine) Flush() *Topology {
	if !e.needsFlush {
		return nil
	}

	e.needsFlush = false
	relayout := e.topologyChanged

	if relayout {
		e.onePole = e.onePole[:0]
		e.svf = e.svf[:0]

		for i := range e.stages {
			e.stages[i].onePoleSlot = -1
			e.stages[i].svfSlot = -1
		}

		e.topo.capture(&e.params)
	}

	for s := stage(0); s < e.topo.stages(); s++ {
		st := &e.stages[s]
		wasDirty := st.dirty

		if wasDirty {
			st.dirty = false
			e.design(s)
		}

		if wasDirty || relayout {
			e.place(s)
		}
	}

	if !relayout {
		return nil
	}

	e.topologyChanged = false

	return &e.topo
}

// design recomputes the cached sections of s from the current snapshot.
// Disabled stages keep their previous cache; it is rewritten on enable.
func (e *CoeffEngine) design(s stage) {
	st := &e.stages[s]
	recip := e.sampleRateRecip

	if !s.isPass() {
		b := &e.params.Bands[s.band()]
		if !b.Enabled {
			return
		}

		st.svf[0] = designBand(b, recip)

		return
	}

	pp := &e.params.Lowpass
	if s == stageHighpass {
		pp = &e.params.Highpass
	}

	if !pp.Enabled {
		return
	}

	designPass(st, pp, s == stageLowpass, recip)
}

func designBand(b *BandParams, recip float64) svf.Coefficients {
	switch b.Type {
	case Bell:
		return svf.Bell(b.CutoffHz, b.Q, b.GainDB, recip)
	case LowShelf:
		return svf.LowShelf(b.CutoffHz, b.Q, b.GainDB, recip)
	case HighShelf:
		return svf.HighShelf(b.CutoffHz, b.Q, b.GainDB, recip)
	case Notch:
		return svf.Notch(b.CutoffHz, b.Q, recip)
	case Allpass:
		return svf.Allpass(b.CutoffHz, b.Q, recip)
	default:
		return svf.NoOp
	}
}

func designPass(st *coeffStage, pp *PassParams, lowpass bool, recip float64) {
	fc, q := pp.CutoffHz, pp.Q

	switch pp.Order {
	case Order1:
		if lowpass {
			st.onePole = onepole.Lowpass(fc, recip)
		} else {
			st.onePole = onepole.Highpass(fc, recip)
		}
	case Order2:
		if lowpass {
			st.svf[0] = svf.LowpassOrd2(fc, q, recip)
		} else {
			st.svf[0] = svf.HighpassOrd2(fc, q, recip)
		}
	case Order4:
		var c [2]svf.Coefficients
		if lowpass {
			c = svf.LowpassOrd4(fc, q, recip)
		} else {
			c = svf.HighpassOrd4(fc, q, recip)
		}

		copy(st.svf[:], c[:])
	case Order6:
		var c [3]svf.Coefficients
		if lowpass {
			c = svf.LowpassOrd6(fc, q, recip)
		} else {
			c = svf.HighpassOrd6(fc, q, recip)
		}

		copy(st.svf[:], c[:])
	default:
		if lowpass {
			st.svf = svf.LowpassOrd8(fc, q, recip)
		} else {
			st.svf = svf.HighpassOrd8(fc, q, recip)
		}
	}
}

// place writes the cached sections of s into the dense arrays, reusing the
// stage's slots when it has them and appending otherwise.
func (e *CoeffEngine) place(s stage) {
	st := &e.stages[s]
	nOnePole, nSVF := e.topo.sections(s)

	if nOnePole > 0 {
		if st.onePoleSlot < 0 {
			st.onePoleSlot = len(e.onePole)
			e.onePole = append(e.onePole, st.onePole)
		} else {
			e.onePole[st.onePoleSlot] = st.onePole
		}
	}

	if nSVF > 0 {
		if st.svfSlot < 0 {
			st.svfSlot = len(e.svf)
			e.svf = append(e.svf, st.svf[:nSVF]...)
		} else {
			copy(e.svf[st.svfSlot:st.svfSlot+nSVF], st.svf[:nSVF])
		}
	}
}

// OnePole returns the dense one-pole coefficient array. Callers must not
// modify it.
func (e *CoeffEngine) OnePole() []onepole.Coefficients {
	return e.onePole
}

// SVF returns the dense SVF coefficient array. Callers must not modify it.
func (e *CoeffEngine) SVF() []svf.Coefficients {
	return e.svf
}

// Topology returns the shape the dense arrays currently follow.
func (e *CoeffEngine) Topology() *Topology {
	return &e.topo
}

// Empty reports whether no section is active.
func (e *CoeffEngine) Empty() bool {
	return len(e.onePole) == 0 && len(e.svf) == 0
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("eq: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return nil
}

func validateBands(bands int) error {
	if bands < 0 {
		return fmt.Errorf("eq: band count must be >= 0: %d", bands)
	}

	return nil
}
