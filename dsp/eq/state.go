package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/onepole"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
)

// stateStage holds the memory of one stage while it is not laid out in the
// dense arrays, together with the shape it was last synced to.
type stateStage struct {
	enabled bool
	order   FilterOrder
	onePole onepole.State
	svf     [maxCascade]svf.State
}

func (s *stateStage) reset() {
	s.onePole.Reset()

	for i := range s.svf {
		s.svf[i].Reset()
	}
}

// StateEngine owns the filter memory of one channel. Its dense arrays are
// index-aligned with the CoeffEngine arrays after every Sync.
type StateEngine struct {
	stages  []stateStage
	onePole []onepole.State
	svf     []svf.State
}

// NewStateEngine creates the state of one channel for a fixed band count.
// All stages start disabled.
func NewStateEngine(bands int) (*StateEngine, error) {
	if err := validateBands(bands); err != nil {
		return nil, err
	}

	return newStateEngine(bands), nil
}

func newStateEngine(bands int) *StateEngine {
	return &StateEngine{
		stages:  make([]stateStage, int(stageFirstBand)+bands),
		onePole: make([]onepole.State, 0, maxOnePole),
		svf:     make([]svf.State, 0, svfCapacity(bands)),
	}
}

// Sync re-lays the dense arrays out for t while keeping the memory of every
// stage that stays enabled with the same order. Stages that become enabled
// start from zero, and a stage whose order changes is reset.
//
// t must come from a CoeffEngine with the same band count; Sync panics
// otherwise.
func (e *StateEngine) Sync(t *Topology) {
	if int(t.stages()) != len(e.stages) {
		panic(fmt.Sprintf("eq: topology has %d bands, state engine has %d",
			len(t.BandsEnabled), len(e.stages)-int(stageFirstBand)))
	}

	var opCursor, svfCursor int

	for s := stage(0); s < t.stages(); s++ {
		st := &e.stages[s]

		if st.enabled {
			nOnePole, nSVF := footprint(s, st.enabled, st.order)
			if nOnePole > 0 {
				st.onePole = e.onePole[opCursor]
				opCursor += nOnePole
			}

			copy(st.svf[:nSVF], e.svf[svfCursor:svfCursor+nSVF])
			svfCursor += nSVF
		} else {
			st.reset()
		}

		enabled, order := t.shape(s)
		if st.enabled && enabled && st.order != order {
			st.reset()
		}

		st.enabled = enabled
		st.order = order
	}

	e.onePole = e.onePole[:0]
	e.svf = e.svf[:0]

	for s := range e.stages {
		st := &e.stages[s]

		nOnePole, nSVF := footprint(stage(s), st.enabled, st.order)
		if nOnePole > 0 {
			e.onePole = append(e.onePole, st.onePole)
		}

		e.svf = append(e.svf, st.svf[:nSVF]...)
	}
}

// Reset zeroes all filter memory without changing the layout.
func (e *StateEngine) Reset() {
	for i := range e.stages {
		e.stages[i].reset()
	}

	for i := range e.onePole {
		e.onePole[i].Reset()
	}

	for i := range e.svf {
		e.svf[i].Reset()
	}
}

// OnePole returns the dense one-pole memory, aligned with CoeffEngine.OnePole.
func (e *StateEngine) OnePole() []onepole.State {
	return e.onePole
}

// SVF returns the dense SVF memory, aligned with CoeffEngine.SVF.
func (e *StateEngine) SVF() []svf.State {
	return e.svf
}
