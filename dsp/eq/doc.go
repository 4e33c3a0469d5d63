// Package eq implements a real-time parametric equalizer: an optional
// multi-order low-pass stage, an optional multi-order high-pass stage and N
// optional second-order bands (bell, shelves, notch, allpass), applied in
// that order to every channel.
//
// Parameters travel through a two-phase protocol so they can change between
// any two blocks without glitches or allocation:
//
//	SetParams  -> CoeffEngine.Set    diff against the stored snapshot, mark dirty
//	           -> CoeffEngine.Flush  recompute dirty coefficients; on a shape
//	                                 change return a *Topology
//	           -> StateEngine.Sync   per channel, re-lay-out filter memory
//	Process    -> tick the dense coefficient arrays against each channel's
//	              dense state arrays
//
// Both engines lay out their dense arrays by walking the same canonical
// stage order (low-pass, high-pass, bands 0..N-1), so coefficient slot i and
// state slot i always belong to the same section. Tuning changes (cutoff, Q,
// gain) rewrite coefficients in place and never touch state; topology
// changes (a stage enabled or disabled, a pass-stage order change) rebuild
// both layouts, keeping the memory of every stage that stays active and
// starting newly activated stages from silence.
//
// All storage is sized at construction. Process, SetParams and
// FlushParamChanges do not allocate.
//
// Basic usage:
//
//	p, err := eq.New(48000, 4)
//	params := p.Params()
//	params.Bands[0] = eq.BandParams{Enabled: true, Type: eq.Bell, CutoffHz: 1000, Q: 1, GainDB: 6}
//	_ = p.SetParams(params)
//	_ = p.Process([][]float64{left, right})
package eq
