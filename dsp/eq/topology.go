package eq

// maxCascade is the largest number of SVF sections one pass stage occupies
// (order 8).
const maxCascade = 4

// maxOnePole bounds the one-pole slots: only an order-1 low-pass and an
// order-1 high-pass ever use one.
const maxOnePole = 2

// svfCapacity is the SVF slot capacity for n bands: two full order-8
// cascades plus one section per band.
func svfCapacity(bands int) int {
	return 2*maxCascade + bands
}

// stage identifies one owner of dense slots. Stages are numbered in the
// canonical order both engines walk: low-pass, high-pass, then bands.
type stage int

const (
	stageLowpass stage = iota
	stageHighpass
	stageFirstBand
)

func (s stage) isPass() bool { return s < stageFirstBand }

func (s stage) band() int { return int(s - stageFirstBand) }

// footprint is the single definition of how many slots a stage occupies.
func footprint(s stage, enabled bool, order FilterOrder) (onePole, svf int) {
	if !enabled {
		return 0, 0
	}

	if s.isPass() {
		return order.Sections()
	}

	return 0, 1
}

// Topology is the shape of the active filter set: which stages are enabled
// and the order of the pass stages. It carries no tuning.
type Topology struct {
	LowpassEnabled  bool
	LowpassOrder    FilterOrder
	HighpassEnabled bool
	HighpassOrder   FilterOrder
	BandsEnabled    []bool
}

func newTopology(bands int) Topology {
	return Topology{
		LowpassOrder:  Order1,
		HighpassOrder: Order1,
		BandsEnabled:  make([]bool, bands),
	}
}

// stages returns the number of stages, i.e. the length of the canonical walk.
func (t *Topology) stages() stage {
	return stageFirstBand + stage(len(t.BandsEnabled))
}

// shape returns the enabled flag and order of s. Bands report Order2.
func (t *Topology) shape(s stage) (enabled bool, order FilterOrder) {
	switch s {
	case stageLowpass:
		return t.LowpassEnabled, t.LowpassOrder
	case stageHighpass:
		return t.HighpassEnabled, t.HighpassOrder
	default:
		return t.BandsEnabled[s.band()], Order2
	}
}

// sections returns the slot footprint of s under t.
func (t *Topology) sections(s stage) (onePole, svf int) {
	enabled, order := t.shape(s)
	return footprint(s, enabled, order)
}

// Totals returns the dense array lengths implied by t.
func (t *Topology) Totals() (onePole, svf int) {
	for s := stage(0); s < t.stages(); s++ {
		op, sv := t.sections(s)
		onePole += op
		svf += sv
	}

	return onePole, svf
}

// Clone returns a caller-owned copy of t.
func (t *Topology) Clone() Topology {
	out := *t
	out.BandsEnabled = append([]bool(nil), t.BandsEnabled...)

	return out
}

// Equal reports whether t and other describe the same shape.
func (t *Topology) Equal(other *Topology) bool {
	if t.LowpassEnabled != other.LowpassEnabled || t.LowpassOrder != other.LowpassOrder ||
		t.HighpassEnabled != other.HighpassEnabled || t.HighpassOrder != other.HighpassOrder ||
		len(t.BandsEnabled) != len(other.BandsEnabled) {
		return false
	}

	for i := range t.BandsEnabled {
		if t.BandsEnabled[i] != other.BandsEnabled[i] {
			return false
		}
	}

	return true
}

// capture overwrites t with the shape of p without allocating.
func (t *Topology) capture(p *Params) {
	t.LowpassEnabled = p.Lowpass.Enabled
	t.LowpassOrder = p.Lowpass.Order
	t.HighpassEnabled = p.Highpass.Enabled
	t.HighpassOrder = p.Highpass.Order

	for i := range t.BandsEnabled {
		t.BandsEnabled[i] = p.Bands[i].Enabled
	}
}
