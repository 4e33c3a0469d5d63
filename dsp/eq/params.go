package eq

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/svf"
)

// DefaultQ is the Butterworth second-order quality factor.
const DefaultQ = svf.QButterworthOrd2

const (
	defaultBandCutoffHz     = 1000.0
	defaultHighpassCutoffHz = 20.0
	defaultLowpassCutoffHz  = 21480.0

	minCutoffHz     = 1.0
	maxCutoffRatio  = 0.499
	minQ            = 0.025
	maxQ            = 40.0
	maxGainDBMagnit = 48.0
)

// FilterOrder is the slope of a multi-order pass stage.
type FilterOrder int

const (
	Order1 FilterOrder = iota
	Order2
	Order4
	Order6
	Order8
)

// FilterOrderFromIndex maps a host parameter index to an order. Indices past
// the end saturate at Order8.
func FilterOrderFromIndex(i int) FilterOrder {
	switch i {
	case 0:
		return Order1
	case 1:
		return Order2
	case 2:
		return Order4
	case 3:
		return Order6
	default:
		return Order8
	}
}

// ParseFilterOrder parses "1", "2", "4", "6" or "8".
func ParseFilterOrder(s string) (FilterOrder, error) {
	for o := Order1; o <= Order8; o++ {
		if o.String() == strings.TrimSpace(s) {
			return o, nil
		}
	}

	return Order1, fmt.Errorf("eq: invalid filter order %q", s)
}

// Poles returns the number of poles (the filter order as a number).
func (o FilterOrder) Poles() int {
	switch o {
	case Order1:
		return 1
	case Order2:
		return 2
	case Order4:
		return 4
	case Order6:
		return 6
	default:
		return 8
	}
}

// Sections returns how many one-pole and SVF sections the order occupies.
func (o FilterOrder) Sections() (onePole, svf int) {
	if o == Order1 {
		return 1, 0
	}

	return 0, o.Poles() / 2
}

func (o FilterOrder) String() string {
	return fmt.Sprint(o.Poles())
}

// BandType selects the response of a second-order band.
type BandType int

const (
	Bell BandType = iota
	LowShelf
	HighShelf
	Notch
	Allpass
)

var bandTypeNames = [...]string{"bell", "lowshelf", "highshelf", "notch", "allpass"}

// BandTypeFromIndex maps a host parameter index to a band type. Indices past
// the end saturate at Allpass.
func BandTypeFromIndex(i int) BandType {
	if i < 0 || i > int(Allpass) {
		return Allpass
	}

	return BandType(i)
}

// ParseBandType parses a band type name as returned by String.
func ParseBandType(s string) (BandType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range bandTypeNames {
		if n == name {
			return BandType(i), nil
		}
	}

	return Bell, fmt.Errorf("eq: invalid band type %q", s)
}

func (t BandType) String() string {
	if t < 0 || int(t) >= len(bandTypeNames) {
		return "unknown"
	}

	return bandTypeNames[t]
}

// BandParams describes one second-order band.
type BandParams struct {
	Enabled  bool
	Type     BandType
	CutoffHz float64
	Q        float64
	GainDB   float64
}

// DefaultBandParams returns a disabled 1 kHz notch.
func DefaultBandParams() BandParams {
	return BandParams{
		Type:     Notch,
		CutoffHz: defaultBandCutoffHz,
		Q:        DefaultQ,
	}
}

// PassParams describes the low-pass or high-pass multi-order stage.
type PassParams struct {
	Enabled  bool
	CutoffHz float64
	Q        float64
	Order    FilterOrder
}

// Params is the complete, comparable-by-value description of an equalizer
// setting. The band count is len(Bands) and must match the engine it is
// applied to.
type Params struct {
	Lowpass  PassParams
	Highpass PassParams
	Bands    []BandParams
}

// DefaultParams returns a neutral setting with every stage disabled: the
// high-pass parked at 20 Hz, the low-pass near Nyquist, both order 2.
func DefaultParams(bands int) Params {
	p := Params{
		Lowpass: PassParams{
			CutoffHz: defaultLowpassCutoffHz,
			Q:        DefaultQ,
			Order:    Order2,
		},
		Highpass: PassParams{
			CutoffHz: defaultHighpassCutoffHz,
			Q:        DefaultQ,
			Order:    Order2,
		},
		Bands: make([]BandParams, max(bands, 0)),
	}

	for i := range p.Bands {
		p.Bands[i] = DefaultBandParams()
	}

	return p
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := p
	out.Bands = append([]BandParams(nil), p.Bands...)

	return out
}

// Equal reports whether p and other describe the same setting.
func (p Params) Equal(other Params) bool {
	if p.Lowpass != other.Lowpass || p.Highpass != other.Highpass || len(p.Bands) != len(other.Bands) {
		return false
	}

	for i := range p.Bands {
		if p.Bands[i] != other.Bands[i] {
			return false
		}
	}

	return true
}

// Clamp limits cutoffs to (0, Nyquist), Q to a usable range and gains to
// +/-48 dB for the given sample rate. The engines themselves do not
// validate; hosts that accept arbitrary input call this first.
func (p *Params) Clamp(sampleRate float64) {
	maxCutoff := sampleRate * maxCutoffRatio

	clampPass := func(pp *PassParams) {
		pp.CutoffHz = core.Clamp(pp.CutoffHz, minCutoffHz, maxCutoff)
		pp.Q = core.Clamp(pp.Q, minQ, maxQ)
		pp.Order = FilterOrderFromIndex(int(core.Clamp(float64(pp.Order), float64(Order1), float64(Order8))))
	}

	clampPass(&p.Lowpass)
	clampPass(&p.Highpass)

	for i := range p.Bands {
		b := &p.Bands[i]
		b.Type = BandTypeFromIndex(int(b.Type))
		b.CutoffHz = core.Clamp(b.CutoffHz, minCutoffHz, maxCutoff)
		b.Q = core.Clamp(b.Q, minQ, maxQ)
		b.GainDB = core.Clamp(b.GainDB, -maxGainDBMagnit, maxGainDBMagnit)
	}
}
