package svf

// Coefficients holds the feedback coefficients (A1..A3) and output mix
// (M0..M2) of one SVF section.
type Coefficients struct {
	A1, A2, A3 float64
	M0, M1, M2 float64
}

// NoOp passes the input through unchanged regardless of state.
var NoOp = Coefficients{M0: 1}

// State is the integrator memory of one SVF section.
type State struct {
	IC1, IC2 float64
}

// Tick advances the section by one sample and returns the output.
func (s *State) Tick(x float64, c *Coefficients) float64 {
	v3 := x - s.IC2
	v1 := c.A1*s.IC1 + c.A2*v3
	v2 := s.IC2 + c.A2*s.IC1 + c.A3*v3
	s.IC1 = 2*v1 - s.IC1
	s.IC2 = 2*v2 - s.IC2

	return c.M0*x + c.M1*v1 + c.M2*v2
}

// ProcessBlock filters buf in-place through one section. Zero-alloc.
func (s *State) ProcessBlock(buf []float64, c *Coefficients) {
	a1, a2, a3 := c.A1, c.A2, c.A3
	m0, m1, m2 := c.M0, c.M1, c.M2
	ic1, ic2 := s.IC1, s.IC2

	for i, x := range buf {
		v3 := x - ic2
		v1 := a1*ic1 + a2*v3
		v2 := ic2 + a2*ic1 + a3*v3
		ic1 = 2*v1 - ic1
		ic2 = 2*v2 - ic2
		buf[i] = m0*x + m1*v1 + m2*v2
	}

	s.IC1, s.IC2 = ic1, ic2
}

// Reset clears the integrator memory.
func (s *State) Reset() {
	s.IC1 = 0
	s.IC2 = 0
}

// ImpulseResponse returns n samples of the impulse response of c starting
// from zero state.
func (c *Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	var s State

	ir := make([]float64, n)
	ir[0] = s.Tick(1, c)

	for i := 1; i < n; i++ {
		ir[i] = s.Tick(0, c)
	}

	return ir
}
