// Package svf provides the linear trapezoidal state variable filter (SVF)
// runtime primitive and its coefficient designs.
//
// The topology is Andrew Simper's "SVF linear trapezoidal optimised" form.
// A [State] holds the two integrator memories of one section; a
// [Coefficients] value holds the three feedback coefficients and the
// three-tap output mix that selects the response:
//
//	v3  = x - ic2
//	v1  = a1*ic1 + a2*v3
//	v2  = ic2 + a2*ic1 + a3*v3
//	ic1 = 2*v1 - ic1
//	ic2 = 2*v2 - ic2
//	y   = m0*x + m1*v1 + m2*v2
//
// Every design derives from the prewarped gain g = tan(pi*fc/fs) and the
// damping k = 1/Q through [FromGK]. Higher-order low/high-pass responses are
// returned as Butterworth cascades of identical-g sections.
package svf
