// Package onepole provides a first-order (one-pole) IIR runtime primitive
// with exponential-decay low-pass and high-pass designs.
//
// The recurrence is
//
//	z1 = a0*x + b1*z1
//	y  = m0*x + m1*z1
//
// where the output mix selects low-pass (m0=0, m1=1) or high-pass
// (m0=1, m1=-1) from the same smoothed memory.
package onepole
