// Package axis provides the spectral-axis data model used throughout
// algo-spectro.
//
// An Axis is an ordered, strictly monotonic coordinate vector tagged with a
// name and a physical unit. It is either uniform (offset + scale, implicit
// vector) or non-uniform (explicit stored vector). Axis conversions always
// produce non-uniform axes, since the mapping between wavelength, energy and
// wavenumber is non-linear.
//
// Axes are replaced wholesale, never partially mutated: every constructor
// validates monotonicity once, and all later code may rely on it.
package axis
