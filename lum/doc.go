// Package lum provides the per-signal layer of algo-spectro: a minimal
// luminescence-signal container and the operations that act on it.
//
// The container deliberately stops short of a generic n-dimensional array
// library. A Signal holds a flat float64 block whose fastest-varying
// dimension aligns with the last signal axis; navigation dimensions are
// carried only as a shape. That is exactly the surface the core needs:
// axis conversion rewrites slices along the spectral axis and leaves every
// other dimension untouched.
//
// The conversion entry points ToEnergy, ToWavenumber and ToRamanShift
// orchestrate the full transformation: precondition checks, non-uniform
// target axis construction, re-sorting to ascending storage order with the
// intensity and variance slices kept paired, Jacobian rescaling (unless
// disabled), and the one-way reset of the linear noise model. By default a
// new Signal is returned; mutation of the receiver is strictly opt-in via
// InPlace.
//
// Signal types form a closed tagged-variant set rather than an inheritance
// chain; shared behavior (Normalize, ScaleByExposure, RemoveNegative,
// CropEdges, Centroid) is provided as methods on Signal, Join as a
// package-level constructor over several signals, and ResolveType retags
// a signal after a dimensionality-reducing operation based on the
// remaining signal axis.
package lum
