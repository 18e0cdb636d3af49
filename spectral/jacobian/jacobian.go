// Package jacobian rescales intensity and variance under spectral-axis
// changes of variable so that the integral over the axis stays invariant
// (see Mooney and Kambhampati, J. Phys. Chem. Lett. 4, 3316 (2013)).
//
// The derivative d(old)/d(new) is computed analytically from the closed-form
// conversion, never by finite differences of the discretized axis, which
// would introduce edge artifacts. The absolute value of the derivative is
// used: axis ordering is handled by the caller, not here. Variance scales
// with the square of the same factor, and a scalar variance must be promoted
// to an array before scaling, since the factor is position-dependent.
package jacobian

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/spectral/convert"
	"github.com/cwbudde/algo-spectro/spectral/refindex"
)

// EnergyFactors returns |dλ/dE| per source-axis unit for a wavelength→energy
// conversion. sourceNM and energyEV must be pairing-aligned (sourceNM[i] is
// the wavelength that mapped to energyEV[i]); lengthScale is the length of
// one source-axis unit in nm. The refractive index is evaluated at the
// source wavelength, matching the forward conversion.
func EnergyFactors(sourceNM, energyEV []float64, lengthScale float64) []float64 {
	if len(sourceNM) != len(energyEV) {
		panic("jacobian: sourceNM and energyEV length mismatch")
	}

	out := make([]float64, len(energyEV))
	for i, ev := range energyEV {
		n, _ := refindex.Air(sourceNM[i])
		out[i] = convert.HCNmEV / (lengthScale * n * ev * ev)
	}

	return out
}

// WavenumberFactors returns |dλ/dν̃| per source-axis unit for a
// wavelength→wavenumber conversion, evaluated at the absolute wavenumbers
// in cm⁻¹.
func WavenumberFactors(wavenumber []float64, lengthScale float64) []float64 {
	out := make([]float64, len(wavenumber))
	for i, wn := range wavenumber {
		out[i] = 1e7 / (lengthScale * wn * wn)
	}

	return out
}

// RamanShiftFactors returns |dλ/d(shift)| per source-axis unit for a
// wavelength→Raman-shift conversion. The derivative equals the absolute
// wavenumber one evaluated at ν̃ = ν̃_laser − shift.
func RamanShiftFactors(shift []float64, laserInvCm, lengthScale float64) []float64 {
	out := make([]float64, len(shift))
	for i, s := range shift {
		wn := laserInvCm - s
		out[i] = 1e7 / (lengthScale * wn * wn)
	}

	return out
}

// Apply multiplies intensity elementwise by the Jacobian factors, in place.
func Apply(intensity, factors []float64) {
	vecmath.MulBlockInPlace(intensity, factors)
}

// ApplyVariance multiplies variance elementwise by the squared Jacobian
// factors, in place (Var(aX) = a²Var(X)).
func ApplyVariance(variance, factors []float64) {
	vecmath.MulBlockInPlace(variance, factors)
	vecmath.MulBlockInPlace(variance, factors)
}

// Promote broadcasts a scalar variance to an array of length n. A constant
// variance cannot stay scalar across a Jacobian transformation because the
// scaling factor is position-dependent.
func Promote(scalar float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scalar
	}

	return out
}
