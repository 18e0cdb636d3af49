// Package refindex computes the wavelength-dependent refractive index of
// air used for wavelength-energy conversions.
//
// The implementation is the closed-form dispersion formula of E.R. Peck and
// K. Reeder, "Dispersion of air", J. Opt. Soc. Am. 62, 958-962 (1972),
// valid from 185 nm to 1700 nm. Outside that range the index is not
// extrapolated: the boundary value is substituted and the clamp is reported
// to the caller.
package refindex

// Validity range of the Peck & Reeder formula in nanometres.
const (
	MinWavelengthNM = 185.0
	MaxWavelengthNM = 1700.0
)

// Published Peck & Reeder coefficients; the formula operates on the inverse
// square of the wavelength in micrometres.
const (
	peckConst = 8.06051e-5
	peckNum1  = 2.480990e-2
	peckDen1  = 132.274
	peckNum2  = 1.74557e-4
	peckDen2  = 39.32957
)

// Air returns the refractive index of air at the given wavelength in nm.
//
// Wavelengths outside [MinWavelengthNM, MaxWavelengthNM] are clamped to the
// nearest boundary; clamped reports whether that happened. Clamping is
// non-fatal: the boundary index is a better substitute than an extrapolated
// one.
func Air(wavelengthNM float64) (n float64, clamped bool) {
	wl := wavelengthNM
	if wl < MinWavelengthNM {
		wl = MinWavelengthNM
		clamped = true
	}
	if wl > MaxWavelengthNM {
		wl = MaxWavelengthNM
		clamped = true
	}

	invSq := 1 / (wl / 1000 * wl / 1000) // inverse µm²
	n = 1 + peckConst + peckNum1/(peckDen1-invSq) + peckNum2/(peckDen2-invSq)

	return n, clamped
}

// AirInto evaluates Air for every wavelength in src, writing the indices to
// dst. dst and src must have equal length; dst may alias src. clamped
// reports whether any wavelength fell outside the validity range.
func AirInto(dst, src []float64) (clamped bool) {
	if len(dst) != len(src) {
		panic("refindex: dst and src length mismatch")
	}

	for i, wl := range src {
		n, c := Air(wl)
		dst[i] = n
		clamped = clamped || c
	}

	return clamped
}
