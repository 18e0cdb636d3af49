package convert

import (
	"github.com/cwbudde/algo-spectro/spectral/refindex"
)

// CODATA 2018 exact values.
const (
	planck           = 6.62607015e-34  // J s
	lightSpeed       = 2.99792458e8    // m/s
	elementaryCharge = 1.602176634e-19 // C
)

// HCNmEV is the vacuum wavelength-energy product 1e9*h*c/e in nm·eV.
const HCNmEV = 1e9 * planck * lightSpeed / elementaryCharge

// estimateNmEV is the vacuum estimate used to pick the refractive-index
// wavelength for the inverse energy conversion.
const estimateNmEV = 1239.5

// NmToEV converts a wavelength in nm to photon energy in eV using the
// wavelength-dependent refractive index of air. clamped reports whether the
// wavelength fell outside the validity range of the dispersion formula.
func NmToEV(wavelengthNM float64) (ev float64, clamped bool) {
	n, clamped := refindex.Air(wavelengthNM)
	return HCNmEV / (n * wavelengthNM), clamped
}

// EVToNm converts a photon energy in eV to wavelength in nm. The refractive
// index is evaluated at the vacuum wavelength estimate 1239.5/E.
func EVToNm(ev float64) (wavelengthNM float64, clamped bool) {
	n, clamped := refindex.Air(estimateNmEV / ev)
	return HCNmEV / (n * ev), clamped
}

// NmToInvCm converts a wavelength in nm to absolute wavenumber in cm⁻¹.
func NmToInvCm(wavelengthNM float64) float64 {
	return 1e7 / wavelengthNM
}

// InvCmToNm converts an absolute wavenumber in cm⁻¹ to wavelength in nm.
func InvCmToNm(wavenumber float64) float64 {
	return 1e7 / wavenumber
}

// NmToRamanShift converts a wavelength in nm to Raman shift in cm⁻¹
// relative to the laser line at laserNM. Stokes-shifted wavelengths
// (longer than the laser wavelength) give positive shifts, anti-Stokes
// negative ones.
func NmToRamanShift(wavelengthNM, laserNM float64) float64 {
	return NmToInvCm(laserNM) - NmToInvCm(wavelengthNM)
}

// RamanShiftToNm converts a Raman shift in cm⁻¹ relative to the laser line
// at laserNM back to wavelength in nm.
func RamanShiftToNm(shift, laserNM float64) float64 {
	return InvCmToNm(NmToInvCm(laserNM) - shift)
}

// NmToEVInto converts every wavelength in src, writing energies to dst.
// dst and src must have equal length; dst may alias src.
func NmToEVInto(dst, src []float64) (clamped bool) {
	checkLen(dst, src)

	for i, wl := range src {
		ev, c := NmToEV(wl)
		dst[i] = ev
		clamped = clamped || c
	}

	return clamped
}

// EVToNmInto converts every energy in src, writing wavelengths to dst.
func EVToNmInto(dst, src []float64) (clamped bool) {
	checkLen(dst, src)

	for i, ev := range src {
		wl, c := EVToNm(ev)
		dst[i] = wl
		clamped = clamped || c
	}

	return clamped
}

// NmToInvCmInto converts every wavelength in src to absolute wavenumbers.
func NmToInvCmInto(dst, src []float64) {
	checkLen(dst, src)

	for i, wl := range src {
		dst[i] = NmToInvCm(wl)
	}
}

// InvCmToNmInto converts every absolute wavenumber in src to wavelengths.
func InvCmToNmInto(dst, src []float64) {
	checkLen(dst, src)

	for i, wn := range src {
		dst[i] = InvCmToNm(wn)
	}
}

// NmToRamanShiftInto converts every wavelength in src to Raman shifts
// relative to laserNM.
func NmToRamanShiftInto(dst, src []float64, laserNM float64) {
	checkLen(dst, src)

	laserInvCm := NmToInvCm(laserNM)
	for i, wl := range src {
		dst[i] = laserInvCm - NmToInvCm(wl)
	}
}

// RamanShiftToNmInto converts every Raman shift in src back to wavelengths.
func RamanShiftToNmInto(dst, src []float64, laserNM float64) {
	checkLen(dst, src)

	laserInvCm := NmToInvCm(laserNM)
	for i, shift := range src {
		dst[i] = InvCmToNm(laserInvCm - shift)
	}
}

func checkLen(dst, src []float64) {
	if len(dst) != len(src) {
		panic("convert: dst and src length mismatch")
	}
}
