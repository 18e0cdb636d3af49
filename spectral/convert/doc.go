// Package convert maps spectral coordinates between wavelength, photon
// energy and wavenumber representations.
//
// Four paired, mutually inverse conversions are provided in scalar and slice
// form: nm↔eV (corrected for the refractive index of air), nm↔cm⁻¹, and
// nm↔Raman shift (wavenumber relative to an excitation laser line). The
// axis-level helpers EnergyAxis, WavenumberAxis and RamanShiftAxis convert a
// whole spectral axis and report the direction metadata (ascending
// wavelength maps to descending energy and descending wavenumber) that the
// Jacobian stage and the per-signal orchestration need; the data itself is
// never silently re-sorted here.
//
// The nm→eV conversion evaluates the refractive index at the input
// wavelength rather than solving self-consistently at the output energy,
// and the inverse looks it up at the vacuum estimate 1239.5/E nm. Both are
// deliberate closed-form approximations; the error is below the precision
// of the dispersion formula itself.
package convert
