package convert

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectro/spectral/axis"
)

// Errors returned by the axis-level conversions.
var (
	ErrNotWavelength = errors.New("convert: signal axis must be in wavelength units (nm or µm)")
	ErrNotPositive   = errors.New("convert: wavelength coordinates must be positive")
	ErrInvalidLaser  = errors.New("convert: laser wavelength must be positive")
)

// Result holds a converted spectral axis together with the metadata the
// Jacobian transformation and the per-signal orchestration need.
type Result struct {
	// Axis is the new non-uniform axis with ascending coordinates.
	Axis *axis.Axis
	// SourceNM holds the source wavelengths in nm, reordered so that
	// SourceNM[i] corresponds to Axis coordinate i.
	SourceNM []float64
	// LengthScale is the length of one source-axis unit in nm (1 for nm,
	// 1000 for µm). Jacobian factors are expressed per source-axis unit.
	LengthScale float64
	// Reversed reports whether the conversion flipped the direction of
	// increase, in which case intensity slices must be reversed to keep
	// their pairing with the coordinates.
	Reversed bool
	// Clamped reports whether any wavelength fell outside the validity
	// range of the refractive-index formula.
	Clamped bool
}

// EnergyAxis converts a wavelength axis to photon energy in eV. Ascending
// wavelengths map to descending energies, so the result is reversed back to
// ascending order and flagged accordingly.
func EnergyAxis(ax *axis.Axis) (*Result, error) {
	nm, scale, err := wavelengthsNM(ax)
	if err != nil {
		return nil, err
	}

	coords := make([]float64, len(nm))
	clamped := NmToEVInto(coords, nm)

	res := &Result{
		SourceNM:    nm,
		LengthScale: scale,
		Clamped:     clamped,
	}
	res.orderAscending(coords)

	res.Axis, err = axis.NewNonUniform("Energy", axis.UnitElectronVolt, coords)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// WavenumberAxis converts a wavelength axis to absolute wavenumber in cm⁻¹.
func WavenumberAxis(ax *axis.Axis) (*Result, error) {
	nm, scale, err := wavelengthsNM(ax)
	if err != nil {
		return nil, err
	}

	coords := make([]float64, len(nm))
	NmToInvCmInto(coords, nm)

	res := &Result{
		SourceNM:    nm,
		LengthScale: scale,
	}
	res.orderAscending(coords)

	res.Axis, err = axis.NewNonUniform("Wavenumber", axis.UnitInverseCm, coords)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// RamanShiftAxis converts a wavelength axis to Raman shift in cm⁻¹ relative
// to the laser line at laserNM. The shift increases with wavelength, so no
// reversal occurs for an ascending wavelength axis.
func RamanShiftAxis(ax *axis.Axis, laserNM float64) (*Result, error) {
	if laserNM <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLaser, laserNM)
	}

	nm, scale, err := wavelengthsNM(ax)
	if err != nil {
		return nil, err
	}

	coords := make([]float64, len(nm))
	NmToRamanShiftInto(coords, nm, laserNM)

	res := &Result{
		SourceNM:    nm,
		LengthScale: scale,
	}
	res.orderAscending(coords)

	res.Axis, err = axis.NewNonUniform("Raman Shift", axis.UnitInverseCm, coords)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// wavelengthsNM materializes the axis coordinates in nm, validating that the
// axis is in a length unit with positive coordinates.
func wavelengthsNM(ax *axis.Axis) (nm []float64, scale float64, err error) {
	scale = ax.Units.NanometresPerUnit()
	if scale == 0 {
		return nil, 0, fmt.Errorf("%w: axis unit is %s", ErrNotWavelength, ax.Units)
	}

	nm = ax.Values()
	for i := range nm {
		if nm[i] <= 0 {
			return nil, 0, fmt.Errorf("%w: coordinate %d is %v %s", ErrNotPositive, i, nm[i], ax.Units)
		}
		nm[i] *= scale
	}

	return nm, scale, nil
}

// orderAscending reverses coords and SourceNM together when coords came out
// descending, recording the reversal.
func (r *Result) orderAscending(coords []float64) {
	if len(coords) < 2 || coords[1] > coords[0] {
		return
	}

	reverse(coords)
	reverse(r.SourceNM)
	r.Reversed = true
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
