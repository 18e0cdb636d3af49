package grating

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectro/spectral/axis"
	"github.com/cwbudde/algo-spectro/spectral/refindex"
)

// Errors returned by grating functions.
var (
	ErrInvalidAngle       = errors.New("grating: angles must be finite and the deviation angle positive")
	ErrInvalidFocalLength = errors.New("grating: focal length must be positive")
	ErrInvalidCCDWidth    = errors.New("grating: CCD width must be positive")
	ErrInvalidWavelength  = errors.New("grating: central wavelength must be positive")
	ErrInvalidDensity     = errors.New("grating: groove density must be positive")
	ErrTooFewChannels     = errors.New("grating: need at least 2 channels")
	ErrNoSolution         = errors.New("grating: no diffraction solution for this geometry")
)

// Config describes the spectrometer geometry.
type Config struct {
	GammaDeg            float64 // inclination of the focal plane in degrees
	DeviationAngleDeg   float64 // angle between incident and diffracted beam in degrees
	FocalLengthMM       float64 // focal length in mm
	CCDWidthMM          float64 // total width of the CCD in mm
	CentralWavelengthNM float64 // wavelength diffracted onto the CCD centre in nm
	GratingDensityGrMM  float64 // groove density in grooves per mm
	Channels            int     // number of CCD channels
}

// Validate checks that the Config parameters are valid.
func (c *Config) Validate() error {
	if c.DeviationAngleDeg <= 0 || math.IsNaN(c.GammaDeg) || math.IsInf(c.GammaDeg, 0) {
		return ErrInvalidAngle
	}

	if c.FocalLengthMM <= 0 {
		return ErrInvalidFocalLength
	}

	if c.CCDWidthMM <= 0 {
		return ErrInvalidCCDWidth
	}

	if c.CentralWavelengthNM <= 0 {
		return ErrInvalidWavelength
	}

	if c.GratingDensityGrMM <= 0 {
		return ErrInvalidDensity
	}

	if c.Channels < 2 {
		return ErrTooFewChannels
	}

	return nil
}

// Solve computes the wavelength axis spanned by the CCD.
//
// The incidence angle follows from the grating equation at the central
// wavelength,
//
//	sin(α) + sin(α+δ) = 10⁻⁶ d λc,
//
// with δ the deviation angle and d the groove density. The diffraction
// angles at the two CCD edges follow from the focal-plane geometry, give
// the edge wavelengths, and those are corrected for the refractive index
// of air. The result is a uniform ascending axis named "Wavelength" in nm.
func (c *Config) Solve() (*axis.Axis, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	gamma := c.GammaDeg * math.Pi / 180
	deviation := c.DeviationAngleDeg * math.Pi / 180
	ch := float64(c.Channels)

	// Perpendicular distance from the grating to the spectral plane, and
	// the offset of the central wavelength on that plane.
	lh := c.FocalLengthMM * math.Cos(gamma)
	hblc := c.FocalLengthMM * math.Sin(gamma)

	// Incidence angle from the grating equation at the central wavelength.
	sinTerm := 1e-6 * c.GratingDensityGrMM * c.CentralWavelengthNM / (2 * math.Cos(deviation/2))
	if sinTerm > 1 {
		return nil, ErrNoSolution
	}

	alpha := math.Asin(sinTerm) - deviation/2
	beta := alpha + deviation

	// Diffraction angles subtended by the two CCD edges.
	pitch := c.CCDWidthMM / ch
	betaMin := beta + gamma - math.Atan((pitch*ch/2-hblc)/lh)
	betaMax := beta + gamma - math.Atan((pitch*(1-ch/2)-hblc)/lh)

	lmin := math.Abs(1e6 * (math.Sin(alpha) + math.Sin(betaMin)) / c.GratingDensityGrMM)
	lmax := math.Abs(1e6 * (math.Sin(alpha) + math.Sin(betaMax)) / c.GratingDensityGrMM)

	// The edge wavelengths come out in vacuum; the CCD sits in air.
	nmin, _ := refindex.Air(lmin)
	nmax, _ := refindex.Air(lmax)
	lmin /= nmin
	lmax /= nmax

	if lmin >= lmax {
		return nil, ErrNoSolution
	}

	return axis.NewUniform("Wavelength", axis.UnitNanometre, lmin, (lmax-lmin)/ch, c.Channels)
}
