package lum

import "errors"

// Errors returned by signal operations. All fatal conditions are detected
// before any mutation of the target signal.
var (
	// ErrShapeMismatch indicates the data length does not match the
	// navigation and signal axis sizes.
	ErrShapeMismatch = errors.New("lum: data length does not match navigation and signal axis sizes")
	// ErrVarianceShape indicates an array variance whose shape differs from
	// the intensity data.
	ErrVarianceShape = errors.New("lum: variance shape does not match intensity shape")
	// ErrNoSignalAxis indicates an operation that needs a signal axis was
	// called on a navigation-only signal.
	ErrNoSignalAxis = errors.New("lum: signal has no signal axis")
	// ErrAxisNotFound indicates no signal axis carries the requested name.
	ErrAxisNotFound = errors.New("lum: no signal axis with that name")
	// ErrNoLaser indicates a Raman-shift conversion with no resolvable
	// laser wavelength.
	ErrNoLaser = errors.New("lum: no laser wavelength given and none present in metadata")
	// ErrAmbiguousAxis indicates the axis remaining after a reduction has
	// no recognizable unit, so the result type cannot be resolved.
	ErrAmbiguousAxis = errors.New("lum: remaining signal axis has no recognizable unit")
	// ErrNotSpectrum indicates an operation that needs a plain 1D spectrum.
	ErrNotSpectrum = errors.New("lum: operation requires a 1D spectrum without navigation")
	// ErrTooFewSpectra indicates Join was called with fewer than two inputs.
	ErrTooFewSpectra = errors.New("lum: join needs at least two spectra")
	// ErrUnitMismatch indicates spectra to be joined carry different axis
	// units.
	ErrUnitMismatch = errors.New("lum: spectra must share the same axis unit")
	// ErrNoOverlap indicates consecutive spectra have no overlapping
	// coordinate range.
	ErrNoOverlap = errors.New("lum: consecutive spectra do not overlap")
	// ErrWindowTooLarge indicates the scale-estimation window does not fit
	// inside the spectra around the overlap midpoint.
	ErrWindowTooLarge = errors.New("lum: scale window exceeds the overlap range")
	// ErrNonPositiveOverlap indicates a non-positive mean intensity inside
	// the scale-estimation window.
	ErrNonPositiveOverlap = errors.New("lum: non-positive mean intensity in the overlap window")
	// ErrScaleCount indicates WithScaleFactors supplied a factor count
	// different from the number of seams.
	ErrScaleCount = errors.New("lum: need exactly one scale factor per seam")
	// ErrNormalized indicates an operation on counts was requested after
	// normalization discarded the amplitude.
	ErrNormalized = errors.New("lum: data was normalized and no longer contains counts")
	// ErrAlreadyScaled indicates repeated exposure scaling.
	ErrAlreadyScaled = errors.New("lum: data was already scaled by exposure")
	// ErrNoExposure indicates exposure scaling with no resolvable
	// integration time.
	ErrNoExposure = errors.New("lum: no integration time given and none present in metadata")
	// ErrCropTooLarge indicates an edge crop that would remove the whole
	// navigation region.
	ErrCropTooLarge = errors.New("lum: cropped edges surpass the navigation dimensions")
	// ErrNavShape indicates an operation that needs a 1D or 2D navigation
	// grid.
	ErrNavShape = errors.New("lum: operation requires a 1D or 2D navigation shape")
	// ErrNoIntensity indicates a normalization whose reference intensity
	// is zero or NaN.
	ErrNoIntensity = errors.New("lum: reference intensity is zero or not a number")
)
