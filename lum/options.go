package lum

import "fmt"

// settings collects the option state shared by the signal operations.
type settings struct {
	inplace      bool
	jacobian     bool
	laserNM      float64
	warn         func(string)
	window       int
	scale        bool
	scaleFactors []float64
	base         float64
	position     float64
	hasPosition  bool
	elementWise  bool
	exposure     float64
}

func defaultSettings() settings {
	return settings{
		jacobian: true,
		scale:    true,
		window:   50,
		base:     1,
	}
}

func applySettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func (s *settings) warnf(format string, args ...any) {
	if s.warn != nil {
		s.warn(fmt.Sprintf(format, args...))
	}
}

// Option mutates the settings of a signal operation.
type Option func(*settings)

// InPlace makes the operation mutate the receiver instead of returning a
// fresh copy. Callers holding other references to the signal observe the
// mutation; this is strictly opt-in.
func InPlace() Option {
	return func(s *settings) { s.inplace = true }
}

// NoJacobian disables intensity and variance rescaling during an axis
// conversion: only the coordinates are relabeled. This deviates from
// physical correctness and is left to the caller's responsibility.
func NoJacobian() Option {
	return func(s *settings) { s.jacobian = false }
}

// WithLaser sets the excitation laser wavelength in nm, taking precedence
// over the value stored in the signal metadata.
func WithLaser(wavelengthNM float64) Option {
	return func(s *settings) { s.laserNM = wavelengthNM }
}

// WithWarningHandler installs a sink for non-fatal warnings (range clamps,
// noise-model resets). The default discards them.
func WithWarningHandler(fn func(msg string)) Option {
	return func(s *settings) { s.warn = fn }
}

// WithWindow sets the half-width in samples of the window around the
// overlap midpoint used by Join to estimate the seam scale factor
// (default 50).
func WithWindow(r int) Option {
	return func(s *settings) {
		if r > 0 {
			s.window = r
		}
	}
}

// NoScale makes Join concatenate spectra without seam scaling.
func NoScale() Option {
	return func(s *settings) { s.scale = false }
}

// WithScaleFactors overrides the estimated seam scale factors in Join; one
// factor per seam, applied to the later spectrum.
func WithScaleFactors(factors ...float64) Option {
	return func(s *settings) { s.scaleFactors = factors }
}

// WithBaseValue sets the replacement value used by RemoveNegative
// (default 1).
func WithBaseValue(v float64) Option {
	return func(s *settings) { s.base = v }
}

// AtPosition makes Normalize scale the intensity at the given signal-axis
// coordinate to one, instead of the maximum.
func AtPosition(x float64) Option {
	return func(s *settings) {
		s.position = x
		s.hasPosition = true
	}
}

// ElementWise makes Normalize treat every navigation position separately.
func ElementWise() Option {
	return func(s *settings) { s.elementWise = true }
}

// WithIntegrationTime sets the exposure in seconds for ScaleByExposure,
// taking precedence over the value stored in the signal metadata.
func WithIntegrationTime(seconds float64) Option {
	return func(s *settings) { s.exposure = seconds }
}
