package lum

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectral/axis"
)

// Variance is the measurement-variance model of a signal: either a scalar
// constant or an array shaped like the intensity data. The absent case is a
// nil *Variance.
type Variance struct {
	scalar bool
	value  float64
	data   []float64
}

// ScalarVariance creates a constant variance model.
func ScalarVariance(v float64) *Variance {
	return &Variance{scalar: true, value: v}
}

// ArrayVariance creates an array-shaped variance model. The slice is
// adopted, not copied.
func ArrayVariance(data []float64) *Variance {
	return &Variance{data: data}
}

// IsScalar reports whether the variance is a scalar constant.
func (v *Variance) IsScalar() bool { return v.scalar }

// Scalar returns the constant value of a scalar variance.
func (v *Variance) Scalar() float64 { return v.value }

// Data returns the backing array of an array-shaped variance.
func (v *Variance) Data() []float64 { return v.data }

// Clone returns a deep copy.
func (v *Variance) Clone() *Variance {
	if v == nil {
		return nil
	}

	c := &Variance{scalar: v.scalar, value: v.value}
	if v.data != nil {
		c.data = make([]float64, len(v.data))
		copy(c.data, v.data)
	}

	return c
}

// VarianceLinearModel holds the parameters of a linear noise model
// Var = gain·(signal + offset), with a correlation factor for binned data.
// The parameters are defined relative to the current axis unit.
type VarianceLinearModel struct {
	GainFactor        float64
	GainOffset        float64
	CorrelationFactor float64
}

// NeutralLinearModel returns the neutral parameters (gain 1, offset 0,
// correlation 1).
func NeutralLinearModel() VarianceLinearModel {
	return VarianceLinearModel{GainFactor: 1, GainOffset: 0, CorrelationFactor: 1}
}

// Metadata carries the instrument and processing state of a signal. It is
// an explicit struct: there are no implicit key-path conventions, and the
// conversion entry points read the laser wavelength from here only as a
// fallback to an explicit option.
type Metadata struct {
	// LaserWavelengthNM is the excitation laser wavelength in nm;
	// zero means not set.
	LaserWavelengthNM float64
	// IntegrationTimeS is the acquisition exposure in seconds; zero means
	// not set.
	IntegrationTimeS float64
	// LinearModel is the stored linear noise model, nil when none is set.
	LinearModel *VarianceLinearModel

	// Processing bookkeeping.
	Normalized      bool
	ExposureScaled  bool
	NegativeRemoved bool
	// CroppedEdges accumulates navigation pixels removed per edge, in the
	// order left, right, top, bottom.
	CroppedEdges [4]int
}

func (m *Metadata) clone() Metadata {
	c := *m
	if m.LinearModel != nil {
		lm := *m.LinearModel
		c.LinearModel = &lm
	}
	return c
}

// Signal is a minimal luminescence-signal container: a flat intensity block
// whose fastest-varying dimension aligns with the last signal axis,
// together with typed axes, an optional variance model and metadata.
//
// Data is laid out in C order: navigation dimensions first (flattened to
// NavShape), then the signal axes from slowest- to fastest-varying.
type Signal struct {
	Type     SignalType
	NavShape []int
	Axes     []*axis.Axis
	Data     []float64
	Var      *Variance
	Meta     Metadata
}

// New creates a signal and validates that the data length matches the
// navigation and signal axis sizes (and the variance shape, if an array
// variance is set later via Validate).
func New(t SignalType, navShape []int, axes []*axis.Axis, data []float64) (*Signal, error) {
	s := &Signal{Type: t, NavShape: navShape, Axes: axes, Data: data}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewSpectrum creates a plain 1D spectrum with no navigation dimensions.
func NewSpectrum(t SignalType, ax *axis.Axis, data []float64) (*Signal, error) {
	return New(t, nil, []*axis.Axis{ax}, data)
}

// Validate checks the shape invariants.
func (s *Signal) Validate() error {
	want := s.NavSize() * s.SignalSize()
	if len(s.Data) != want {
		return fmt.Errorf("%w: have %d values, want %d", ErrShapeMismatch, len(s.Data), want)
	}

	if s.Var != nil && !s.Var.IsScalar() && len(s.Var.Data()) != len(s.Data) {
		return fmt.Errorf("%w: have %d values, want %d", ErrVarianceShape, len(s.Var.Data()), len(s.Data))
	}

	return nil
}

// NavSize returns the flattened navigation size (1 for no navigation).
func (s *Signal) NavSize() int {
	n := 1
	for _, d := range s.NavShape {
		n *= d
	}
	return n
}

// SignalSize returns the product of the signal axis sizes (1 for none).
func (s *Signal) SignalSize() int {
	n := 1
	for _, ax := range s.Axes {
		n *= ax.Size()
	}
	return n
}

// SignalAxis returns the last (fastest-varying) signal axis, or nil when
// the signal has none.
func (s *Signal) SignalAxis() *axis.Axis {
	if len(s.Axes) == 0 {
		return nil
	}
	return s.Axes[len(s.Axes)-1]
}

// Clone returns a deep copy of the signal.
func (s *Signal) Clone() *Signal {
	c := &Signal{Type: s.Type, Meta: s.Meta.clone()}

	if s.NavShape != nil {
		c.NavShape = make([]int, len(s.NavShape))
		copy(c.NavShape, s.NavShape)
	}

	c.Axes = make([]*axis.Axis, len(s.Axes))
	for i, ax := range s.Axes {
		c.Axes[i] = ax.Clone()
	}

	c.Data = make([]float64, len(s.Data))
	copy(c.Data, s.Data)

	c.Var = s.Var.Clone()

	return c
}

// HasSpectralAxis reports whether any signal axis measures a spectral
// quantity (length, energy or wavenumber).
func HasSpectralAxis(s *Signal) bool {
	for _, ax := range s.Axes {
		switch ax.Units.Kind() {
		case axis.KindLength, axis.KindEnergy, axis.KindWavenumber:
			return true
		}
	}
	return false
}

// HasTimeAxis reports whether any signal axis measures time.
func HasTimeAxis(s *Signal) bool {
	for _, ax := range s.Axes {
		if ax.Units.Kind() == axis.KindTime {
			return true
		}
	}
	return false
}

// rows iterates the contiguous runs of Data aligned with the last signal
// axis, calling fn with each run.
func (s *Signal) rows(fn func(row []float64)) {
	rowLen := s.SignalAxis().Size()
	for off := 0; off < len(s.Data); off += rowLen {
		fn(s.Data[off : off+rowLen])
	}
}

// reverseRows reverses each contiguous run of rowLen values in place.
func reverseRows(data []float64, rowLen int) {
	for off := 0; off < len(data); off += rowLen {
		row := data[off : off+rowLen]
		for i, j := 0, rowLen-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}
