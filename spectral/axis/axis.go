package axis

import (
	"errors"
	"math"
)

// Errors returned by axis constructors.
var (
	ErrEmptyAxis    = errors.New("axis: axis must have at least one coordinate")
	ErrZeroScale    = errors.New("axis: uniform axis scale must be non-zero")
	ErrNotMonotonic = errors.New("axis: coordinates must be strictly monotonic")
	ErrNotFinite    = errors.New("axis: coordinates must be finite")
)

// Axis is an ordered, strictly monotonic spectral or time coordinate vector.
//
// The zero value is not usable; construct axes with NewUniform or
// NewNonUniform.
type Axis struct {
	Name  string
	Units Unit

	uniform bool
	offset  float64
	scale   float64
	size    int
	coords  []float64
}

// NewUniform creates a uniform axis with coordinates offset + i*scale.
func NewUniform(name string, units Unit, offset, scale float64, size int) (*Axis, error) {
	if size < 1 {
		return nil, ErrEmptyAxis
	}

	if scale == 0 && size > 1 {
		return nil, ErrZeroScale
	}

	if math.IsNaN(offset) || math.IsInf(offset, 0) || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrNotFinite
	}

	return &Axis{
		Name:    name,
		Units:   units,
		uniform: true,
		offset:  offset,
		scale:   scale,
		size:    size,
	}, nil
}

// NewNonUniform creates a non-uniform axis from an explicit coordinate vector.
// The vector is copied and must be strictly increasing or strictly decreasing.
func NewNonUniform(name string, units Unit, coords []float64) (*Axis, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyAxis
	}

	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNotFinite
		}
	}

	if !monotonic(coords) {
		return nil, ErrNotMonotonic
	}

	c := make([]float64, len(coords))
	copy(c, coords)

	return &Axis{
		Name:   name,
		Units:  units,
		coords: c,
		size:   len(c),
	}, nil
}

func monotonic(coords []float64) bool {
	if len(coords) < 2 {
		return true
	}

	up := coords[1] > coords[0]
	for i := 1; i < len(coords); i++ {
		if up && coords[i] <= coords[i-1] {
			return false
		}
		if !up && coords[i] >= coords[i-1] {
			return false
		}
	}

	return true
}

// Size returns the number of coordinates.
func (a *Axis) Size() int { return a.size }

// IsUniform reports whether the axis is stored as offset + scale.
func (a *Axis) IsUniform() bool { return a.uniform }

// At returns the coordinate at index i.
func (a *Axis) At(i int) float64 {
	if a.uniform {
		return a.offset + float64(i)*a.scale
	}
	return a.coords[i]
}

// Values materializes the coordinate vector. The returned slice is a copy
// and may be modified freely by the caller.
func (a *Axis) Values() []float64 {
	out := make([]float64, a.size)
	for i := range out {
		out[i] = a.At(i)
	}
	return out
}

// Ascending reports whether coordinates increase with index.
// A single-coordinate axis is considered ascending.
func (a *Axis) Ascending() bool {
	if a.size < 2 {
		return true
	}
	return a.At(1) > a.At(0)
}

// Min returns the smallest coordinate.
func (a *Axis) Min() float64 {
	if a.Ascending() {
		return a.At(0)
	}
	return a.At(a.size - 1)
}

// Max returns the largest coordinate.
func (a *Axis) Max() float64 {
	if a.Ascending() {
		return a.At(a.size - 1)
	}
	return a.At(0)
}

// IndexOf returns the index of the coordinate closest to v.
func (a *Axis) IndexOf(v float64) int {
	best := 0
	bestDist := math.Abs(a.At(0) - v)

	for i := 1; i < a.size; i++ {
		d := math.Abs(a.At(i) - v)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

// ToNonUniform converts a uniform axis to explicit-vector storage in place.
// Non-uniform axes are left unchanged.
func (a *Axis) ToNonUniform() {
	if !a.uniform {
		return
	}

	a.coords = a.Values()
	a.uniform = false
	a.offset = 0
	a.scale = 0
}

// Clone returns a deep copy of the axis.
func (a *Axis) Clone() *Axis {
	c := *a
	if a.coords != nil {
		c.coords = make([]float64, len(a.coords))
		copy(c.coords, a.coords)
	}
	return &c
}
