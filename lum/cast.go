package lum

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectral/axis"
)

// ResolveType re-derives the signal tag from the remaining signal axes
// after a reduction. A single time axis yields a transient, a single
// spectral axis yields a luminescence spectrum. With zero or several
// signal axes the tag is left untouched; a single axis of unknown kind
// is an error.
func (s *Signal) ResolveType() error {
	if len(s.Axes) != 1 {
		return nil
	}

	switch s.Axes[0].Units.Kind() {
	case axis.KindTime:
		s.Type = TypeTransient
	case axis.KindLength, axis.KindEnergy, axis.KindWavenumber:
		s.Type = TypeLuminescence
	default:
		return fmt.Errorf("%w: axis %q has units %s", ErrAmbiguousAxis, s.Axes[0].Name, s.Axes[0].Units)
	}

	return nil
}

// SumOver reduces the signal axis named name by summation, removing it
// from the axis list and re-deriving the signal tag. Array variances are
// summed alongside; scalar variances are multiplied by the axis length,
// matching the sum of independent equal-variance terms.
func (s *Signal) SumOver(name string) (*Signal, error) {
	k, err := s.axisIndex(name)
	if err != nil {
		return nil, err
	}

	outer, size, inner := s.strides(k)

	out := make([]float64, outer*inner)
	reduceAxis(out, s.Data, outer, size, inner, func(acc, v float64) float64 {
		return acc + v
	})

	reduced := s.dropAxis(k, out)

	switch {
	case s.Var == nil:
	case s.Var.IsScalar():
		reduced.Var = ScalarVariance(s.Var.Scalar() * float64(size))
	default:
		varOut := make([]float64, outer*inner)
		reduceAxis(varOut, s.Var.Data(), outer, size, inner, func(acc, v float64) float64 {
			return acc + v
		})
		reduced.Var = ArrayVariance(varOut)
	}

	if err := reduced.ResolveType(); err != nil {
		return reduced, err
	}

	return reduced, nil
}

// MaxOver reduces the signal axis named name by taking the maximum along
// it. The maximum is not a linear statistic, so any variance is dropped.
func (s *Signal) MaxOver(name string) (*Signal, error) {
	k, err := s.axisIndex(name)
	if err != nil {
		return nil, err
	}

	outer, size, inner := s.strides(k)

	out := make([]float64, outer*inner)
	reduceAxis(out, s.Data, outer, size, inner, func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	})

	reduced := s.dropAxis(k, out)
	reduced.Var = nil

	if err := reduced.ResolveType(); err != nil {
		return reduced, err
	}

	return reduced, nil
}

// SliceAt extracts the hyperplane where the signal axis named name is
// closest to value, removing the axis. Variance arrays are sliced at the
// same index; scalar variances carry over unchanged.
func (s *Signal) SliceAt(name string, value float64) (*Signal, error) {
	k, err := s.axisIndex(name)
	if err != nil {
		return nil, err
	}

	idx := s.Axes[k].IndexOf(value)
	outer, size, inner := s.strides(k)

	out := make([]float64, outer*inner)
	sliceAxis(out, s.Data, outer, size, inner, idx)

	reduced := s.dropAxis(k, out)

	switch {
	case s.Var == nil:
	case s.Var.IsScalar():
		reduced.Var = ScalarVariance(s.Var.Scalar())
	default:
		varOut := make([]float64, outer*inner)
		sliceAxis(varOut, s.Var.Data(), outer, size, inner, idx)
		reduced.Var = ArrayVariance(varOut)
	}

	if err := reduced.ResolveType(); err != nil {
		return reduced, err
	}

	return reduced, nil
}

// axisIndex locates a signal axis by name.
func (s *Signal) axisIndex(name string) (int, error) {
	for i, ax := range s.Axes {
		if ax.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrAxisNotFound, name)
}

// strides decomposes the signal block around axis k. outer covers the
// navigation dimensions and all signal axes before k, inner covers the
// axes after it.
func (s *Signal) strides(k int) (outer, size, inner int) {
	outer = 1
	for _, n := range s.NavShape {
		outer *= n
	}
	for i := 0; i < k; i++ {
		outer *= s.Axes[i].Size()
	}

	size = s.Axes[k].Size()

	inner = 1
	for i := k + 1; i < len(s.Axes); i++ {
		inner *= s.Axes[i].Size()
	}

	return outer, size, inner
}

// dropAxis builds a shallow reduced signal sharing metadata with s but
// holding the already-reduced data block and one fewer signal axis.
func (s *Signal) dropAxis(k int, data []float64) *Signal {
	axes := make([]*axis.Axis, 0, len(s.Axes)-1)
	for i, ax := range s.Axes {
		if i != k {
			axes = append(axes, ax.Clone())
		}
	}

	navShape := make([]int, len(s.NavShape))
	copy(navShape, s.NavShape)

	return &Signal{
		Type:     s.Type,
		NavShape: navShape,
		Axes:     axes,
		Data:     data,
		Meta:     s.Meta.clone(),
	}
}

// reduceAxis folds src over the middle dimension of an (outer, size,
// inner) block into out, seeding the accumulator with the first slab.
func reduceAxis(out, src []float64, outer, size, inner int, fold func(acc, v float64) float64) {
	for o := 0; o < outer; o++ {
		base := o * size * inner
		dst := out[o*inner : (o+1)*inner]
		copy(dst, src[base:base+inner])
		for j := 1; j < size; j++ {
			slab := src[base+j*inner : base+(j+1)*inner]
			for i, v := range slab {
				dst[i] = fold(dst[i], v)
			}
		}
	}
}

// sliceAxis copies the idx-th slab of the middle dimension into out.
func sliceAxis(out, src []float64, outer, size, inner, idx int) {
	for o := 0; o < outer; o++ {
		base := o*size*inner + idx*inner
		copy(out[o*inner:(o+1)*inner], src[base:base+inner])
	}
}
