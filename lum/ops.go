package lum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RemoveNegative replaces every strictly negative intensity sample with a
// constant base value (default 1, see WithBaseValue). Variance is left
// untouched. The replacement is recorded in the metadata so downstream
// quantitative steps can detect it.
func (s *Signal) RemoveNegative(opts ...Option) *Signal {
	set := applySettings(opts)

	target := s
	if !set.inplace {
		target = s.Clone()
	}

	for i, v := range target.Data {
		if v < 0 {
			target.Data[i] = set.base
		}
	}
	target.Meta.NegativeRemoved = true

	return target
}

// ScaleByExposure divides the intensity by the integration time in
// seconds, converting counts to count rates. The exposure is resolved in
// priority order: WithIntegrationTime option, then signal metadata;
// without either, ErrNoExposure is returned. Scaling twice or scaling a
// normalized signal is refused.
func (s *Signal) ScaleByExposure(opts ...Option) (*Signal, error) {
	set := applySettings(opts)

	if s.Meta.ExposureScaled {
		return nil, ErrAlreadyScaled
	}
	if s.Meta.Normalized {
		return nil, ErrNormalized
	}

	exposure := set.exposure
	if exposure == 0 {
		exposure = s.Meta.IntegrationTimeS
	}
	if exposure <= 0 {
		return nil, ErrNoExposure
	}

	target := s
	if !set.inplace {
		target = s.Clone()
	}

	inv := 1 / exposure
	vecmath.ScaleBlockInPlace(target.Data, inv)
	if target.Var != nil {
		if target.Var.IsScalar() {
			target.Var = ScalarVariance(target.Var.Scalar() * inv * inv)
		} else {
			vecmath.ScaleBlockInPlace(target.Var.Data(), inv*inv)
		}
	}
	target.Meta.ExposureScaled = true
	target.Meta.IntegrationTimeS = exposure

	return target, nil
}

// Normalize scales the intensity so that its maximum, or the sample at
// the coordinate given by AtPosition, becomes one. By default the whole
// data block shares a single factor; ElementWise normalizes every
// navigation position against its own reference. Variance is invalidated
// by normalization and dropped with a warning; the normalization is
// recorded in the metadata.
func (s *Signal) Normalize(opts ...Option) (*Signal, error) {
	set := applySettings(opts)

	ax := s.SignalAxis()
	if ax == nil {
		return nil, ErrNoSignalAxis
	}

	target := s
	if !set.inplace {
		target = s.Clone()
	}

	ref := func(row []float64) float64 {
		if set.hasPosition {
			return row[ax.IndexOf(set.position)]
		}
		m := row[0]
		for _, v := range row[1:] {
			if v > m {
				m = v
			}
		}
		return m
	}

	if set.elementWise {
		var rowErr error
		target.rows(func(row []float64) {
			if rowErr != nil {
				return
			}
			r := ref(row)
			if r == 0 || math.IsNaN(r) {
				rowErr = fmt.Errorf("%w: reference intensity is %g", ErrNoIntensity, r)
				return
			}
			vecmath.ScaleBlockInPlace(row, 1/r)
		})
		if rowErr != nil {
			return nil, rowErr
		}
	} else {
		var r float64
		if set.hasPosition {
			// Reference the peak column across the whole block.
			idx := ax.IndexOf(set.position)
			rowLen := ax.Size()
			for off := idx; off < len(target.Data); off += rowLen {
				if target.Data[off] > r {
					r = target.Data[off]
				}
			}
		} else {
			r = target.Data[0]
			for _, v := range target.Data[1:] {
				if v > r {
					r = v
				}
			}
		}
		if r == 0 || math.IsNaN(r) {
			return nil, fmt.Errorf("%w: reference intensity is %g", ErrNoIntensity, r)
		}
		vecmath.ScaleBlockInPlace(target.Data, 1/r)
	}

	if target.Var != nil {
		set.warnf("variance does not survive normalization and was dropped")
		target.Var = nil
	}
	target.Meta.Normalized = true

	return target, nil
}

// CropEdges trims pixels from the borders of a two-dimensional navigation
// grid, in order left, right, top, bottom. Signals without a 2-D
// navigation shape are rejected, as are crops that consume a whole
// dimension.
func (s *Signal) CropEdges(left, right, top, bottom int, opts ...Option) (*Signal, error) {
	set := applySettings(opts)

	if len(s.NavShape) != 2 {
		return nil, fmt.Errorf("%w: navigation shape %v", ErrNavShape, s.NavShape)
	}
	if left < 0 || right < 0 || top < 0 || bottom < 0 {
		return nil, fmt.Errorf("%w: negative crop amount", ErrCropTooLarge)
	}

	// NavShape is (rows, columns): rows index the vertical direction.
	nrows, ncols := s.NavShape[0], s.NavShape[1]
	if top+bottom >= nrows || left+right >= ncols {
		return nil, fmt.Errorf("%w: crop (%d, %d, %d, %d) on a %dx%d grid",
			ErrCropTooLarge, left, right, top, bottom, nrows, ncols)
	}

	sig := s.SignalSize()
	newRows := nrows - top - bottom
	newCols := ncols - left - right

	crop := func(src []float64) []float64 {
		out := make([]float64, newRows*newCols*sig)
		for r := 0; r < newRows; r++ {
			srcOff := ((r+top)*ncols + left) * sig
			dstOff := r * newCols * sig
			copy(out[dstOff:dstOff+newCols*sig], src[srcOff:srcOff+newCols*sig])
		}
		return out
	}

	target := s
	if !set.inplace {
		target = s.Clone()
	}

	target.Data = crop(s.Data)
	if target.Var != nil && !target.Var.IsScalar() {
		target.Var = ArrayVariance(crop(s.Var.Data()))
	}
	target.NavShape = []int{newRows, newCols}
	target.Meta.CroppedEdges = [4]int{
		s.Meta.CroppedEdges[0] + left,
		s.Meta.CroppedEdges[1] + right,
		s.Meta.CroppedEdges[2] + top,
		s.Meta.CroppedEdges[3] + bottom,
	}

	return target, nil
}

// Centroid computes the spectroscopic centre of mass for every navigation
// position: the intensity-weighted mean sample index, mapped onto the
// signal axis with linear interpolation between the two bracketing
// coordinates. The result is a map over the navigation grid with no
// signal axes; rows with zero total intensity yield NaN. The variance of
// a ratio statistic is not propagated.
func (s *Signal) Centroid() (*Signal, error) {
	ax := s.SignalAxis()
	if ax == nil {
		return nil, ErrNoSignalAxis
	}
	if len(s.Axes) != 1 {
		return nil, fmt.Errorf("%w: %d signal axes", ErrNotSpectrum, len(s.Axes))
	}

	coords := ax.Values()
	out := make([]float64, s.NavSize())

	i := 0
	s.rows(func(row []float64) {
		out[i] = centroidOf(row, coords)
		i++
	})

	navShape := make([]int, len(s.NavShape))
	copy(navShape, s.NavShape)

	return &Signal{
		Type:     TypeGeneric,
		NavShape: navShape,
		Data:     out,
		Meta:     s.Meta.clone(),
	}, nil
}

// centroidOf maps the index-space centre of mass of row onto coords.
func centroidOf(row, coords []float64) float64 {
	total := vecmath.Sum(row)
	if total == 0 {
		return math.NaN()
	}

	var weighted float64
	for i, v := range row {
		weighted += float64(i) * v
	}
	idx := weighted / total

	if idx <= 0 {
		return coords[0]
	}
	if idx >= float64(len(coords)-1) {
		return coords[len(coords)-1]
	}

	j := int(idx)
	rem := idx - float64(j)
	return coords[j] + rem*(coords[j+1]-coords[j])
}
