package lum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/spectral/axis"
)

// Join stitches two or more overlapping 1-D spectra into a single spectrum.
// Inputs must share axis units, have ascending axes and no navigation
// dimensions, and each consecutive pair must overlap. At every seam the
// later spectrum is rescaled so that its mean intensity over a window of
// ±r samples around the overlap midpoint matches the earlier one; pass
// WithScaleFactors to supply factors directly or NoScale to skip scaling.
// Variances are carried through, scaled by the squared factor.
func Join(spectra []*Signal, opts ...Option) (*Signal, error) {
	set := applySettings(opts)

	if len(spectra) < 2 {
		return nil, ErrTooFewSpectra
	}
	if set.scaleFactors != nil && len(set.scaleFactors) != len(spectra)-1 {
		return nil, fmt.Errorf("%w: %d factors for %d seams",
			ErrScaleCount, len(set.scaleFactors), len(spectra)-1)
	}

	var units axis.Unit
	for i, sp := range spectra {
		if len(sp.NavShape) != 0 || len(sp.Axes) != 1 {
			return nil, fmt.Errorf("%w: input %d", ErrNotSpectrum, i)
		}
		if !sp.Axes[0].Ascending() {
			return nil, fmt.Errorf("%w: input %d has a descending axis", ErrNotSpectrum, i)
		}
		if i == 0 {
			units = sp.Axes[0].Units
		} else if sp.Axes[0].Units != units {
			return nil, fmt.Errorf("%w: input %d has units %s, want %s",
				ErrUnitMismatch, i, sp.Axes[0].Units, units)
		}
	}

	// Work on copies so the seam scaling never leaks into the inputs.
	parts := make([]*Signal, len(spectra))
	for i, sp := range spectra {
		parts[i] = sp.Clone()
	}

	anyVar := false
	for _, sp := range parts {
		if sp.Var != nil {
			anyVar = true
		}
	}

	cuts := make([][2]int, len(parts)-1)

	for seam := 0; seam < len(parts)-1; seam++ {
		left, right := parts[seam], parts[seam+1]
		a1, a2 := left.Axes[0], right.Axes[0]

		omin := a2.Min()
		omax := a1.Max()
		if omin > omax {
			return nil, fmt.Errorf("%w: seam %d covers [%g, %g]", ErrNoOverlap, seam, omin, omax)
		}

		mid := (omin + omax) / 2
		i1 := a1.IndexOf(mid)
		i2 := a2.IndexOf(mid)

		factor := 1.0
		switch {
		case set.scaleFactors != nil:
			factor = set.scaleFactors[seam]
		case set.scale:
			r := set.window
			if i1-r < 0 || i1+r >= a1.Size() || i2-r < 0 || i2+r >= a2.Size() {
				return nil, fmt.Errorf("%w: seam %d needs ±%d samples around the midpoint",
					ErrWindowTooLarge, seam, r)
			}
			m1 := mean(left.Data[i1-r : i1+r+1])
			m2 := mean(right.Data[i2-r : i2+r+1])
			if m1 <= 0 || m2 <= 0 {
				return nil, fmt.Errorf("%w: seam %d window means %g and %g",
					ErrNonPositiveOverlap, seam, m1, m2)
			}
			factor = m1 / m2
		}

		if factor != 1 {
			vecmath.ScaleBlockInPlace(right.Data, factor)
			if right.Var != nil && !right.Var.IsScalar() {
				vecmath.ScaleBlockInPlace(right.Var.Data(), factor*factor)
			} else if right.Var != nil {
				right.Var = ScalarVariance(right.Var.Scalar() * factor * factor)
			}
		}

		// Hand the midpoint sample to the earlier spectrum.
		if a1.At(i1) >= a2.At(i2) {
			i2++
		}
		cuts[seam] = [2]int{i1, i2}
	}

	var coords, data, varData []float64
	promote := func(sp *Signal, lo, hi int) []float64 {
		if sp.Var == nil {
			return make([]float64, hi-lo)
		}
		if sp.Var.IsScalar() {
			out := make([]float64, hi-lo)
			for i := range out {
				out[i] = sp.Var.Scalar()
			}
			return out
		}
		return sp.Var.Data()[lo:hi]
	}

	for i, sp := range parts {
		lo, hi := 0, sp.Axes[0].Size()
		if i > 0 {
			lo = cuts[i-1][1]
		}
		if i < len(cuts) {
			hi = cuts[i][0] + 1
		}
		if lo >= hi {
			return nil, fmt.Errorf("%w: input %d is fully shadowed by its neighbours",
				ErrNoOverlap, i)
		}

		coords = append(coords, sp.Axes[0].Values()[lo:hi]...)
		data = append(data, sp.Data[lo:hi]...)
		if anyVar {
			varData = append(varData, promote(sp, lo, hi)...)
		}
	}

	first := parts[0].Axes[0]
	joined, err := axis.NewNonUniform(first.Name, first.Units, coords)
	if err != nil {
		return nil, err
	}

	out := &Signal{
		Type: parts[0].Type,
		Axes: []*axis.Axis{joined},
		Data: data,
		Meta: parts[0].Meta.clone(),
	}
	if anyVar {
		out.Var = ArrayVariance(varData)
	}

	return out, nil
}

func mean(s []float64) float64 {
	return vecmath.Sum(s) / float64(len(s))
}
