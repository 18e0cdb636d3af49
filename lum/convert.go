package lum

import (
	"github.com/cwbudde/algo-spectro/spectral/axis"
	"github.com/cwbudde/algo-spectro/spectral/convert"
	"github.com/cwbudde/algo-spectro/spectral/jacobian"
)

const clampWarning = "wavelength range exceeds the 185-1700 nm validity " +
	"interval of the air refractive index; boundary values were substituted"

const resetWarning = "variance linear model parameters were reset to " +
	"gain 1, offset 0, correlation 1: they are defined relative to the old " +
	"axis unit and do not survive a Jacobian transformation"

// ToEnergy converts the spectral axis from wavelength to photon energy in
// eV, rescaling intensity and variance by the Jacobian |dλ/dE| unless
// NoJacobian is given. The current axis must be in nm or µm; converting an
// energy or wavenumber axis back requires the pure inverse functions, not
// chaining. A new signal is returned unless InPlace is given.
func (s *Signal) ToEnergy(opts ...Option) (*Signal, error) {
	return s.convertSpectralAxis(opts, func(ax *axis.Axis, _ *settings) (*convert.Result, []float64, error) {
		res, err := convert.EnergyAxis(ax)
		if err != nil {
			return nil, nil, err
		}

		factors := jacobian.EnergyFactors(res.SourceNM, res.Axis.Values(), res.LengthScale)
		return res, factors, nil
	})
}

// ToWavenumber converts the spectral axis from wavelength to absolute
// wavenumber in cm⁻¹. See ToEnergy for the shared contract.
func (s *Signal) ToWavenumber(opts ...Option) (*Signal, error) {
	return s.convertSpectralAxis(opts, func(ax *axis.Axis, _ *settings) (*convert.Result, []float64, error) {
		res, err := convert.WavenumberAxis(ax)
		if err != nil {
			return nil, nil, err
		}

		factors := jacobian.WavenumberFactors(res.Axis.Values(), res.LengthScale)
		return res, factors, nil
	})
}

// ToRamanShift converts the spectral axis from wavelength to Raman shift in
// cm⁻¹ relative to the excitation laser line. The laser wavelength is
// resolved in priority order: WithLaser option, then signal metadata;
// without either, ErrNoLaser is returned. See ToEnergy for the shared
// contract.
func (s *Signal) ToRamanShift(opts ...Option) (*Signal, error) {
	return s.convertSpectralAxis(opts, func(ax *axis.Axis, set *settings) (*convert.Result, []float64, error) {
		laser := set.laserNM
		if laser == 0 {
			laser = s.Meta.LaserWavelengthNM
		}
		if laser == 0 {
			return nil, nil, ErrNoLaser
		}

		res, err := convert.RamanShiftAxis(ax, laser)
		if err != nil {
			return nil, nil, err
		}

		factors := jacobian.RamanShiftFactors(res.Axis.Values(), convert.NmToInvCm(laser), res.LengthScale)
		return res, factors, nil
	})
}

// convertSpectralAxis runs the shared conversion sequence: validate, build
// the new coordinates and Jacobian factors, re-sort to ascending storage
// order, rescale, replace the axis, reset the linear noise model. All
// failures are detected before any mutation.
func (s *Signal) convertSpectralAxis(opts []Option, build func(*axis.Axis, *settings) (*convert.Result, []float64, error)) (*Signal, error) {
	set := applySettings(opts)

	ax := s.SignalAxis()
	if ax == nil {
		return nil, ErrNoSignalAxis
	}

	res, factors, err := build(ax, &set)
	if err != nil {
		return nil, err
	}

	target := s
	if !set.inplace {
		target = s.Clone()
	}

	if res.Clamped {
		set.warnf(clampWarning)
	}

	rowLen := ax.Size()

	if set.jacobian && target.Var != nil && target.Var.IsScalar() {
		// A constant variance cannot survive position-dependent scaling.
		target.Var = ArrayVariance(jacobian.Promote(target.Var.Scalar(), len(target.Data)))
	}

	if res.Reversed {
		reverseRows(target.Data, rowLen)
		if target.Var != nil && !target.Var.IsScalar() {
			reverseRows(target.Var.Data(), rowLen)
		}
	}

	if set.jacobian {
		target.rows(func(row []float64) {
			jacobian.Apply(row, factors)
		})

		if target.Var != nil {
			varData := target.Var.Data()
			for off := 0; off < len(varData); off += rowLen {
				jacobian.ApplyVariance(varData[off:off+rowLen], factors)
			}
		}

		if target.Meta.LinearModel != nil {
			if *target.Meta.LinearModel != NeutralLinearModel() {
				set.warnf(resetWarning)
			}
			neutral := NeutralLinearModel()
			target.Meta.LinearModel = &neutral
		}
	}

	target.Axes[len(target.Axes)-1] = res.Axis

	return target, nil
}
