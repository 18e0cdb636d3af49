package jacobian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectral/axis"
	"github.com/cwbudde/algo-spectro/spectral/convert"
)

func TestEnergyFactorsReferenceValue(t *testing.T) {
	// 100 counts/nm at 390 nm converts to 12271.168 counts/eV
	// (reference value from the documented worked example, expressed per
	// eV rather than per meV).
	ax, _ := axis.NewUniform("Wavelength", axis.UnitNanometre, 200, 10, 20)
	res, err := convert.EnergyAxis(ax)
	require.NoError(t, err)

	factors := EnergyFactors(res.SourceNM, res.Axis.Values(), res.LengthScale)

	assert.InEpsilon(t, 12271.168, 100*factors[0], 1e-5)
}

func TestEnergyFactorsMicrometreScale(t *testing.T) {
	// Per-µm intensities are 1000x the per-nm ones over the same physical
	// range; the µm factors must be 1000x smaller so both paths agree.
	nm := []float64{300, 400, 500}
	ev := make([]float64, 3)
	convert.NmToEVInto(ev, nm)

	fNm := EnergyFactors(nm, ev, 1)
	fUm := EnergyFactors(nm, ev, 1000)

	for i := range fNm {
		assert.InEpsilon(t, fNm[i], 1000*fUm[i], 1e-12)
	}
}

func TestWavenumberFactors(t *testing.T) {
	wn := []float64{20000, 25000}
	f := WavenumberFactors(wn, 1)

	assert.InEpsilon(t, 1e7/(20000.0*20000.0), f[0], 1e-12)
	assert.InEpsilon(t, 1e7/(25000.0*25000.0), f[1], 1e-12)
}

func TestRamanShiftFactorsMatchAbsolute(t *testing.T) {
	// The derivative at shift s equals the absolute-wavenumber one at
	// ν̃_laser − s.
	laserInvCm := convert.NmToInvCm(532)
	shift := []float64{0, 500, 1500}

	got := RamanShiftFactors(shift, laserInvCm, 1)
	for i, s := range shift {
		want := 1e7 / ((laserInvCm - s) * (laserInvCm - s))
		assert.InEpsilon(t, want, got[i], 1e-12)
	}
}

func TestApplyScalesIntensity(t *testing.T) {
	intensity := []float64{1, 2, 3}
	Apply(intensity, []float64{2, 0.5, 10})

	assert.Equal(t, []float64{2, 1, 30}, intensity)
}

func TestApplyVarianceSquareLaw(t *testing.T) {
	// Constant variance v with known derivative d gives v*d² pointwise.
	const v = 7.0
	factors := []float64{0.5, 2, 3}
	variance := Promote(v, len(factors))

	ApplyVariance(variance, factors)

	for i, d := range factors {
		if math.Abs(variance[i]-v*d*d) > 1e-12 {
			t.Fatalf("variance[%d] = %v, want %v", i, variance[i], v*d*d)
		}
	}
}

func TestPromote(t *testing.T) {
	out := Promote(2.5, 4)

	assert.Len(t, out, 4)
	for _, v := range out {
		assert.Equal(t, 2.5, v)
	}
}

func TestIntegralInvariance(t *testing.T) {
	// A Gaussian peak integrated over wavelength keeps its integral when
	// converted to the energy axis with Jacobian scaling.
	const n = 401
	wl := testutil.Linspace(400, 800, n)
	intensity := testutil.GaussianPeak(wl, 600, 40, 1)

	before := testutil.Trapezoid(wl, intensity)

	ax, err := axis.NewNonUniform("Wavelength", axis.UnitNanometre, wl)
	require.NoError(t, err)
	res, err := convert.EnergyAxis(ax)
	require.NoError(t, err)

	// Reverse intensity to keep pairing with the ascending energy axis.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		intensity[i], intensity[j] = intensity[j], intensity[i]
	}

	factors := EnergyFactors(res.SourceNM, res.Axis.Values(), res.LengthScale)
	Apply(intensity, factors)

	after := testutil.Trapezoid(res.Axis.Values(), intensity)

	assert.InEpsilon(t, before, after, 1e-3)
}
