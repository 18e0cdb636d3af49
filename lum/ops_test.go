package lum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/spectral/axis"
)

func TestRemoveNegative(t *testing.T) {
	s, err := NewSpectrum(TypeCL, wavelengthAxis(t, 400, 1, 4), []float64{1, -2, 3, -0.5})
	require.NoError(t, err)

	out := s.RemoveNegative()
	assert.Equal(t, []float64{1, 1, 3, 1}, out.Data)
	assert.True(t, out.Meta.NegativeRemoved)

	// Default is copy semantics.
	assert.Equal(t, -2.0, s.Data[1])
	assert.False(t, s.Meta.NegativeRemoved)

	out = s.RemoveNegative(WithBaseValue(0))
	assert.Equal(t, []float64{1, 0, 3, 0}, out.Data)

	s.RemoveNegative(InPlace())
	assert.Equal(t, []float64{1, 1, 3, 1}, s.Data)
}

func TestScaleByExposure(t *testing.T) {
	s, err := NewSpectrum(TypeCL, wavelengthAxis(t, 400, 1, 4), []float64{2, 4, 6, 8})
	require.NoError(t, err)
	s.Meta.IntegrationTimeS = 2
	s.Var = ScalarVariance(4)

	out, err := s.ScaleByExposure()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, out.Data)
	assert.Equal(t, 1.0, out.Var.Scalar())
	assert.True(t, out.Meta.ExposureScaled)

	_, err = out.ScaleByExposure()
	require.ErrorIs(t, err, ErrAlreadyScaled)
}

func TestScaleByExposureOptionWins(t *testing.T) {
	s, err := NewSpectrum(TypeCL, wavelengthAxis(t, 400, 1, 2), []float64{4, 8})
	require.NoError(t, err)
	s.Meta.IntegrationTimeS = 2

	out, err := s.ScaleByExposure(WithIntegrationTime(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out.Data)
	assert.Equal(t, 4.0, out.Meta.IntegrationTimeS)
}

func TestScaleByExposureErrors(t *testing.T) {
	s, err := NewSpectrum(TypeCL, wavelengthAxis(t, 400, 1, 2), []float64{4, 8})
	require.NoError(t, err)

	_, err = s.ScaleByExposure()
	require.ErrorIs(t, err, ErrNoExposure)

	s.Meta.Normalized = true
	_, err = s.ScaleByExposure(WithIntegrationTime(2))
	require.ErrorIs(t, err, ErrNormalized)
}

func TestNormalizeToMaximum(t *testing.T) {
	s, err := NewSpectrum(TypePL, wavelengthAxis(t, 400, 1, 4), []float64{1, 4, 2, 1})
	require.NoError(t, err)

	out, err := s.Normalize()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1, 0.5, 0.25}, out.Data)
	assert.True(t, out.Meta.Normalized)
	assert.Equal(t, 4.0, s.Data[1])
}

func TestNormalizeAtPosition(t *testing.T) {
	s, err := NewSpectrum(TypePL, wavelengthAxis(t, 400, 1, 4), []float64{1, 4, 2, 1})
	require.NoError(t, err)

	// 402 nm is index 2, intensity 2.
	out, err := s.Normalize(AtPosition(402))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2, 1, 0.5}, out.Data)
}

func TestNormalizeElementWise(t *testing.T) {
	data := []float64{1, 2, 4, 3, 6, 12}
	s, err := New(TypePL, []int{2}, []*axis.Axis{wavelengthAxis(t, 400, 1, 3)}, data)
	require.NoError(t, err)

	out, err := s.Normalize(ElementWise())
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5, 1, 0.25, 0.5, 1}, out.Data)
}

func TestNormalizeDropsVariance(t *testing.T) {
	s, err := NewSpectrum(TypePL, wavelengthAxis(t, 400, 1, 2), []float64{1, 2})
	require.NoError(t, err)
	s.Var = ScalarVariance(1)

	var warned bool
	out, err := s.Normalize(WithWarningHandler(func(string) { warned = true }))
	require.NoError(t, err)
	assert.Nil(t, out.Var)
	assert.True(t, warned)
}

func TestNormalizeZeroReference(t *testing.T) {
	s, err := NewSpectrum(TypePL, wavelengthAxis(t, 400, 1, 2), []float64{0, 0})
	require.NoError(t, err)

	_, err = s.Normalize()
	require.ErrorIs(t, err, ErrNoIntensity)
}

func TestCropEdges(t *testing.T) {
	// A 3x4 map of 2-sample spectra with data[i] = i.
	data := make([]float64, 3*4*2)
	for i := range data {
		data[i] = float64(i)
	}
	s, err := New(TypeCLSEM, []int{3, 4}, []*axis.Axis{wavelengthAxis(t, 400, 1, 2)}, data)
	require.NoError(t, err)

	out, err := s.CropEdges(1, 1, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, out.NavShape)
	require.NoError(t, out.Validate())
	// Row 1, columns 1 and 2 of the original grid.
	assert.Equal(t, []float64{10, 11, 12, 13}, out.Data)
	assert.Equal(t, [4]int{1, 1, 1, 1}, out.Meta.CroppedEdges)

	// Untouched source.
	assert.Equal(t, []int{3, 4}, s.NavShape)
}

func TestCropEdgesAccumulates(t *testing.T) {
	data := make([]float64, 5*5)
	s, err := New(TypeCLSEM, []int{5, 5}, []*axis.Axis{wavelengthAxis(t, 400, 1, 1)}, data)
	require.NoError(t, err)

	out, err := s.CropEdges(1, 0, 0, 0)
	require.NoError(t, err)
	out, err = out.CropEdges(0, 1, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, [4]int{1, 1, 1, 0}, out.Meta.CroppedEdges)
	assert.Equal(t, []int{4, 3}, out.NavShape)
}

func TestCropEdgesErrors(t *testing.T) {
	s, err := NewSpectrum(TypeCL, wavelengthAxis(t, 400, 1, 2), []float64{1, 2})
	require.NoError(t, err)
	_, err = s.CropEdges(1, 0, 0, 0)
	require.ErrorIs(t, err, ErrNavShape)

	grid, err := New(TypeCLSEM, []int{2, 2}, []*axis.Axis{wavelengthAxis(t, 400, 1, 1)}, make([]float64, 4))
	require.NoError(t, err)
	_, err = grid.CropEdges(1, 1, 0, 0)
	require.ErrorIs(t, err, ErrCropTooLarge)
	_, err = grid.CropEdges(-1, 0, 0, 0)
	require.ErrorIs(t, err, ErrCropTooLarge)
}

func TestCentroid(t *testing.T) {
	coords := []float64{200, 300, 400, 500, 600, 700}
	ax, err := axis.NewNonUniform("Wavelength", axis.UnitNanometre, coords)
	require.NoError(t, err)

	s, err := NewSpectrum(TypePL, ax, []float64{1, 2, 3, 2, 1, 0})
	require.NoError(t, err)

	out, err := s.Centroid()
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 400.0, out.Data[0])
	assert.Empty(t, out.Axes)
}

func TestCentroidInterpolatesIndexSpace(t *testing.T) {
	// The centre of mass lives in index space and maps onto the axis by
	// linear interpolation, not by a coordinate-weighted mean.
	coords := []float64{0, 10, 100}
	ax, err := axis.NewNonUniform("Wavelength", axis.UnitNanometre, coords)
	require.NoError(t, err)

	s, err := NewSpectrum(TypePL, ax, []float64{1, 1, 0})
	require.NoError(t, err)

	out, err := s.Centroid()
	require.NoError(t, err)
	// Index centroid 0.5, halfway between 0 and 10 nm.
	assert.Equal(t, 5.0, out.Data[0])
}

func TestCentroidPerNavigationRow(t *testing.T) {
	data := []float64{
		1, 0, 0, // all weight at 400 nm
		0, 0, 0, // empty row
	}
	s, err := New(TypePL, []int{2}, []*axis.Axis{wavelengthAxis(t, 400, 100, 3)}, data)
	require.NoError(t, err)

	out, err := s.Centroid()
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, 400.0, out.Data[0])
	assert.True(t, math.IsNaN(out.Data[1]))
	assert.Equal(t, []int{2}, out.NavShape)
}

func TestCentroidNeedsSpectrum(t *testing.T) {
	s := transientSpectrum(t)
	_, err := s.Centroid()
	require.ErrorIs(t, err, ErrNotSpectrum)
}
