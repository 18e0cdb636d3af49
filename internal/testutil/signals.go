package testutil

import (
	"math"
	"math/rand"
)

// Linspace generates n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// GaussianPeak evaluates a Gaussian of the given centre, width and height
// at every coordinate.
func GaussianPeak(coords []float64, centre, sigma, height float64) []float64 {
	out := make([]float64, len(coords))
	for i, x := range coords {
		d := x - centre
		out[i] = height * math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

// Trapezoid integrates values over coords with the trapezoidal rule.
func Trapezoid(coords, values []float64) float64 {
	var sum float64
	for i := 1; i < len(coords); i++ {
		sum += 0.5 * (values[i] + values[i-1]) * (coords[i] - coords[i-1])
	}
	return sum
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
