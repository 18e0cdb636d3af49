package smooth

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"
)

var (
	// ErrEmptyData indicates an empty input spectrum.
	ErrEmptyData = errors.New("smooth: empty input data")
	// ErrInvalidCutoff indicates a low-pass cutoff outside (0, 1].
	ErrInvalidCutoff = errors.New("smooth: cutoff must be in (0, 1]")
	// ErrInvalidWindow indicates a despike window half-width below 1.
	ErrInvalidWindow = errors.New("smooth: window half-width must be at least 1")
	// ErrInvalidThreshold indicates a non-positive despike threshold.
	ErrInvalidThreshold = errors.New("smooth: threshold must be positive")
)

// Lowpass smooths a spectrum with an FFT brick-wall low-pass filter.
// cutoff is the retained fraction of the spectral bandwidth in (0, 1];
// a cutoff of 1 keeps every bin and returns the input unchanged up to
// round-off. The input is padded to a power of two by extending the edge
// values, which avoids the wrap-around ringing of plain zero padding.
func Lowpass(data []float64, cutoff float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if cutoff <= 0 || cutoff > 1 || math.IsNaN(cutoff) {
		return nil, ErrInvalidCutoff
	}

	n := len(data)
	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	// Edge-extended padding: left half of the pad holds the first sample,
	// right half the last one.
	padded := make([]complex128, fftSize)
	for i, v := range data {
		padded[i] = complex(v, 0)
	}
	for i := n; i < n+(fftSize-n)/2; i++ {
		padded[i] = complex(data[n-1], 0)
	}
	for i := n + (fftSize-n)/2; i < fftSize; i++ {
		padded[i] = complex(data[0], 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	// Zero every bin above the cutoff, keeping the spectrum conjugate
	// symmetric so the inverse stays real.
	keep := int(cutoff * float64(fftSize/2))
	if keep < 1 {
		keep = 1
	}
	for k := keep + 1; k <= fftSize-keep-1; k++ {
		freq[k] = 0
	}

	time := make([]complex128, fftSize)
	if err := plan.Inverse(time, freq); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(time[i])
	}

	return out, nil
}

// Despike replaces isolated outliers with the local median. A sample is
// an outlier when it deviates from the median of its ±window neighbourhood
// by more than nsigma robust standard deviations, estimated from the
// median absolute deviation. The sample itself is excluded from the
// neighbourhood; in a perfectly flat neighbourhood (zero MAD) any
// deviation counts as a spike.
func Despike(data []float64, window int, nsigma float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if window < 1 {
		return nil, ErrInvalidWindow
	}
	if nsigma <= 0 || math.IsNaN(nsigma) {
		return nil, ErrInvalidThreshold
	}

	// MAD to standard deviation for a normal distribution.
	const madScale = 1.4826

	n := len(data)
	out := make([]float64, n)
	copy(out, data)

	buf := make([]float64, 0, 2*window+1)

	for i := 0; i < n; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > n {
			hi = n
		}

		buf = buf[:0]
		for j := lo; j < hi; j++ {
			if j != i {
				buf = append(buf, data[j])
			}
		}

		med := median(buf)

		for j := range buf {
			buf[j] = math.Abs(buf[j] - med)
		}
		mad := median(buf)

		switch {
		case mad > 0:
			if math.Abs(data[i]-med) > nsigma*madScale*mad {
				out[i] = med
			}
		case data[i] != med:
			out[i] = med
		}
	}

	return out, nil
}

// median sorts s in place and returns its middle value.
func median(s []float64) float64 {
	sort.Float64s(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return 0.5 * (s[m-1] + s[m])
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
