// Package smooth conditions raw spectra before axis transformation.
//
// Lowpass removes high-frequency acquisition noise from slowly varying
// spectra with an FFT brick-wall filter. Despike removes isolated cosmic
// ray hits with a running median/MAD outlier test. Both are pure
// slice-in/slice-out functions that never modify their input.
package smooth
