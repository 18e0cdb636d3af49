// Package grating derives the wavelength axis of a spectrometer CCD from
// its optical geometry by solving the grating equation.
//
// The model follows the Czerny-Turner layout: light of the grating's
// central wavelength is diffracted onto the centre of the focal plane, and
// the wavelength at each CCD edge follows from the diffraction angle
// subtended by that edge. The two edge wavelengths are corrected for the
// refractive index of air and span a uniform axis across the channels.
package grating
