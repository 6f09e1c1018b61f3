// Package spectral estimates the quaternion spectral density of bivariate
// signals and its per-frequency Stokes decomposition.
//
// Estimates expose, per frequency bin, the four Stokes parameters of the
// quaternion Fourier transform: S0 is the power spectral density and
// S1..S3 describe the polarization state at that frequency. Normalizing
// an estimate additionally yields the degree of polarization Phi(nu).
//
// Two estimators are provided: the raw [Periodogram] and the sine-taper
// [Multitaper], which trades frequency resolution for variance by
// averaging orthonormal tapered periodograms. Estimates over the same
// frequency axis can be combined with [Estimate.Add] and
// [Estimate.Scale], e.g. for Welch-style averaging across records.
package spectral
