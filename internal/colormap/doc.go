// Package colormap maps wave amplitudes to false colors.
//
// Amplitudes are clamped to [-1, 1] and rescaled to a brightness in 0..256,
// which each palette turns into an RGB triple:
//
//   - [Ocean], [Monochrome], [Emerald], [Violet], [Fire]: affine in brightness
//   - [Sunset], [Thermal]: split warm/cool ramps
//   - [Rainbow], [Neon]: hue sweeps through [HSVToRGB]
//
// Unknown palette names render as [Ocean].
package colormap
