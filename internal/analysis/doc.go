// Package analysis turns recorded frame series into numbers.
//
//   - [PowerSpectrum]: one-sided spectrum of a probe cell via go-dsp FFT
//   - [Spectrum.Dominant]: strongest oscillation, used by the analyze command
//   - [Summarize]: min/max/mean/stddev of any series
//   - [DecayRate]: log-linear energy decay per frame
//
// A reflecting box rings at its cavity modes, so a probe placed off-centre
// shows a clear dominant period:
//
//	h := sim.NewHistory().WithProbe(row, col)
//	driver.AddObserver(h)
//	// ... tick ...
//	period := analysis.PowerSpectrum(h.Series("probe")).Period()
package analysis
