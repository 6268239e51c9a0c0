// Package viz is the terminal front end: a Bubble Tea program that ticks a
// [sim.Driver] at display rate and paints the field with half-block glyphs.
//
//   - [RunInteractive]: preset picker, setup screen, then the live view
//   - [Run]: the live view for an already built driver
//   - [TerminalSink]: a render.Sink backed by a small RGBA surface
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Clear field (shift asks before clearing obstacles)
//	B / C - Next boundary / color scheme
//	O     - Toggle ripple and obstacle mode
//	Tab   - Select parameter, +/- to nudge it
//	G     - Toggle GIF recording
//	?     - Show help
//
// Mouse clicks map to surface pixels; shift is the remove modifier.
package viz
