// Package render turns a wave grid into pictures.
//
// [Paint] drives any [Sink] with one colored rectangle per cell followed by
// the obstacle discs. Sinks:
//
//   - [ImageSink]: RGBA pixel surface, PNG output
//   - [SVGSink]: retained-mode SVG document
//   - [Recorder]: frame observer that assembles a GIF
//
// The terminal and window front ends implement Sink themselves.
package render
