// Package model provides the geometric primitives and the output model
// shared by all typeflow packages.
//
// # Geometry
//
// Lengths are float64 typographic points. An unbounded length is
// represented by [Infinite]; comparisons against available space go
// through [Fits], which tolerates tiny floating-point error.
//
//   - [Point] - 2D position
//   - [Size] - width/height pair
//   - [Axes] - a per-axis pair of booleans (expansion flags)
//   - [Rel] - a length relative to some base (absolute part + ratio part)
//   - [FixedAlign] - resolved start/center/end alignment
//
// # Output model
//
// The output side is the [Frame]: a positioned tree of rendered items
// (nested frames, text runs, rules, and invisible tags marking the
// elements that produced the content):
//
//	frame := model.NewFrame(model.Size{W: 100, H: 12})
//	frame.PushText(model.Point{}, "hello", 12)
//
// A [Fragment] is the ordered sequence of frames produced by laying one
// flow out across a sequence of regions, one frame per consumed region.
package model
