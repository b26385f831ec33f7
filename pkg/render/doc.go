// ABOUTME: Rendering package for the circular visualizer
// ABOUTME: Canvas contract, validated draw wrappers, trail buffer and scene composition
// Package render draws visualizer frames onto a Canvas.
//
// The Canvas interface is the narrow contract the visualizer needs from a 2D
// drawing library: circle outlines, line segments, filled circles and a
// translucent black fade. Draw wrappers validate geometry before calling the
// canvas and return ErrDraw instead of passing invalid shapes through, so a
// single bad element never aborts a frame.
//
// A Trail owns the persistent surface frames are drawn onto. Each tick it is
// faded with low-opacity black, leaving motion trails behind moving shapes.
package render
