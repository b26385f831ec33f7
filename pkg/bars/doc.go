// ABOUTME: Bar aggregation package
// ABOUTME: Buckets a normalized spectrum into mirrored bar heights and a bass pulse
// Package bars converts a normalized spectrum into the symmetric bar layout
// drawn around the visualizer circle, plus the bass energy that drives the
// circle's pulsing radius.
package bars
