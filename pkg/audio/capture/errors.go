// ABOUTME: Capture error taxonomy
// ABOUTME: Sentinel errors for device initialization and per-frame capture failures
package capture

import "errors"

var (
	// ErrDeviceInit is returned when no capture session could be opened. It is fatal at startup.
	ErrDeviceInit = errors.New("capture: device init failed")

	// ErrNoDevice is returned when neither a capture device nor native loopback is available.
	ErrNoDevice = errors.New("capture: no loopback-capable device found")

	// ErrCapture is returned when a single frame could not be recorded. Callers substitute silence.
	ErrCapture = errors.New("capture: frame capture failed")

	// ErrUnsupportedFormat is returned for input files the file source cannot decode.
	ErrUnsupportedFormat = errors.New("capture: unsupported input format")
)
