// ABOUTME: Loopback device selection policy
// ABOUTME: Picks the capture device that mirrors the active output device
package capture

import (
	"fmt"
	"strings"
)

// loopbackMarkers identify capture devices that record system output.
// "Monitor of" is how PulseAudio and PipeWire name sink monitors.
var loopbackMarkers = []string{"Loopback", "Monitor of"}

// DeviceInfo describes a capture-capable device
type DeviceInfo struct {
	Name    string
	Default bool
}

// Rule names which part of the selection policy picked the device
type Rule int

const (
	RuleOverride Rule = iota
	RuleOutputMatch
	RuleLoopbackMarker
	RuleNativeLoopback
	RuleDefaultCapture
)

func (r Rule) String() string {
	switch r {
	case RuleOverride:
		return "override"
	case RuleOutputMatch:
		return "matches output device"
	case RuleLoopbackMarker:
		return "loopback marker"
	case RuleNativeLoopback:
		return "native loopback"
	case RuleDefaultCapture:
		return "default capture"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Selection is the outcome of SelectDevice
type Selection struct {
	// Index into the capture device list, or -1 for the backend default
	Index int
	Name  string
	Rule  Rule
}

// Loopback reports whether the selection records the output device natively
func (s Selection) Loopback() bool {
	return s.Rule == RuleNativeLoopback
}

// SelectDevice applies the device selection policy:
//  1. a capture device whose name contains override (case-insensitive)
//  2. the first capture device whose name contains the output device name
//     or a loopback marker
//  3. native loopback of the default output, when the backend supports it
//  4. the default capture device
func SelectDevice(captures []DeviceInfo, output, override string, nativeLoopback bool) (Selection, error) {
	if override != "" {
		want := strings.ToLower(override)
		for i, d := range captures {
			if strings.Contains(strings.ToLower(d.Name), want) {
				return Selection{Index: i, Name: d.Name, Rule: RuleOverride}, nil
			}
		}
	}

	for i, d := range captures {
		if output != "" && strings.Contains(d.Name, output) {
			return Selection{Index: i, Name: d.Name, Rule: RuleOutputMatch}, nil
		}
		for _, marker := range loopbackMarkers {
			if strings.Contains(d.Name, marker) {
				return Selection{Index: i, Name: d.Name, Rule: RuleLoopbackMarker}, nil
			}
		}
	}

	if nativeLoopback {
		name := output
		if name == "" {
			name = "default output"
		}
		return Selection{Index: -1, Name: name, Rule: RuleNativeLoopback}, nil
	}

	if len(captures) == 0 {
		return Selection{}, ErrNoDevice
	}

	for i, d := range captures {
		if d.Default {
			return Selection{Index: i, Name: d.Name, Rule: RuleDefaultCapture}, nil
		}
	}
	return Selection{Index: -1, Name: "default capture", Rule: RuleDefaultCapture}, nil
}
