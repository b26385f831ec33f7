// ABOUTME: Capture device listing tool
// ABOUTME: Prints capture devices and which one the visualizer would record from
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/harperreed/halo/pkg/audio/capture"
)

var device = flag.String("device", "", "Device name override to test (substring match)")

func main() {
	flag.Parse()

	devices, err := capture.ListDevices()
	if err != nil {
		log.Fatalf("Failed to list devices: %v", err)
	}

	fmt.Println("=== Capture Devices ===")
	if devices.Output != "" {
		fmt.Printf("Default output: %s\n", devices.Output)
	}
	fmt.Printf("Native loopback: %v\n\n", devices.NativeLoopback)

	for i, d := range devices.Captures {
		marker := " "
		if d.Default {
			marker = "*"
		}
		fmt.Printf("%s [%d] %s\n", marker, i, d.Name)
	}
	if len(devices.Captures) == 0 {
		fmt.Println("  (no capture devices)")
	}
	fmt.Println()

	sel, err := devices.Select(*device)
	if err != nil {
		log.Fatalf("No usable device: %v", err)
	}
	fmt.Printf("Selected: %s (rule: %s)\n", sel.Name, sel.Rule)
}
