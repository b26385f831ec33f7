// ABOUTME: Version information
// ABOUTME: Build version, product name and manufacturer reported by -version
package version

const (
	// Version is the release version, overridden at build time with -ldflags
	Version = "0.1.0"

	// Product is the application name
	Product = "Halo Visualizer"

	// Manufacturer identifies the authors
	Manufacturer = "harperreed"
)

// String returns the one-line version banner
func String() string {
	return Product + " " + Version + " (" + Manufacturer + ")"
}
