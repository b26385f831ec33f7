// ABOUTME: Tests for version information
// ABOUTME: Checks the -version banner and the product name used in the window title
package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()

	for _, part := range []string{Product, Version, Manufacturer} {
		if part == "" {
			t.Fatal("version fields must not be empty")
		}
		if !strings.Contains(s, part) {
			t.Errorf("expected banner %q to contain %q", s, part)
		}
	}
	if strings.Contains(s, "\n") {
		t.Errorf("expected a single-line banner, got %q", s)
	}
	if !strings.HasPrefix(s, Product+" "+Version) {
		t.Errorf("expected banner to start with product and version, got %q", s)
	}
}

func TestProductFitsWindowTitle(t *testing.T) {
	// The window title is Product followed by the source name
	if strings.TrimSpace(Product) != Product {
		t.Errorf("product %q has surrounding whitespace", Product)
	}
	if len(Product) > 40 {
		t.Errorf("product %q is too long for a window title", Product)
	}
}
