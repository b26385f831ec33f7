// ABOUTME: Tests for the capture ring buffer
// ABOUTME: Verifies ordering, underrun zero-fill, overwrite and discard behavior
package capture

import "testing"

func TestRingBufferReadWrite(t *testing.T) {
	rb := NewRingBuffer(8)

	if n := rb.Write([]float32{1, 2, 3}); n != 3 {
		t.Fatalf("expected 3 written, got %d", n)
	}
	if rb.Available() != 3 {
		t.Errorf("expected 3 available, got %d", rb.Available())
	}
	if rb.Free() != 5 {
		t.Errorf("expected 5 free, got %d", rb.Free())
	}

	out := make([]float32, 5)
	if n := rb.Read(out); n != 3 {
		t.Fatalf("expected 3 read, got %d", n)
	}

	expected := []float32{1, 2, 3, 0, 0}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], out[i])
		}
	}
}

func TestRingBufferOverwritesOldest(t *testing.T) {
	rb := NewRingBuffer(4)
	rb.Write([]float32{1, 2, 3, 4, 5, 6})

	if rb.Available() != 4 {
		t.Fatalf("expected 4 available, got %d", rb.Available())
	}
	if rb.Dropped() != 2 {
		t.Errorf("expected 2 dropped, got %d", rb.Dropped())
	}

	out := make([]float32, 4)
	rb.Read(out)
	expected := []float32{3, 4, 5, 6}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], out[i])
		}
	}
}

func TestRingBufferDiscard(t *testing.T) {
	rb := NewRingBuffer(6)
	rb.Write([]float32{1, 2, 3, 4})

	if n := rb.Discard(3); n != 3 {
		t.Fatalf("expected 3 discarded, got %d", n)
	}
	if n := rb.Discard(10); n != 1 {
		t.Fatalf("expected 1 discarded, got %d", n)
	}
	if rb.Available() != 0 {
		t.Errorf("expected empty buffer, got %d", rb.Available())
	}

	rb.Write([]float32{7})
	out := make([]float32, 1)
	rb.Read(out)
	if out[0] != 7 {
		t.Errorf("expected 7 after discard wraparound, got %f", out[0])
	}
}
