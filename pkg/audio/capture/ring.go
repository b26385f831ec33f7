// ABOUTME: Thread-safe sample ring buffer between the device callback and Record
// ABOUTME: Holds interleaved float32 samples captured by miniaudio
package capture

import "sync"

// RingBuffer provides thread-safe circular buffer for captured samples
type RingBuffer struct {
	buffer   []float32
	readPos  int
	writePos int
	size     int
	count    int // Number of samples currently in buffer
	dropped  int64
	mu       sync.Mutex
}

// NewRingBuffer creates a ring buffer with given capacity (in samples)
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{
		buffer: make([]float32, capacity),
		size:   capacity,
	}
}

// Write adds samples to the ring buffer. When full, the oldest samples
// are overwritten so readers always see the most recent audio.
func (rb *RingBuffer) Write(samples []float32) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.size == 0 {
		return 0
	}

	for _, s := range samples {
		if rb.count == rb.size {
			rb.readPos = (rb.readPos + 1) % rb.size
			rb.count--
			rb.dropped++
		}
		rb.buffer[rb.writePos] = s
		rb.writePos = (rb.writePos + 1) % rb.size
		rb.count++
	}
	return len(samples)
}

// Read retrieves samples from the ring buffer
func (rb *RingBuffer) Read(samples []float32) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	read := 0
	for i := 0; i < len(samples) && rb.count > 0; i++ {
		samples[i] = rb.buffer[rb.readPos]
		rb.readPos = (rb.readPos + 1) % rb.size
		rb.count--
		read++
	}

	// Zero-fill remaining if underrun
	for i := read; i < len(samples); i++ {
		samples[i] = 0
	}

	return read
}

// Discard drops up to n of the oldest samples and returns how many were dropped
func (rb *RingBuffer) Discard(n int) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if n > rb.count {
		n = rb.count
	}
	if n <= 0 {
		return 0
	}
	rb.readPos = (rb.readPos + n) % rb.size
	rb.count -= n
	return n
}

// Available returns the number of samples available to read
func (rb *RingBuffer) Available() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Free returns the number of free slots in the buffer
func (rb *RingBuffer) Free() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.size - rb.count
}

// Dropped returns how many samples were overwritten before being read
func (rb *RingBuffer) Dropped() int64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.dropped
}
