// ABOUTME: Malgo-based loopback capture implementation
// ABOUTME: Records system output through miniaudio capture or loopback devices
package capture

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
	"github.com/harperreed/halo/pkg/audio"
)

// Malgo captures audio using malgo/miniaudio
type Malgo struct {
	malgoCtx   *malgo.AllocatedContext
	device     *malgo.Device
	name       string
	sampleRate int
	channels   int
	timeout    time.Duration

	// Ring buffer fed by the device callback
	ringBuffer *RingBuffer
	ready      chan struct{}
	mu         sync.Mutex
}

// OpenLoopback selects a loopback-capable device and starts recording from it
func OpenLoopback(cfg Config) (*Malgo, error) {
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 || cfg.FrameSize <= 0 {
		return nil, fmt.Errorf("%w: invalid config %+v", ErrDeviceInit, cfg)
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize malgo context: %v", ErrDeviceInit, err)
	}

	m := &Malgo{
		malgoCtx:   ctx,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		timeout:    cfg.frameTimeout(),
		ready:      make(chan struct{}, 1),
	}

	if err := m.start(cfg); err != nil {
		m.freeContext()
		return nil, err
	}
	return m, nil
}

// Devices is a snapshot of the capture devices and the default output
type Devices struct {
	Captures []DeviceInfo
	Output   string

	// NativeLoopback reports whether the backend can record its output directly
	NativeLoopback bool

	ids []malgo.DeviceID
}

// Select applies the selection policy to the enumerated devices
func (d Devices) Select(override string) (Selection, error) {
	return SelectDevice(d.Captures, d.Output, override, d.NativeLoopback)
}

// ListDevices enumerates audio devices without opening any
func ListDevices() (Devices, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return Devices{}, fmt.Errorf("%w: failed to initialize malgo context: %v", ErrDeviceInit, err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	return enumerate(ctx)
}

// enumerate lists capture devices and finds the default playback device name
func enumerate(ctx *malgo.AllocatedContext) (Devices, error) {
	captures, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return Devices{}, fmt.Errorf("%w: failed to enumerate capture devices: %v", ErrDeviceInit, err)
	}
	playbacks, err := ctx.Devices(malgo.Playback)
	if err != nil {
		log.Printf("Warning: failed to enumerate playback devices: %v", err)
	}

	// Only WASAPI exposes native loopback streams
	d := Devices{
		Captures:       make([]DeviceInfo, len(captures)),
		NativeLoopback: runtime.GOOS == "windows",
		ids:            make([]malgo.DeviceID, len(captures)),
	}
	for _, p := range playbacks {
		if p.IsDefault != 0 {
			d.Output = p.Name()
			break
		}
	}
	for i, c := range captures {
		d.Captures[i] = DeviceInfo{Name: c.Name(), Default: c.IsDefault != 0}
		d.ids[i] = c.ID
	}
	return d, nil
}

// start enumerates devices, applies the selection policy and starts the device
func (m *Malgo) start(cfg Config) error {
	devices, err := enumerate(m.malgoCtx)
	if err != nil {
		return err
	}

	sel, err := devices.Select(cfg.Device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}

	deviceType := malgo.Capture
	if sel.Loopback() {
		deviceType = malgo.Loopback
	}

	deviceConfig := malgo.DefaultDeviceConfig(deviceType)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = uint32(cfg.Channels)
	deviceConfig.SampleRate = uint32(cfg.SampleRate)
	deviceConfig.Alsa.NoMMap = 1
	if sel.Index >= 0 {
		deviceConfig.Capture.DeviceID = devices.ids[sel.Index].Pointer()
	}

	// Hold half a second of audio
	m.ringBuffer = NewRingBuffer(cfg.SampleRate * cfg.Channels / 2)

	deviceCallbacks := malgo.DeviceCallbacks{
		Data: func(pOutputSample, pInputSamples []byte, frameCount uint32) {
			m.dataCallback(pInputSamples, frameCount)
		},
	}

	device, err := malgo.InitDevice(m.malgoCtx.Context, deviceConfig, deviceCallbacks)
	if err != nil {
		return fmt.Errorf("%w: failed to initialize capture device %q: %v", ErrDeviceInit, sel.Name, err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("%w: failed to start capture device %q: %v", ErrDeviceInit, sel.Name, err)
	}

	m.device = device
	m.name = sel.Name

	log.Printf("Recording from: %s (%s, %dHz, %d channels)", sel.Name, sel.Rule, cfg.SampleRate, cfg.Channels)
	return nil
}

// dataCallback is called by malgo with captured f32 samples
func (m *Malgo) dataCallback(input []byte, frameCount uint32) {
	n := int(frameCount) * m.channels
	if len(input) < n*4 {
		n = len(input) / 4
	}

	samples := make([]float32, n)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(input[i*4:]))
	}
	m.ringBuffer.Write(samples)

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Record blocks until frameSize samples per channel have been captured
func (m *Malgo) Record(ctx context.Context, frameSize int) (audio.Frame, error) {
	need := frameSize * m.channels
	if need <= 0 || need > m.ringBuffer.size {
		return nil, fmt.Errorf("%w: frame size %d out of range", ErrCapture, frameSize)
	}

	deadline := time.NewTimer(m.timeout)
	defer deadline.Stop()

	for {
		m.mu.Lock()
		closed := m.device == nil
		m.mu.Unlock()
		if closed {
			return nil, fmt.Errorf("%w: device closed", ErrCapture)
		}

		if available := m.ringBuffer.Available(); available >= need {
			// Skip backlog so the display tracks the most recent audio
			if stale := available - 2*need; stale > 0 {
				m.ringBuffer.Discard(stale - stale%m.channels)
			}
			buf := make([]float32, need)
			m.ringBuffer.Read(buf)
			return audio.Mono(buf, m.channels), nil
		}

		select {
		case <-m.ready:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCapture, ctx.Err())
		case <-deadline.C:
			return nil, fmt.Errorf("%w: timed out after %v waiting for %d frames", ErrCapture, m.timeout, frameSize)
		}
	}
}

// SampleRate returns the capture sample rate
func (m *Malgo) SampleRate() int { return m.sampleRate }

// Channels returns the number of captured channels
func (m *Malgo) Channels() int { return m.channels }

// Name returns the selected device name
func (m *Malgo) Name() string { return m.name }

// Close stops the device and releases the malgo context
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		if err := m.device.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		m.device.Uninit()
		m.device = nil
	}

	if m.ringBuffer != nil && m.ringBuffer.Dropped() > 0 {
		log.Printf("Capture overwrote %d unread samples", m.ringBuffer.Dropped())
	}

	m.freeContext()
	return nil
}

// freeContext releases the malgo context (must hold m.mu or be unshared)
func (m *Malgo) freeContext() {
	if m.malgoCtx != nil {
		if err := m.malgoCtx.Uninit(); err != nil {
			log.Printf("Warning: malgo context uninit error: %v", err)
		}
		m.malgoCtx.Free()
		m.malgoCtx = nil
	}
}
