// ABOUTME: Frame loop orchestration
// ABOUTME: Runs capture, analysis, aggregation and drawing once per tick
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/harperreed/halo/pkg/audio"
	"github.com/harperreed/halo/pkg/audio/capture"
	"github.com/harperreed/halo/pkg/bars"
	"github.com/harperreed/halo/pkg/particle"
	"github.com/harperreed/halo/pkg/render"
	"github.com/harperreed/halo/pkg/spectrum"
)

var (
	// ErrLoopFatal is returned when a tick panics. The loop is shut down afterwards.
	ErrLoopFatal = errors.New("app: fatal error in frame loop")

	// ErrShutdown is returned when ticking a loop that has already shut down
	ErrShutdown = errors.New("app: loop is shut down")
)

// captureLogInterval rate-limits capture failure logging
const captureLogInterval = time.Second

// SpawnTrigger decides how many particles to spawn after a tick's analysis.
// It must not mutate the state.
type SpawnTrigger func(s *State) int

// PulseTrigger spawns count particles on every tick where the bass pulse
// pushes the radius more than threshold past its base
func PulseTrigger(threshold float64, count int) SpawnTrigger {
	return func(s *State) int {
		if s.Radius-bars.BaseRadius > threshold {
			return count
		}
		return 0
	}
}

// Loop owns the visualizer pipeline and its state
type Loop struct {
	config    Config
	source    capture.Source
	analyzer  *spectrum.Analyzer
	renderer  *render.Renderer
	trail     *render.Trail
	particles *particle.System
	trigger   SpawnTrigger
	state     State

	lastCaptureLog time.Time
	now            func() time.Time
}

// NewLoop creates a frame loop reading from source and drawing onto
// surfaces created by factory
func NewLoop(config Config, source capture.Source, factory render.SurfaceFactory) *Loop {
	if config.FrameSize <= 0 {
		config.FrameSize = audio.BufferSize
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	l := &Loop{
		config:    config,
		source:    source,
		analyzer:  spectrum.NewAnalyzer(config.FrameSize, spectrum.MaxFreqIndex),
		renderer:  render.NewRenderer(),
		trail:     render.NewTrail(factory, config.Width, config.Height, render.TrailAlpha),
		particles: particle.NewSystem(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), config.ParticleLimit),
		state:     NewState(),
		now:       time.Now,
	}

	if config.Particles {
		l.trigger = PulseTrigger(config.PulseThreshold, 3)
	}

	return l
}

// SetTrigger replaces the particle spawn trigger; nil disables spawning
func (l *Loop) SetTrigger(trigger SpawnTrigger) {
	l.trigger = trigger
}

// Running reports whether the loop has not shut down
func (l *Loop) Running() bool {
	return l.state.Phase == Running
}

// Snapshot returns a copy of the current state
func (l *Loop) Snapshot() State {
	return l.state
}

// Trail returns the persistent surface frames are drawn onto
func (l *Loop) Trail() *render.Trail {
	return l.trail
}

// Source returns the audio source
func (l *Loop) Source() capture.Source {
	return l.source
}

// Particles returns the number of live particles
func (l *Loop) Particles() int {
	return l.particles.Len()
}

// Tick polls events and, while running, processes one frame. Capture and
// draw failures degrade the frame; a panic in the tick body shuts the loop
// down and is returned as ErrLoopFatal.
func (l *Loop) Tick(ctx context.Context, events []Event) (err error) {
	if l.state.Phase == Shutdown {
		return ErrShutdown
	}

	defer func() {
		if r := recover(); r != nil {
			l.state.Phase = Shutdown
			err = fmt.Errorf("%w: %v", ErrLoopFatal, r)
			log.Printf("Critical loop error: %v", r)
		}
	}()

	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			l.state.Phase = Shutdown
		case EventResize:
			l.trail.Resize(ev.Width, ev.Height)
			log.Printf("Resized to %dx%d", ev.Width, ev.Height)
		}
	}
	if ctx.Err() != nil {
		l.state.Phase = Shutdown
	}
	if l.state.Phase == Shutdown {
		return nil
	}

	frame, err := l.source.Record(ctx, l.config.FrameSize)
	if err != nil {
		l.captureFailed(err)
		frame = audio.Silence(l.config.FrameSize)
	}

	l.process(frame)
	l.draw()
	l.state.Ticks++

	return nil
}

// process runs analysis and advances the animation clocks
func (l *Loop) process(frame audio.Frame) {
	raw := l.analyzer.Analyze(frame)
	normalized, scale := l.state.Peak.Update(raw)

	l.state.Scale = scale
	l.state.Heights = bars.Aggregate(normalized)
	l.state.Bass = bars.BassEnergy(normalized)
	l.state.Radius = bars.Radius(l.state.Bass)
	l.state.Hue = render.AdvanceHue(l.state.Hue)

	if l.trigger != nil {
		if n := l.trigger(&l.state); n > 0 {
			w, h := l.trail.Size()
			speed := 1 + bars.Pulse(l.state.Bass)/bars.MaxPulse
			l.particles.Emit(n, float64(w/2), float64(h/2), render.Rainbow(l.state.Hue), speed)
		}
	}
	l.particles.Step()
}

// draw fades the trail and composites this tick's scene onto it
func (l *Loop) draw() {
	l.trail.Fade()

	stats := l.renderer.Draw(l.trail.Surface(), render.Frame{
		Heights: &l.state.Heights,
		Radius:  l.state.Radius,
		Hue:     l.state.Hue,
		Overlay: l.particles,
	})
	l.state.DrawSkipped += uint64(stats.Skipped)
}

// captureFailed counts a capture failure and logs at most once per interval
func (l *Loop) captureFailed(err error) {
	l.state.CaptureErrors++

	now := l.now()
	if now.Sub(l.lastCaptureLog) < captureLogInterval {
		return
	}
	l.lastCaptureLog = now

	if errors.Is(err, capture.ErrCapture) {
		log.Printf("Warning: capture failed, substituting silence (%d total): %v", l.state.CaptureErrors, err)
	} else {
		log.Printf("Warning: unexpected capture error, substituting silence: %v", err)
	}
}
