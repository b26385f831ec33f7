// ABOUTME: Tests for the ebiten game adapter
// ABOUTME: Tests close handling, resize events and termination
package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/harperreed/halo/internal/app"
	"github.com/harperreed/halo/pkg/audio/capture"
	"github.com/harperreed/halo/pkg/render/rendertest"
)

func newTestGame() *Game {
	cfg := app.DefaultConfig()
	cfg.Seed = 1
	src := capture.NewToneSource(440, capture.Config{SampleRate: 44100, Channels: 1, FrameSize: cfg.FrameSize})
	loop := app.NewLoop(cfg, src, rendertest.Factory)

	g := NewGame(context.Background(), loop, cfg.Width, cfg.Height)
	g.closing = func() bool { return false }
	return g
}

func TestUpdateTicksLoop(t *testing.T) {
	g := newTestGame()

	if err := g.Update(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if g.loop.Snapshot().Ticks != 1 {
		t.Errorf("expected 1 tick, got %d", g.loop.Snapshot().Ticks)
	}
}

func TestUpdateTerminatesOnClose(t *testing.T) {
	g := newTestGame()
	g.closing = func() bool { return true }

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	if g.loop.Running() {
		t.Error("expected loop to shut down")
	}
	if g.Err() != nil {
		t.Errorf("expected clean close, got %v", g.Err())
	}
}

func TestLayoutQueuesResize(t *testing.T) {
	g := newTestGame()

	w, h := g.Layout(1080, 500)
	if w != 1080 || h != 500 {
		t.Errorf("expected 1080x500, got %dx%d", w, h)
	}
	if len(g.pending) != 0 {
		t.Errorf("expected no resize for unchanged size, got %v", g.pending)
	}

	w, h = g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("expected 800x600, got %dx%d", w, h)
	}
	if len(g.pending) != 1 || g.pending[0].Kind != app.EventResize {
		t.Fatalf("expected one resize event, got %v", g.pending)
	}

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if tw, th := g.loop.Trail().Size(); tw != 800 || th != 600 {
		t.Errorf("expected trail resized to 800x600, got %dx%d", tw, th)
	}
}

func TestLayoutIgnoresZeroSize(t *testing.T) {
	g := newTestGame()

	w, h := g.Layout(0, 0)
	if w != 1080 || h != 500 {
		t.Errorf("expected previous size, got %dx%d", w, h)
	}
	if len(g.pending) != 0 {
		t.Error("expected no resize event for a minimized window")
	}
}
