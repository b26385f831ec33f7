// ABOUTME: Tests for the headless runner
// ABOUTME: Tests tick limits, quit events and cancellation
package app

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/halo/pkg/render"
)

func newHeadlessLoop() *Loop {
	cfg := DefaultConfig()
	cfg.FPS = 1000
	return NewLoop(cfg, &fakeSource{}, render.NewHeadless)
}

func TestRunStopsAfterMaxTicks(t *testing.T) {
	loop := newHeadlessLoop()

	if err := Run(context.Background(), loop, nil, 5); err != nil {
		t.Fatal(err)
	}
	if got := loop.Snapshot().Ticks; got != 5 {
		t.Errorf("expected 5 ticks, got %d", got)
	}
}

func TestRunStopsOnQuitEvent(t *testing.T) {
	loop := newHeadlessLoop()
	events := make(chan Event, 1)
	events <- Quit()

	if err := Run(context.Background(), loop, events, 0); err != nil {
		t.Fatal(err)
	}
	if loop.Running() {
		t.Error("expected loop to stop")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	loop := newHeadlessLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, loop, nil, 0) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
}

func TestDrainIsNonBlocking(t *testing.T) {
	if got := drain(nil); len(got) != 0 {
		t.Errorf("expected no events from nil channel, got %v", got)
	}

	events := make(chan Event, 2)
	events <- Resize(10, 10)
	events <- Quit()
	if got := drain(events); len(got) != 2 {
		t.Errorf("expected 2 events, got %d", len(got))
	}
}
