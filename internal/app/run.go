// ABOUTME: Headless frame loop runner with cooperative pacing
// ABOUTME: Drives Loop.Tick at a fixed rate until quit, cancellation or a tick limit
package app

import (
	"context"
	"log"
	"time"
)

// Pacer yields until the next tick boundary
type Pacer struct {
	ticker *time.Ticker
}

// NewPacer creates a pacer for the given frame rate
func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	return &Pacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick or ctx is done. Ticks missed while the
// frame ran long are dropped rather than replayed.
func (p *Pacer) Wait(ctx context.Context) error {
	select {
	case <-p.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases the pacer's ticker
func (p *Pacer) Stop() {
	p.ticker.Stop()
}

// Run ticks the loop until it shuts down, events delivers a quit, ctx is
// cancelled, or maxTicks ticks have run (zero means no limit).
func Run(ctx context.Context, loop *Loop, events <-chan Event, maxTicks uint64) error {
	pacer := NewPacer(loop.config.FPS)
	defer pacer.Stop()

	for loop.Running() {
		if err := loop.Tick(ctx, drain(events)); err != nil {
			return err
		}

		snap := loop.Snapshot()
		if maxTicks > 0 && snap.Ticks >= maxTicks {
			log.Printf("Stopping after %d ticks (capture errors: %d, peak: %.3f)",
				snap.Ticks, snap.CaptureErrors, snap.Peak.Value())
			return nil
		}

		// A cancelled wait falls through; the next tick observes ctx and shuts down.
		_ = pacer.Wait(ctx)
	}
	return nil
}

// drain collects pending events without blocking
func drain(events <-chan Event) []Event {
	var out []Event
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
