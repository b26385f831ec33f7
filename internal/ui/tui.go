// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for terminal mode
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/halo/internal/app"
)

// NewModel creates a new TUI model driving loop at fps
func NewModel(ctx context.Context, loop *app.Loop, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		ctx:      ctx,
		loop:     loop,
		interval: time.Second / time.Duration(fps),
		state:    loop.Snapshot(),
	}
}

// Run starts the TUI and blocks until it exits
func Run(ctx context.Context, loop *app.Loop, fps int) error {
	p := tea.NewProgram(NewModel(ctx, loop, fps), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
