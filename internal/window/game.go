// ABOUTME: Ebiten game driving the frame loop
// ABOUTME: Maps window close and resize to loop events and composites the trail
package window

import (
	"context"
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/harperreed/halo/internal/app"
	"github.com/harperreed/halo/internal/version"
)

// Game adapts a frame loop to ebiten's update/draw/layout cycle
type Game struct {
	ctx     context.Context
	loop    *app.Loop
	pending []app.Event
	width   int
	height  int
	err     error

	// closing reports whether the user asked to close the window
	closing func() bool
}

// NewGame creates a game for loop with the initial window size
func NewGame(ctx context.Context, loop *app.Loop, width, height int) *Game {
	return &Game{
		ctx:     ctx,
		loop:    loop,
		width:   width,
		height:  height,
		closing: ebiten.IsWindowBeingClosed,
	}
}

// Update runs one loop tick. It returns ebiten.Termination once the loop
// shuts down.
func (g *Game) Update() error {
	if g.closing() {
		g.pending = append(g.pending, app.Quit())
	}

	events := g.pending
	g.pending = nil

	if err := g.loop.Tick(g.ctx, events); err != nil {
		if !errors.Is(err, app.ErrShutdown) {
			g.err = err
		}
		return ebiten.Termination
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen and composites the trail onto it
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if c, ok := g.loop.Trail().Surface().(*Canvas); ok {
		screen.DrawImage(c.Image(), &ebiten.DrawImageOptions{})
	}
}

// Layout queues a resize event when the window size changes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width = outsideWidth
		g.height = outsideHeight
		g.pending = append(g.pending, app.Resize(outsideWidth, outsideHeight))
	}
	return g.width, g.height
}

// Err returns the error that stopped the loop, if any
func (g *Game) Err() error {
	return g.err
}

// Run opens a resizable window and drives loop at the given tick rate until
// the window closes, ctx is cancelled or the loop fails. The loop must
// have been created with NewCanvas as its surface factory.
func Run(ctx context.Context, loop *app.Loop, width, height, fps int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(version.Product + " - " + loop.Source().Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if fps > 0 {
		ebiten.SetTPS(fps)
	}

	game := NewGame(ctx, loop, width, height)
	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	if err := game.Err(); err != nil {
		return err
	}
	log.Printf("Window closed after %d ticks", loop.Snapshot().Ticks)
	return nil
}
