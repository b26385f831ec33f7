// ABOUTME: Bubbletea model for the terminal visualizer
// ABOUTME: Ticks the frame loop and renders the mirrored bars as colored columns
package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/harperreed/halo/internal/app"
	"github.com/harperreed/halo/pkg/bars"
	"github.com/harperreed/halo/pkg/render"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5F3FF")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)

// TickMsg asks the model to run one frame loop tick
type TickMsg time.Time

// Model represents the TUI state
type Model struct {
	ctx      context.Context
	loop     *app.Loop
	interval time.Duration
	pending  []app.Event
	err      error

	// Last snapshot taken after a tick
	state app.State

	// Dimensions
	width  int
	height int
}

// Init starts the tick cycle
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case TickMsg:
		return m.step()
	}

	return m, nil
}

// step runs one loop tick and schedules the next
func (m Model) step() (tea.Model, tea.Cmd) {
	events := m.pending
	m.pending = nil

	if err := m.loop.Tick(m.ctx, events); err != nil {
		m.err = err
		log.Printf("Frame loop stopped: %v", err)
		return m, tea.Quit
	}
	m.state = m.loop.Snapshot()

	if !m.loop.Running() {
		return m, tea.Quit
	}
	return m, tick(m.interval)
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.pending = append(m.pending, app.Quit())
		if err := m.loop.Tick(m.ctx, m.pending); err != nil && !errors.Is(err, app.ErrShutdown) {
			m.err = err
			log.Printf("Frame loop stopped: %v", err)
		}
		m.pending = nil
		m.state = m.loop.Snapshot()
		return m, tea.Quit
	}

	return m, nil
}

// Err returns the error that stopped the loop, if any
func (m Model) Err() error {
	return m.err
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	innerWidth := m.width - 2
	innerHeight := m.height - 4
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	title := titleStyle.Render(m.loop.Source().Name())
	spectrum := m.renderBars(innerWidth, innerHeight-2)
	footer := footerStyle.Render(m.renderStats())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, title),
		spectrum,
		lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, footer),
	)

	return frameStyle.Width(innerWidth).Render(content)
}

// renderBars draws the bar heights as vertical columns, left to right in
// bar order so the mirrored halves meet in the middle
func (m Model) renderBars(width, rows int) string {
	if rows < 1 {
		return ""
	}

	heights := columnHeights(&m.state.Heights, width, rows)
	lines := make([]string, rows)

	for row := 0; row < rows; row++ {
		level := rows - row
		var b strings.Builder
		for col, h := range heights {
			if h >= level {
				b.WriteString(cellStyle(m.state.Hue, col, len(heights)).Render("█"))
			} else {
				b.WriteByte(' ')
			}
		}
		lines[row] = b.String()
	}

	return strings.Join(lines, "\n")
}

// renderStats renders the status line
func (m Model) renderStats() string {
	return fmt.Sprintf("radius %3.0f  peak %6.2f  particles %3d  capture errors %d  q:quit",
		m.state.Radius, m.state.Peak.Value(), m.loop.Particles(), m.state.CaptureErrors)
}

// columnHeights resamples the bars onto width columns, scaled to rows
func columnHeights(h *bars.Heights, width, rows int) []int {
	if width < 1 {
		return nil
	}

	out := make([]int, width)
	for col := range out {
		i := col * bars.BarCount / width
		if !h.Visible(i) {
			continue
		}
		v := h[i]
		if v > render.MaxBarLength {
			v = render.MaxBarLength
		}
		out[col] = int(v / render.MaxBarLength * float64(rows))
	}
	return out
}

// cellStyle colors a column by its bar hue
func cellStyle(hue float64, col, width int) lipgloss.Style {
	i := col * bars.BarCount / width
	c := colorful.Hsv(render.BarHue(hue, i, bars.HalfBars)*360, 1, 1)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
