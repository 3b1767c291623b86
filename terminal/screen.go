// Package terminal presents a render.Canvas on a tcell screen using upper half
// blocks, two canvas pixels per cell
package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/render"
)

const halfBlock = '▀'

// Label is text anchored at a logical point, centered horizontally
type Label struct {
	X, Y  float64
	Text  string
	Color render.RGB
}

// Screen owns a tcell screen and the canvas shown on it
type Screen struct {
	screen tcell.Screen
	canvas *render.Canvas
	scale  float64

	cols, rows int

	labels func() []Label
	status func() string
}

// New opens the controlling terminal
func New(scale float64) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, scale)
}

// NewWithScreen initializes screen and sizes a canvas to it, scale is logical units per pixel
func NewWithScreen(screen tcell.Screen, scale float64) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	cols, rows := screen.Size()
	return &Screen{
		screen: screen,
		canvas: render.NewCanvas(cols, rows*2, scale),
		scale:  scale,
		cols:   cols,
		rows:   rows,
	}, nil
}

// Canvas returns the drawing surface, valid across resizes
func (s *Screen) Canvas() *render.Canvas {
	return s.canvas
}

// SetLabels sets the source of text drawn over the canvas each present
func (s *Screen) SetLabels(fn func() []Label) {
	s.labels = fn
}

// SetStatus sets the source of the bottom status line, nil hides it
func (s *Screen) SetStatus(fn func() string) {
	s.status = fn
}

// Resize re-reads the terminal size, reporting whether it changed
// The canvas is cleared on change
func (s *Screen) Resize() bool {
	s.screen.Sync()
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows {
		return false
	}

	s.cols, s.rows = cols, rows
	s.canvas.Resize(cols, rows*2)
	return true
}

// CellSize returns the terminal size in cells
func (s *Screen) CellSize() (cols, rows int) {
	return s.cols, s.rows
}

// ToLogical maps a cell to the logical point at its center
func (s *Screen) ToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.scale, (float64(row) + 0.5) * 2 * s.scale
}

// toCell maps a logical point to its cell
func (s *Screen) toCell(x, y float64) (col, row int) {
	return int(x / s.scale), int(y / (2 * s.scale))
}

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present writes the canvas and overlays to the terminal
func (s *Screen) Present() error {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.canvas.At(col, row*2)
			bottom := s.canvas.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
			s.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	if s.labels != nil {
		for _, l := range s.labels() {
			col, row := s.toCell(l.X, l.Y)
			col -= runewidth.StringWidth(l.Text) / 2
			s.DrawText(col, row, l.Text, tcell.StyleDefault.Foreground(color(l.Color)).Background(tcell.ColorBlack).Bold(true))
		}
	}

	if s.status != nil {
		line := s.status()
		if pad := s.cols - runewidth.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		s.DrawText(0, s.rows-1, line, tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack))
	}

	s.screen.Show()
	return nil
}

// DrawText writes text starting at (col, row), clipped to the screen
func (s *Screen) DrawText(col, row int, text string, style tcell.Style) {
	if row < 0 || row >= s.rows {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col >= 0 && col+w <= s.cols {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col += w
		if col >= s.cols {
			return
		}
	}
}

// Events delivers terminal events until ctx is cancelled or the screen is finalized
func (s *Screen) Events(ctx context.Context) <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	core.Go(func() {
		defer close(ch)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	})
	return ch
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}
