package window

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/show"
)

// debugGlyphWidth and debugGlyphHeight are the ebitenutil debug font cell size
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// Game adapts a show to ebiten's update/draw loop
// Update runs one simulation frame per tick, ebiten calls it at 60 TPS
type Game struct {
	show    *show.Show
	surface *Surface

	cursor  image.Point
	touches []ebiten.TouchID
}

// NewGame builds a show on a fresh offscreen surface of the given size
func NewGame(cfg *engine.Config, sound engine.SoundNotifier, decor bool, width, height int) (*Game, error) {
	surface := NewSurface(width, height)
	sh, err := show.New(cfg, surface, sound, decor)
	if err != nil {
		return nil, err
	}
	return &Game{show: sh, surface: surface}, nil
}

func (g *Game) Show() *show.Show {
	return g.show
}

func (g *Game) Update() error {
	now := time.Now()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.show.ToggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.show.LaunchRandom()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w, h := g.surface.Size()
		g.show.Click(now, w/2, h/2)
	}

	mx, my := ebiten.CursorPosition()
	if cur := image.Pt(mx, my); cur != g.cursor {
		g.cursor = cur
		g.show.Pointer(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.show.Click(now, float64(mx), float64(my))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		g.show.Click(now, float64(tx), float64(ty))
	}

	g.show.Frame(now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	for _, b := range g.show.Status().Banners {
		x, y := textOrigin(b.Text, b.X, b.Y)
		ebitenutil.DebugPrintAt(screen, b.Text, x, y)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  %s", ebiten.ActualTPS(), g.show.Status()))
}

// Layout follows the window size, the offscreen surface is resized to match
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// textOrigin returns the top-left point that centers text on (x, y)
func textOrigin(text string, x, y float64) (int, int) {
	return int(x) - len(text)*debugGlyphWidth/2, int(y) - debugGlyphHeight/2
}

// Run opens a resizable window and blocks until it is closed
func Run(cfg *engine.Config, sound engine.SoundNotifier, decor bool, width, height int) error {
	g, err := NewGame(cfg, sound, decor, width, height)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	log.Printf("[WINDOW] Closed after %d frames", g.show.Status().Frames)
	return nil
}
