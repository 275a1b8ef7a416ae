//go:build ebiten

package app

import (
	"image/color"

	"lifebox/internal/core"
	"lifebox/internal/render"
	"lifebox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sprite driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided driver.
func New(driver *Driver, scale int) *Game {
	size := driver.Entity.Dims.GridSize
	return &Game{
		driver:   driver,
		painter:  render.NewGridPainter(size, size),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale * driver.Entity.Dims.CellSize,
	}
}

// Update handles per-frame input and advances the entity.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.driver.Reset(); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if g.tickOnce {
		// Single-step bypasses the throttle so every press is visible.
		if g.driver.Masked != nil {
			g.driver.Masked.Update()
		} else if !g.driver.Entity.Engine.Frozen() {
			g.driver.Entity.Engine.Update()
		}
		g.driver.Entity.TickLoop()
		g.tickOnce = false
		return nil
	}
	if !g.paused {
		g.driver.Frame()
	}
	return nil
}

// Draw renders the entity grid and the stats overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Entity.Engine.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, core.Collect(g.driver.Entity))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.driver.Entity.Dims.GridSize * g.scale
	return size, size
}
