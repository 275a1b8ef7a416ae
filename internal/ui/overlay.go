//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the entity's simulation stats in a corner of the screen.
// The i key toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles the overlay's own key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.visible = !o.visible
	}
}

// Draw renders the stats snapshot onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats core.Stats) {
	if !o.visible {
		return
	}

	lines := []string{
		fmt.Sprintf("%s (%s, %s)", stats.Pattern, stats.Category, stats.Mode),
		fmt.Sprintf("gen %d  period %d", stats.Generation, stats.Period),
		fmt.Sprintf("alive %d  density %.2f", stats.Alive, stats.Density),
	}
	if stats.Phase >= 0 {
		lines[1] = fmt.Sprintf("phase %d/%d", stats.Phase, stats.Period)
	}

	face := basicfont.Face7x13
	y := face.Height + 4
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, color.RGBA{R: 120, G: 230, B: 120, A: 255})
		y += face.Height + 2
	}
}
