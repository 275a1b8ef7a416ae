// Package sprite builds configured life engines for game entities: frozen
// phase-accurate snapshots of catalog patterns, or continuously animating
// self-resetting loops, plus the density helpers that keep entities visible.
package sprite

import (
	"errors"
	"fmt"
	"math"
	"time"

	"lifebox/pkg/core"
	"lifebox/pkg/life"
	"lifebox/pkg/pattern"
)

// Mode selects how the entity's engine behaves after construction.
type Mode string

const (
	// ModeStatic freezes an evolved snapshot of the pattern; the grid never
	// changes again through throttled updates.
	ModeStatic Mode = "static"
	// ModeLoop runs the pattern continuously and periodically re-stamps the
	// original cells so the animation never drifts.
	ModeLoop Mode = "loop"
)

// PaddingFactor is the per-side padding around a pattern's bounding box, as a
// fraction of each extent. The padding gives edge cells a full dead-cell
// neighbor context while the pattern evolves. Visual tuning value, not a
// simulation constant.
const PaddingFactor = 0.2

// minPadding keeps small patterns from touching the boundary during evolution.
const minPadding = 2

// ErrConfig is the base error wrapped by every configuration failure.
var ErrConfig = errors.New("sprite: invalid config")

// Config describes the entity to build. Pattern names one catalog entry;
// Patterns, when non-empty, lists entries to choose from uniformly at random
// and takes precedence. Phase applies to static mode only and defaults to a
// uniform random value in [0, period) when nil. UpdateRate (generations per
// second) applies to loop mode only. Seed drives random choices; zero means
// time-based.
type Config struct {
	Mode       Mode
	Pattern    string
	Patterns   []string
	Phase      *int
	CellSize   int
	UpdateRate float64
	Seed       int64
}

// Dimensions is the placement geometry a caller needs to draw an entity.
type Dimensions struct {
	GridSize     int // cells per side, grids are square
	CellSize     int // pixels per cell
	PixelWidth   int
	PixelHeight  int
	HitboxRadius float64 // pixels, hugs the pattern bounding box
}

// Metadata records what the entity was built from.
type Metadata struct {
	Pattern  string
	Mode     Mode
	Phase    int // evolved generations in static mode, -1 in loop mode
	Period   int
	Category pattern.Category
}

// Entity is a configured engine plus the geometry and metadata the owning game
// object needs to place, drive, and draw it. Loop is nil in static mode.
type Entity struct {
	Engine *life.Engine
	Dims   Dimensions
	Meta   Metadata
	Loop   *LoopState
}

// New validates cfg and builds the entity. Configuration mistakes (unknown
// mode or pattern, negative phase, non-positive cell size or update rate)
// return an error wrapping ErrConfig and are never worth retrying.
func New(cfg Config) (*Entity, error) {
	if cfg.Mode != ModeStatic && cfg.Mode != ModeLoop {
		return nil, fmt.Errorf("%w: unsupported mode %q", ErrConfig, cfg.Mode)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("%w: non-positive cell size %d", ErrConfig, cfg.CellSize)
	}
	if cfg.Mode == ModeLoop && cfg.UpdateRate <= 0 {
		return nil, fmt.Errorf("%w: non-positive update rate %v", ErrConfig, cfg.UpdateRate)
	}
	if cfg.Phase != nil && *cfg.Phase < 0 {
		return nil, fmt.Errorf("%w: negative phase %d", ErrConfig, *cfg.Phase)
	}

	names := cfg.Patterns
	if len(names) == 0 {
		names = []string{cfg.Pattern}
	}
	for _, name := range names {
		if _, ok := pattern.Get(name); !ok {
			return nil, fmt.Errorf("%w: unknown pattern %q", ErrConfig, name)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)
	p := pattern.MustGet(names[rng.IntN(len(names))])

	switch cfg.Mode {
	case ModeLoop:
		return buildLoop(cfg, p), nil
	default:
		phase := 0
		if cfg.Phase != nil {
			phase = *cfg.Phase
		} else if p.Period > 1 {
			phase = rng.IntN(p.Period)
		}
		return buildStatic(cfg, p, phase), nil
	}
}

// padding returns the per-side padding in cells for an extent of n cells.
func padding(n int) int {
	pad := int(math.Ceil(float64(n) * PaddingFactor))
	if pad < minPadding {
		pad = minPadding
	}
	return pad
}

// paddedBox returns the padded bounding box of p and the stamp origin inside it.
func paddedBox(p pattern.Pattern) (w, h, originX, originY int) {
	originX = padding(p.Width())
	originY = padding(p.Height())
	return p.Width() + 2*originX, p.Height() + 2*originY, originX, originY
}

// buildStatic evolves p exactly phase generations inside a padded scratch
// engine, then re-centers the snapshot into a square frozen engine. The result
// is a pixel-perfect evolution of the canonical layout, re-embeddable anywhere.
func buildStatic(cfg Config, p pattern.Pattern, phase int) *Entity {
	tmpW, tmpH, originX, originY := paddedBox(p)
	tmp := life.NewEngine(tmpW, tmpH, life.DefaultUpdateRate)
	tmp.SetPattern(p.Cells, originX, originY)
	for i := 0; i < phase; i++ {
		tmp.Update()
	}

	size := tmpW
	if tmpH > size {
		size = tmpH
	}
	eng := life.NewEngine(size, size, life.DefaultUpdateRate)
	offX := (size - tmpW) / 2
	offY := (size - tmpH) / 2
	for y := 0; y < tmpH; y++ {
		for x := 0; x < tmpW; x++ {
			if tmp.Cell(x, y) {
				eng.SetCell(offX+x, offY+y, true)
			}
		}
	}
	eng.Freeze()

	return &Entity{
		Engine: eng,
		Dims:   dimensions(size, cfg.CellSize, p),
		Meta: Metadata{
			Pattern:  p.Name,
			Mode:     ModeStatic,
			Phase:    phase,
			Period:   p.Period,
			Category: p.Category,
		},
	}
}

// buildLoop stamps p centered in an unfrozen padded square engine and attaches
// the loop state TickLoop uses to re-stamp the original cells once per period.
func buildLoop(cfg Config, p pattern.Pattern) *Entity {
	tmpW, tmpH, _, _ := paddedBox(p)
	size := tmpW
	if tmpH > size {
		size = tmpH
	}
	eng := life.NewEngine(size, size, cfg.UpdateRate)
	originX := (size - p.Width()) / 2
	originY := (size - p.Height()) / 2
	eng.SetPattern(p.Cells, originX, originY)

	return &Entity{
		Engine: eng,
		Dims:   dimensions(size, cfg.CellSize, p),
		Meta: Metadata{
			Pattern:  p.Name,
			Mode:     ModeLoop,
			Phase:    -1,
			Period:   p.Period,
			Category: p.Category,
		},
		Loop: &LoopState{
			Pattern: p,
			OriginX: originX,
			OriginY: originY,
			Period:  p.Period,
		},
	}
}

func dimensions(size, cellSize int, p pattern.Pattern) Dimensions {
	extent := p.Width()
	if p.Height() > extent {
		extent = p.Height()
	}
	return Dimensions{
		GridSize:     size,
		CellSize:     cellSize,
		PixelWidth:   size * cellSize,
		PixelHeight:  size * cellSize,
		HitboxRadius: float64(extent*cellSize) / 2,
	}
}
