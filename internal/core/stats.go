package core

import "lifebox/pkg/sprite"

// Stats is a per-frame snapshot of an entity's simulation state, shared by the
// GUI overlay and the TUI status bar.
type Stats struct {
	Pattern    string
	Mode       string
	Phase      int
	Period     int
	Category   string
	GridSize   int
	Generation int
	Alive      int
	Density    float64
}

// Collect reads the current snapshot from an entity.
func Collect(e *sprite.Entity) Stats {
	return Stats{
		Pattern:    e.Meta.Pattern,
		Mode:       string(e.Meta.Mode),
		Phase:      e.Meta.Phase,
		Period:     e.Meta.Period,
		Category:   string(e.Meta.Category),
		GridSize:   e.Dims.GridSize,
		Generation: e.Engine.Generation(),
		Alive:      e.Engine.AliveCells(),
		Density:    e.Engine.Density(),
	}
}
