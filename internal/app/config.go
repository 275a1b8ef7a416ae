package app

import "github.com/integrii/flaggy"

// Config represents the command-line parameters shared by the viewer builds.
type Config struct {
	Pattern    string
	Mode       string
	Phase      int // -1 picks a random phase in static mode
	CellSize   int
	Rate       float64
	Scale      int
	Seed       int64
	Mask       bool
	MaskRadius float64
	MaskEvery  int
	LifeForce  bool
	Density    float64 // 0 disables density maintenance
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:  "pulsar",
		Mode:     "loop",
		Phase:    -1,
		CellSize: 8,
		Rate:     10,
		Scale:    1,
		Seed:     42,
	}
}

// Register attaches the configuration to the flaggy parser.
func (c *Config) Register(p *flaggy.Parser) {
	p.String(&c.Pattern, "p", "pattern", "catalog pattern to display")
	p.String(&c.Mode, "m", "mode", "render mode: static or loop")
	p.Int(&c.Phase, "", "phase", "evolution phase for static mode (-1 = random)")
	p.Int(&c.CellSize, "c", "cell-size", "cell size in pixels")
	p.Float64(&c.Rate, "r", "rate", "generations per second in loop mode")
	p.Int(&c.Scale, "", "scale", "extra pixel scale multiplier")
	p.Int64(&c.Seed, "s", "seed", "seed for random pattern and phase choices")
	p.Bool(&c.Mask, "", "mask", "prune cells outside a circular boundary")
	p.Float64(&c.MaskRadius, "", "mask-radius", "mask radius as a fraction of the half grid (0 = default)")
	p.Int(&c.MaskEvery, "", "mask-every", "generations between mask prunings (0 = default)")
	p.Bool(&c.LifeForce, "", "life-force", "top up density so the entity never goes extinct")
	p.Float64(&c.Density, "", "density", "maintain this apparent density (0 = off)")
}
