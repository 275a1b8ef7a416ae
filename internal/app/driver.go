package app

import (
	"math/rand/v2"

	"lifebox/pkg/core"
	"lifebox/pkg/life"
	"lifebox/pkg/sprite"
)

// Driver owns one sprite entity and advances it the way a game object would:
// one throttled update per host frame, then the optional mask, loop reset, and
// density helpers.
type Driver struct {
	Entity *sprite.Entity
	Masked *life.MaskedEngine

	cfg *Config
	rng *rand.Rand
}

// NewDriver builds the entity described by cfg and wires up its per-frame
// helpers. Configuration mistakes surface as sprite config errors.
func NewDriver(cfg *Config) (*Driver, error) {
	d := &Driver{cfg: cfg, rng: core.NewRNG(cfg.Seed).Source()}
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) build() error {
	sc := sprite.Config{
		Mode:       sprite.Mode(d.cfg.Mode),
		Pattern:    d.cfg.Pattern,
		CellSize:   d.cfg.CellSize,
		UpdateRate: d.cfg.Rate,
		Seed:       d.cfg.Seed,
	}
	if d.cfg.Mode == string(sprite.ModeStatic) && d.cfg.Phase >= 0 {
		phase := d.cfg.Phase
		sc.Phase = &phase
	}

	entity, err := sprite.New(sc)
	if err != nil {
		return err
	}
	d.Entity = entity
	d.Masked = nil
	if d.cfg.Mask {
		d.Masked = life.NewMasked(entity.Engine, d.cfg.MaskRadius, d.cfg.MaskEvery)
	}
	return nil
}

// Frame advances the entity by one host frame and reports whether a
// generation ran.
func (d *Driver) Frame() bool {
	stepped := false
	if d.Masked != nil {
		stepped = d.Masked.UpdateThrottled()
	} else {
		stepped = d.Entity.Engine.UpdateThrottled()
	}
	d.Entity.TickLoop()
	if d.cfg.LifeForce {
		sprite.ApplyLifeForce(d.Entity, d.rng)
	}
	if d.cfg.Density > 0 {
		sprite.MaintainDensity(d.Entity, d.cfg.Density, d.rng)
	}
	return stepped
}

// Reset rebuilds the entity from its configuration.
func (d *Driver) Reset() error {
	d.rng = core.NewRNG(d.cfg.Seed).Source()
	return d.build()
}
