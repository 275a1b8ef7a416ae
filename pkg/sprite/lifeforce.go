package sprite

import (
	"math"
	"math/rand/v2"
)

// LifeForceFloor is the density below which ApplyLifeForce starts injecting
// cells. Visual tuning value, not a simulation constant.
const LifeForceFloor = 0.45

// CenterBiasRadius bounds life-force injection to this fraction of the grid's
// maximum radius, keeping revived cells clustered around the entity's center.
const CenterBiasRadius = 0.7

// injection draws per wanted cell before giving up; collisions with already
// live cells burn attempts.
const injectionAttemptsPerCell = 8

// ApplyLifeForce tops up an entity that must never go visually extinct. When
// density has fallen below LifeForceFloor it injects live cells by polar
// sampling around the grid center, in proportion to the deficit. It only adds
// cells and does nothing once density meets the floor. Returns the number of
// cells injected.
func ApplyLifeForce(e *Entity, rng *rand.Rand) int {
	eng := e.Engine
	density := eng.Density()
	if density >= LifeForceFloor {
		return 0
	}

	total := eng.Cols() * eng.Rows()
	want := int(math.Ceil((LifeForceFloor - density) * float64(total)))
	maxRadius := float64(eng.Size().Minor()) / 2 * CenterBiasRadius
	centerX := float64(eng.Cols()-1) / 2
	centerY := float64(eng.Rows()-1) / 2

	injected := 0
	for attempts := 0; injected < want && attempts < want*injectionAttemptsPerCell; attempts++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * maxRadius
		x := int(math.Round(centerX + math.Cos(angle)*radius))
		y := int(math.Round(centerY + math.Sin(angle)*radius))
		if eng.Cell(x, y) {
			continue
		}
		eng.SetCell(x, y, true)
		injected++
	}
	return injected
}

// MaintainDensity keeps a non-evolving entity at a fixed apparent density,
// injecting uniformly random live cells until the target is met. A cosmetic
// stabilizer for shapes like projectiles, not a simulation rule: it only adds
// cells and does nothing once density meets the target. Returns the number of
// cells injected.
func MaintainDensity(e *Entity, target float64, rng *rand.Rand) int {
	eng := e.Engine
	total := eng.Cols() * eng.Rows()
	wantAlive := int(math.Ceil(target * float64(total)))
	alive := eng.AliveCells()
	if alive >= wantAlive {
		return 0
	}

	want := wantAlive - alive
	injected := 0
	for attempts := 0; injected < want && attempts < want*injectionAttemptsPerCell; attempts++ {
		x := rng.IntN(eng.Cols())
		y := rng.IntN(eng.Rows())
		if eng.Cell(x, y) {
			continue
		}
		eng.SetCell(x, y, true)
		injected++
	}
	return injected
}
