package sprite

import (
	"testing"

	"lifebox/pkg/core"
	"lifebox/pkg/pattern"
)

func TestLifeForceAdditiveMonotonic(t *testing.T) {
	e, err := New(Config{Mode: ModeStatic, Pattern: pattern.Tub, Phase: intptr(0), CellSize: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(7).Source()

	start := e.Engine.AliveCells()
	prev := start
	for i := 0; i < 50; i++ {
		ApplyLifeForce(e, rng)
		alive := e.Engine.AliveCells()
		if alive < prev {
			t.Fatalf("life force removed cells: %d -> %d", prev, alive)
		}
		prev = alive
	}
	if prev == start {
		t.Fatalf("life force injected nothing at density %v, below floor %v", float64(start)/float64(e.Engine.Cols()*e.Engine.Rows()), LifeForceFloor)
	}
}

func TestLifeForceIdempotentAboveFloor(t *testing.T) {
	e, err := New(Config{Mode: ModeStatic, Pattern: pattern.Block, Phase: intptr(0), CellSize: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	eng := e.Engine
	for y := 0; y < eng.Rows(); y++ {
		for x := 0; x < eng.Cols(); x++ {
			eng.SetCell(x, y, true)
		}
	}
	rng := core.NewRNG(7).Source()

	if injected := ApplyLifeForce(e, rng); injected != 0 {
		t.Fatalf("life force injected %d cells above the floor", injected)
	}
}

func TestLifeForceBiasedTowardCenter(t *testing.T) {
	e, err := New(Config{Mode: ModeStatic, Pattern: pattern.Pulsar, Phase: intptr(0), CellSize: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	eng := e.Engine
	eng.Clear()
	rng := core.NewRNG(11).Source()

	ApplyLifeForce(e, rng)

	// All injected cells stay inside the center-bias radius.
	maxRadius := float64(eng.Size().Minor()) / 2 * CenterBiasRadius
	centerX := float64(eng.Cols()-1) / 2
	centerY := float64(eng.Rows()-1) / 2
	for y := 0; y < eng.Rows(); y++ {
		for x := 0; x < eng.Cols(); x++ {
			if !eng.Cell(x, y) {
				continue
			}
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			if dx*dx+dy*dy > (maxRadius+1)*(maxRadius+1) {
				t.Fatalf("injected cell (%d,%d) outside the center-bias radius", x, y)
			}
		}
	}
}

func TestMaintainDensityReachesTarget(t *testing.T) {
	e, err := New(Config{Mode: ModeStatic, Pattern: pattern.Block, Phase: intptr(0), CellSize: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(5).Source()

	const target = 0.3
	prev := e.Engine.AliveCells()
	for i := 0; i < 20; i++ {
		MaintainDensity(e, target, rng)
		alive := e.Engine.AliveCells()
		if alive < prev {
			t.Fatalf("density maintenance removed cells: %d -> %d", prev, alive)
		}
		prev = alive
	}
	if e.Engine.Density() < target {
		t.Fatalf("density %v below target %v after repeated maintenance", e.Engine.Density(), target)
	}
	if injected := MaintainDensity(e, target, rng); injected != 0 {
		t.Fatalf("maintenance injected %d cells at target density", injected)
	}
}
