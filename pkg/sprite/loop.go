package sprite

import "lifebox/pkg/pattern"

// LoopState tracks a loop-mode entity's progress through its pattern period.
// It compares engine generations between checks instead of counting calls, so
// the reset cadence stays exact no matter how many throttled updates the host
// squeezed in between.
type LoopState struct {
	Pattern pattern.Pattern
	OriginX int
	OriginY int
	Period  int

	ResetCounter   int
	LastGeneration int
}

// TickLoop advances the entity's loop bookkeeping by however many whole
// generations elapsed since the previous call. Once a full period has
// accumulated it clears the grid and re-stamps the original pattern cells at
// their original offsets, so the animation returns to an exact, drift-free
// copy of its seed once per cycle. It reports whether a reset happened and is
// a no-op for static entities.
func (e *Entity) TickLoop() bool {
	ls := e.Loop
	if ls == nil {
		return false
	}

	gen := e.Engine.Generation()
	elapsed := gen - ls.LastGeneration
	if elapsed < 0 {
		elapsed = 0
	}
	ls.LastGeneration = gen
	ls.ResetCounter += elapsed

	if ls.Period <= 0 || ls.ResetCounter < ls.Period {
		return false
	}

	e.Engine.Clear()
	e.Engine.SetPattern(ls.Pattern.Cells, ls.OriginX, ls.OriginY)
	ls.ResetCounter = 0
	ls.LastGeneration = e.Engine.Generation()
	return true
}
