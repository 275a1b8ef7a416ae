// Package life implements the double-buffered Conway (B3/S23) grid engine that
// gives game entities their cellular look, plus the circular-mask wrapper used
// for organic silhouettes. The grid has a fixed dead boundary: reads outside it
// return dead and writes outside it are dropped, so neighbor and stamping code
// near edges needs no bounds branching.
package life

import (
	"fmt"

	"lifebox/pkg/core"
)

// HostFrameRate is the fixed rate, in frames per second, at which the host is
// expected to call UpdateThrottled.
const HostFrameRate = 60.0

// DefaultUpdateRate is the fallback simulation rate in generations per second.
const DefaultUpdateRate = 10.0

// Engine owns one grid and advances it under B3/S23. Two same-shape buffers
// back the grid; cur is the only externally visible generation and the buffers
// are pointer-swapped on every step, never copied. An Engine belongs to exactly
// one entity and is not safe for concurrent use.
type Engine struct {
	cols, rows int
	cur        []uint8
	nxt        []uint8

	generation int
	frozen     bool

	framesPerUpdate float64
	accumulator     float64
}

// NewEngine allocates an all-dead grid. updateRate is in generations per
// second against the HostFrameRate frame clock; a non-positive rate falls
// back to DefaultUpdateRate. Non-positive dimensions are a caller bug and
// panic.
func NewEngine(cols, rows int, updateRate float64) *Engine {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("life: non-positive grid dimensions %dx%d", cols, rows))
	}
	if updateRate <= 0 {
		updateRate = DefaultUpdateRate
	}
	total := cols * rows
	return &Engine{
		cols:            cols,
		rows:            rows,
		cur:             make([]uint8, total),
		nxt:             make([]uint8, total),
		framesPerUpdate: HostFrameRate / updateRate,
	}
}

// Cols returns the grid width in cells.
func (e *Engine) Cols() int { return e.cols }

// Rows returns the grid height in cells.
func (e *Engine) Rows() int { return e.rows }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cols, H: e.rows} }

// Generation returns the number of evolution steps taken since the last Clear.
func (e *Engine) Generation() int { return e.generation }

// Cells exposes the current buffer in row-major order for painters. Callers
// must treat it as read-only; the backing slice changes identity on every step.
func (e *Engine) Cells() []uint8 { return e.cur }

// Cell reports whether the cell at (x, y) is alive. Out-of-range coordinates
// read as dead.
func (e *Engine) Cell(x, y int) bool {
	if x < 0 || x >= e.cols || y < 0 || y >= e.rows {
		return false
	}
	return e.cur[y*e.cols+x] == 1
}

// SetCell writes the cell at (x, y). Out-of-range writes are dropped.
func (e *Engine) SetCell(x, y int, alive bool) {
	if x < 0 || x >= e.cols || y < 0 || y >= e.rows {
		return
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	e.cur[y*e.cols+x] = v
}

// SetPattern stamps a cell layout with its top-left corner at (originX,
// originY). Cells landing outside the grid are clipped.
func (e *Engine) SetPattern(cells [][]bool, originX, originY int) {
	for dy, row := range cells {
		for dx, alive := range row {
			if alive {
				e.SetCell(originX+dx, originY+dy, true)
			}
		}
	}
}

// Clear kills every cell in both buffers and resets the generation counter.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = 0
		e.nxt[i] = 0
	}
	e.generation = 0
}

// RandomSeed repopulates the grid deterministically from seed, each cell
// independently alive with the given probability.
func (e *Engine) RandomSeed(seed int64, density float64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, e.cur, density)
}

// liveNeighbors counts the live Moore neighbors of (x, y) in buf. Neighbors
// beyond the grid edge count as dead.
func (e *Engine) liveNeighbors(buf []uint8, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= e.cols || ny < 0 || ny >= e.rows {
				continue
			}
			n += int(buf[ny*e.cols+nx])
		}
	}
	return n
}

// Rule applies B3/S23: a live cell survives with 2 or 3 live neighbors, a dead
// cell is born with exactly 3. Everything else dies.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Update advances the grid by one generation. Every next state is computed
// from the prior buffer before the swap, so no cell ever observes a partially
// updated generation.
func (e *Engine) Update() {
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			idx := y*e.cols + x
			next := Rule(e.cur[idx] == 1, e.liveNeighbors(e.cur, x, y))
			e.nxt[idx] = 0
			if next {
				e.nxt[idx] = 1
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// UpdateThrottled is the per-frame entry point. It accumulates one host frame
// per call and steps the simulation whenever a full update interval has
// elapsed, reporting whether a generation happened. The interval is subtracted
// from the accumulator rather than zeroed, so fractional intervals (2.4 frames
// per update, say) average out exactly over time. Frozen engines do nothing.
func (e *Engine) UpdateThrottled() bool {
	if e.frozen {
		return false
	}
	e.accumulator++
	if e.accumulator < e.framesPerUpdate {
		return false
	}
	e.accumulator -= e.framesPerUpdate
	e.Update()
	return true
}

// Freeze stops throttled updates from advancing the grid.
func (e *Engine) Freeze() { e.frozen = true }

// Unfreeze resumes normal throttled advancement.
func (e *Engine) Unfreeze() { e.frozen = false }

// Frozen reports whether throttled updates are suspended.
func (e *Engine) Frozen() bool { return e.frozen }

// AliveCells counts the live cells in the current generation.
func (e *Engine) AliveCells() int {
	n := 0
	for _, c := range e.cur {
		n += int(c)
	}
	return n
}

// Density returns the live fraction of the grid in [0, 1].
func (e *Engine) Density() float64 {
	return float64(e.AliveCells()) / float64(len(e.cur))
}
