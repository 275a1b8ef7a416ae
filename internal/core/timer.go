package core

import "time"

// FixedStep paces a wall-clock loop at a steady frames-per-second rate. The
// TUI viewer uses it to synthesize the 60 fps host frame clock the sprite
// engines expect; the GUI build gets the same cadence from ebiten's TPS.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS.
func NewFixedStep(fps int) *FixedStep {
	if fps <= 0 {
		fps = 60
	}
	fs := &FixedStep{step: time.Second / time.Duration(fps)}
	fs.accumulator = fs.step
	return fs
}

// ShouldStep reports whether one frame's worth of wall time has elapsed. The
// step is subtracted from the accumulator rather than zeroed so slow polls
// catch up instead of drifting.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
