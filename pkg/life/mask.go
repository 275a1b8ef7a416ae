package life

import "math"

// DefaultMaskRadiusFrac is the mask radius as a fraction of half the grid's
// minor dimension. Visual tuning value, not a simulation constant.
const DefaultMaskRadiusFrac = 0.8

// DefaultMaskInterval is how many generations pass between prunings.
const DefaultMaskInterval = 4

// MaskedEngine wraps an Engine and periodically kills cells outside a circular
// boundary, turning the rectangular grid silhouette into an organic one. The
// pattern evolves freely between prunings and snaps back to a roughly circular
// outline on a visible cadence. The mask only removes cells.
type MaskedEngine struct {
	eng *Engine

	centerX  float64
	centerY  float64
	radius   float64
	interval int
}

// NewMasked wraps eng with a circular mask. radiusFrac scales half the minor
// grid dimension (DefaultMaskRadiusFrac when non-positive); interval is the
// pruning cadence in generations (DefaultMaskInterval when non-positive).
func NewMasked(eng *Engine, radiusFrac float64, interval int) *MaskedEngine {
	if radiusFrac <= 0 {
		radiusFrac = DefaultMaskRadiusFrac
	}
	if interval <= 0 {
		interval = DefaultMaskInterval
	}
	return &MaskedEngine{
		eng:      eng,
		centerX:  float64(eng.Cols()-1) / 2,
		centerY:  float64(eng.Rows()-1) / 2,
		radius:   radiusFrac * float64(eng.Size().Minor()) / 2,
		interval: interval,
	}
}

// Engine returns the wrapped engine.
func (m *MaskedEngine) Engine() *Engine { return m.eng }

// Update steps the inner engine one generation and applies the mask when the
// new generation lands on the pruning cadence.
func (m *MaskedEngine) Update() {
	m.eng.Update()
	m.maskIfDue()
}

// UpdateThrottled forwards to the inner engine's throttle and applies the mask
// on generations that land on the pruning cadence. It reports whether a
// generation happened.
func (m *MaskedEngine) UpdateThrottled() bool {
	stepped := m.eng.UpdateThrottled()
	if stepped {
		m.maskIfDue()
	}
	return stepped
}

func (m *MaskedEngine) maskIfDue() {
	if m.eng.Generation()%m.interval == 0 {
		m.ApplyMask()
	}
}

// ApplyMask kills every live cell whose distance from the grid center exceeds
// the mask radius. It never revives a cell.
func (m *MaskedEngine) ApplyMask() {
	for y := 0; y < m.eng.Rows(); y++ {
		for x := 0; x < m.eng.Cols(); x++ {
			if !m.eng.Cell(x, y) {
				continue
			}
			dx := float64(x) - m.centerX
			dy := float64(y) - m.centerY
			if math.Sqrt(dx*dx+dy*dy) > m.radius {
				m.eng.SetCell(x, y, false)
			}
		}
	}
}
