package view

// DefaultSteps is the magnification table. The last entry is full size.
var DefaultSteps = []int{15, 17, 20, 24, 30}

// Magnifier selects a zoom from a fixed ascending table of integer factors.
type Magnifier struct {
	steps []int
	index int
}

// NewMagnifier starts at the last (full size) step. An empty table falls back
// to DefaultSteps.
func NewMagnifier(steps []int) *Magnifier {
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	s := make([]int, len(steps))
	copy(s, steps)
	return &Magnifier{steps: s, index: len(s) - 1}
}

// Zoom is the current step relative to the last one.
func (m *Magnifier) Zoom() float64 {
	return float64(m.steps[m.index]) / float64(m.steps[len(m.steps)-1])
}

// Index returns the current step.
func (m *Magnifier) Index() int { return m.index }

// Len returns the number of steps.
func (m *Magnifier) Len() int { return len(m.steps) }

// SetIndex jumps to step i, clamped to the table. It reports whether the step
// changed.
func (m *Magnifier) SetIndex(i int) bool {
	if i < 0 {
		i = 0
	}
	if i > len(m.steps)-1 {
		i = len(m.steps) - 1
	}
	changed := i != m.index
	m.index = i
	return changed
}

// In steps towards full size. It reports false at the end of the table.
func (m *Magnifier) In() bool {
	return m.SetIndex(m.index + 1)
}

// Out steps away from full size. It reports false at the start of the table.
func (m *Magnifier) Out() bool {
	return m.SetIndex(m.index - 1)
}

// Reset returns to full size.
func (m *Magnifier) Reset() bool {
	return m.SetIndex(len(m.steps) - 1)
}
