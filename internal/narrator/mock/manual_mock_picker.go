package mocknarrator

import (
	"sync"
)

// ManualMockPicker implements narrator.Picker with scripted indices.
// Once the script runs out it keeps returning the first option.
type ManualMockPicker struct {
	mu        sync.Mutex
	picks     []int
	pickIndex int
}

// NewManualMockPicker creates a new scripted picker
func NewManualMockPicker(picks ...int) *ManualMockPicker {
	return &ManualMockPicker{
		picks: picks,
	}
}

// SetPicks replaces the script and rewinds it
func (m *ManualMockPicker) SetPicks(picks []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.picks = picks
	m.pickIndex = 0
}

// Pick implements narrator.Picker.Pick. Out of range indices wrap around.
func (m *ManualMockPicker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pickIndex >= len(m.picks) {
		return options[0]
	}

	idx := m.picks[m.pickIndex] % len(options)
	m.pickIndex++
	return options[idx]
}
