package narrator

import (
	"math/rand"
	"sync"
	"time"
)

// randomPicker implements Picker with a uniform choice
type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker creates a picker seeded with seed; 0 seeds from the clock
func NewRandomPicker(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomPicker{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Pick implements Picker.Pick
func (p *randomPicker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return options[p.rng.Intn(len(options))]
}
