package planner

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses one activity among options. options is never empty.
type Picker interface {
	Pick(options []string) string
}

type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker draws uniformly. A zero seed picks a random one.
func NewRandomPicker(seed uint64) Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &randomPicker{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (p *randomPicker) Pick(options []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return options[p.rng.IntN(len(options))]
}
