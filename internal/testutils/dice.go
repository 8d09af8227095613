package testutils

import (
	"errors"
	"math/rand/v2"
	"sync"
)

// ErrRollerExhausted is returned by ScriptedRoller once its script runs out
var ErrRollerExhausted = errors.New("scripted roller exhausted")

// FixedRoller returns the same face for every die, clamped to the die size.
// A FixedRoller of 1 always takes the first option and the lowest value.
// A large Value is not the top face of a larger die; use MaxRoller for that.
type FixedRoller struct {
	Value int
}

// Roll implements dice.Roller
func (r FixedRoller) Roll(size int) (int, error) {
	return min(max(r.Value, 1), size), nil
}

// RollN implements dice.Roller
func (r FixedRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// MaxRoller always returns the top face of whatever die is rolled.
// It takes the last option and the highest value of every range.
type MaxRoller struct{}

// Roll implements dice.Roller
func (MaxRoller) Roll(size int) (int, error) {
	return max(size, 1), nil
}

// RollN implements dice.Roller
func (r MaxRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// SeededRoller is a reproducible uniform roller for property tests
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll implements dice.Roller
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.New("die size must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN implements dice.Roller
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// ScriptedRoller plays back faces in order, clamping each to the die size.
// Once the script is used up it keeps returning Fallback, or
// ErrRollerExhausted when Fallback is 0.
type ScriptedRoller struct {
	Faces    []int
	Fallback int

	mu    sync.Mutex
	next  int
	Sizes []int
}

// Roll implements dice.Roller and records the requested die size
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)

	var face int
	switch {
	case r.next < len(r.Faces):
		face = r.Faces[r.next]
		r.next++
	case r.Fallback > 0:
		face = r.Fallback
	default:
		return 0, ErrRollerExhausted
	}
	return min(max(face, 1), size), nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// FailingRoller fails every roll after the first After successes
type FailingRoller struct {
	After int
	Err   error

	mu    sync.Mutex
	calls int
}

// Roll implements dice.Roller
func (r *FailingRoller) Roll(_ int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.calls > r.After {
		return 0, r.Err
	}
	return 1, nil
}

// RollN implements dice.Roller
func (r *FailingRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// Calls reports how many rolls were requested
func (r *FailingRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func rollN(r interface{ Roll(int) (int, error) }, count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
