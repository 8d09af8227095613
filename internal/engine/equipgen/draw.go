package equipgen

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// draw wraps a dice.Roller for a single Generate call.
// The first roller error is kept and every later roll returns 1,
// so the algorithm runs straight through and the caller checks err once.
type draw struct {
	roller dice.Roller
	err    error
}

// roll returns a value in [1, size]
func (d *draw) roll(size int) int {
	if d.err != nil || size <= 1 {
		return 1
	}

	v, err := d.roller.Roll(size)
	if err != nil {
		d.err = err
		return 1
	}
	return v
}

// index returns a value in [0, n)
func (d *draw) index(n int) int {
	return d.roll(n) - 1
}

// percent reports true with the given chance out of 100
func (d *draw) percent(chance int) bool {
	return d.roll(100) <= chance
}

// between returns a uniform value in [lo, hi]. A collapsed range returns lo.
func (d *draw) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.index(hi-lo+1)
}

// pick returns a uniform element of a non-empty list
func pick[T any](d *draw, items []T) T {
	return items[d.index(len(items))]
}

// skewed draws a value in [lo, hi]. Tainted gear pulls toward the extremes:
// 40% from the top tenth of the range, 30% from the band just above lo, the rest uniform.
// The bands are the integer forms of floor(0.9*hi + r*0.1*hi) and floor(lo + r*0.2*lo)
// for r in [0, 1), so the high band tops out at hi-1.
func (d *draw) skewed(state equipment.State, lo, hi int) int {
	if hi < lo {
		return lo
	}

	if state.IsTainted() {
		roll := d.roll(100)
		switch {
		case roll <= skewHighPercent:
			// the band starts below lo when hi is small
			return clamp(d.between(hi*9/10, hi-1), lo, hi)
		case roll <= skewLowPercent:
			return clamp(d.between(lo, (6*lo+4)/5-1), lo, hi)
		}
	}

	return d.between(lo, hi)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
