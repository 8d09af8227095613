package equipment

import "strings"

// CapacityBand buckets how full an item's enchantment capacity is
type CapacityBand string

// Capacity bands
const (
	CapacityOK       CapacityBand = "ok"
	CapacityWarning  CapacityBand = "warning"
	CapacityCritical CapacityBand = "critical"
)

const (
	capacityWarningPercent  = 70
	capacityCriticalPercent = 90
)

// CapacityUsage returns the used share of capacity as a percentage clamped to [0, 100]
// together with its band. Negative usage (from negative enchantments) reads as 0.
func (e *Equipment) CapacityUsage() (int, CapacityBand) {
	if e.EnchantmentCapacity <= 0 {
		return 0, CapacityOK
	}

	percent := e.UsedCapacity * 100 / e.EnchantmentCapacity
	percent = max(0, min(percent, 100))

	switch {
	case percent >= capacityCriticalPercent:
		return percent, CapacityCritical
	case percent >= capacityWarningPercent:
		return percent, CapacityWarning
	default:
		return percent, CapacityOK
	}
}

// Kind groups equipment by what its noun describes
type Kind string

// Equipment kinds
const (
	KindWeapon    Kind = "weapon"
	KindArmor     Kind = "armor"
	KindAccessory Kind = "accessory"
)

// Kind classifies the equipment from the characters of its noun
func (e *Equipment) Kind() Kind {
	switch {
	case strings.ContainsAny(e.Noun, "剑斧锤枪"):
		return KindWeapon
	case strings.ContainsAny(e.Noun, "盾甲盔"):
		return KindArmor
	default:
		return KindAccessory
	}
}
