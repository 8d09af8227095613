package equipgen

import (
	"strings"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// Capacity prices
const (
	CostPerAttributePoint = 50
	CostPerSkillPoint     = 50
	CostPerWeaponPoint    = 1
	CostPerCritPoint      = 50
	CostPerReducePoint    = 40
	CostPerBlockPoint     = 40
	CostImmuneFixed       = 50

	// NegativeCapacityRefund is what a negative enchantment gives back to the budget.
	// It counts as -NegativeCapacityRefund in used capacity.
	NegativeCapacityRefund = 500
)

// Cost returns the capacity an enchantment consumes.
// Negative enchantments cost 0 here; they are accounted for in UsedCapacity.
func Cost(e equipment.Enchantment) int {
	switch e.Type {
	case equipment.EnchantmentTypeAttribute:
		return e.Value * CostPerAttributePoint
	case equipment.EnchantmentTypeSkill:
		return e.Value * CostPerSkillPoint
	case equipment.EnchantmentTypeSpecial:
		return specialCost(e)
	case equipment.EnchantmentTypeNegative:
		return 0
	default:
		return 0
	}
}

func specialCost(e equipment.Enchantment) int {
	switch specialEffect(e) {
	case equipment.EffectWeapon:
		return e.Value * CostPerWeaponPoint
	case equipment.EffectCrit:
		return e.Value * CostPerCritPoint
	case equipment.EffectReducePhysical, equipment.EffectReduceMagic:
		return e.Value * CostPerReducePoint
	case equipment.EffectImmune:
		return CostImmuneFixed
	case equipment.EffectBlock:
		return e.Value * CostPerBlockPoint
	default:
		return 0
	}
}

// basicEffectsByName resolves records stored without an effect tag
var basicEffectsByName = map[string]equipment.Effect{
	"暴击":        equipment.EffectCrit,
	"格挡率":       equipment.EffectBlock,
	"承受的物理伤害减少": equipment.EffectReducePhysical,
	"承受的魔法伤害减少": equipment.EffectReduceMagic,
	"小几率免疫伤害":   equipment.EffectImmune,
}

func specialEffect(e equipment.Enchantment) equipment.Effect {
	if e.Effect != "" {
		return e.Effect
	}
	if strings.HasPrefix(e.Name, WeaponEffectMarker) {
		return equipment.EffectWeapon
	}
	return basicEffectsByName[e.Name]
}

// UsedCapacity sums the cost of a list, counting each negative enchantment as a refund
func UsedCapacity(enchantments []equipment.Enchantment) int {
	used := 0
	for _, e := range enchantments {
		if e.IsNegative() {
			used -= NegativeCapacityRefund
			continue
		}
		used += Cost(e)
	}
	return used
}
