package equipgen

import (
	"fmt"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// generateEnchantments rolls the enchantment list for one item within its capacity.
// The list can end short of the tier's target when the budget or the retry cap runs out.
func (g *generator) generateEnchantments(
	d *draw,
	quality equipment.Quality,
	totalCapacity int,
	state equipment.State,
) []equipment.Enchantment {
	remaining := totalCapacity
	enchantments := make([]equipment.Enchantment, 0, 6)
	used := make(map[string]bool)

	if state.IsTainted() && d.percent(negativeInjectPercent) {
		enchantments = append(enchantments, rollNegative(d))
		remaining += NegativeCapacityRefund
	}

	if quality == equipment.QualityDarkstar {
		if adv, ok := rollGuaranteedAdvanced(d, state, remaining); ok {
			enchantments = append(enchantments, adv)
			used[adv.Name] = true
			remaining -= Cost(adv)
		}
	}

	target := rollTargetCount(d, quality)
	for len(enchantments) < target && remaining > 0 {
		ench, ok := g.rollWithinCapacity(d, state, remaining, used)
		if !ok {
			break
		}
		enchantments = append(enchantments, ench)
		used[ench.Name] = true
		remaining -= Cost(ench)
	}

	markUpgradeable(d, quality, enchantments)

	return enchantments
}

func rollNegative(d *draw) equipment.Enchantment {
	t := pick(d, negativeTemplates)
	return equipment.Enchantment{
		Type:     equipment.EnchantmentTypeNegative,
		Name:     t.name,
		Value:    0,
		Display:  t.display,
		Category: equipment.CategoryNegative,
	}
}

// rollGuaranteedAdvanced is the darkstar slot: an advanced attribute worth 11-20 points.
// It is skipped when the budget cannot afford the 11 point floor.
func rollGuaranteedAdvanced(d *draw, state equipment.State, remaining int) (equipment.Enchantment, bool) {
	attribute := pick(d, advancedAttributes)

	maxValue := min(maxAdvancedPoints, remaining/CostPerAttributePoint)
	if maxValue < minAdvancedPoints {
		return equipment.Enchantment{}, false
	}

	value := d.skewed(state, minAdvancedPoints, maxValue)
	return attributeEnchantment(attribute, value, true), true
}

func rollTargetCount(d *draw, quality equipment.Quality) int {
	switch quality {
	case equipment.QualityDarkstar:
		return 5
	case equipment.QualityLegendary:
		if d.percent(50) {
			return 2
		}
		return 5
	case equipment.QualityEpic:
		if d.percent(50) {
			return 2
		}
		return 3
	default:
		if d.percent(70) {
			return 1
		}
		return 2
	}
}

// rollWithinCapacity draws candidates until one is new and affordable, giving up after
// maxFillAttempts. Accepted attribute and skill values are re-rolled against the budget.
func (g *generator) rollWithinCapacity(
	d *draw,
	state equipment.State,
	remaining int,
	used map[string]bool,
) (equipment.Enchantment, bool) {
	for attempt := 0; attempt < maxFillAttempts; attempt++ {
		ench := g.rollEnchantment(d)
		if used[ench.Name] {
			continue
		}
		if Cost(ench) > remaining {
			continue
		}

		if ench.IsScaled() {
			ench.Value = d.skewed(state, 1, remaining/CostPerAttributePoint)
			ench.Display = pointsDisplay(ench.Name, ench.Value)
		}
		return ench, true
	}
	return equipment.Enchantment{}, false
}

// rollEnchantment draws one unconstrained candidate: 20% special, 30% attribute, 50% skill
func (g *generator) rollEnchantment(d *draw) equipment.Enchantment {
	roll := d.roll(100)
	switch {
	case roll <= specialPercent:
		return g.rollSpecial(d)
	case roll <= attributePercent:
		advanced := d.percent(advancedAttributePercent)
		pool := mainAttributes
		if advanced {
			pool = advancedAttributes
		}
		return attributeEnchantment(pick(d, pool), d.between(1, maxRolledPoints), advanced)
	default:
		attribute := pick(d, mainAttributes)
		skill := pick(d, skillsByAttribute[attribute])
		return skillEnchantment(skill, attribute, d.between(1, maxRolledPoints))
	}
}

func (g *generator) rollSpecial(d *draw) equipment.Enchantment {
	templates := g.pool.basics
	if d.percent(weaponSpellPercent) {
		templates = g.pool.spells
	}

	t := pick(d, templates)
	return t.Build(d.between(t.Min, t.Max))
}

// markUpgradeable flags distinct random entries as upgradeable.
// Darkstar and legendary flag 1-2, lower tiers 0-2. Negatives are never flagged.
func markUpgradeable(d *draw, quality equipment.Quality, enchantments []equipment.Enchantment) {
	var count int
	if quality == equipment.QualityDarkstar || quality == equipment.QualityLegendary {
		count = 1 + d.index(2)
	} else {
		count = d.index(3)
	}

	count = min(count, len(enchantments))
	if count == 0 {
		return
	}

	// partial Fisher-Yates so the chosen indices are distinct
	indices := make([]int, len(enchantments))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + d.index(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	for _, idx := range indices[:count] {
		if enchantments[idx].IsNegative() {
			continue
		}
		enchantments[idx].Upgradeable = true
	}
}

func attributeEnchantment(name string, value int, advanced bool) equipment.Enchantment {
	return equipment.Enchantment{
		Type:       equipment.EnchantmentTypeAttribute,
		Name:       name,
		Value:      value,
		Display:    pointsDisplay(name, value),
		Category:   equipment.CategoryAttribute,
		IsAdvanced: advanced,
	}
}

func skillEnchantment(name, attribute string, value int) equipment.Enchantment {
	return equipment.Enchantment{
		Type:      equipment.EnchantmentTypeSkill,
		Name:      name,
		Value:     value,
		Display:   pointsDisplay(name, value),
		Category:  equipment.CategorySkill,
		BelongsTo: attribute,
	}
}

func pointsDisplay(name string, value int) string {
	return fmt.Sprintf("%s+%d", name, value)
}
