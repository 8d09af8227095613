package equipgen

import (
	"fmt"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// SpecialTemplate describes one special enchantment: its effect family, the
// inclusive value range it rolls in, and how a rolled value is displayed.
type SpecialTemplate struct {
	Effect equipment.Effect
	Name   string
	Min    int
	Max    int
	Spell  string

	display func(value int) string
}

// Display renders a rolled value the way this template shows it
func (t SpecialTemplate) Display(value int) string {
	return t.display(value)
}

// Build creates the enchantment for a rolled value.
// Weapon effects are named "<template>(<spell>)".
func (t SpecialTemplate) Build(value int) equipment.Enchantment {
	name := t.Name
	if t.Spell != "" {
		name += "(" + t.Spell + ")"
	}

	return equipment.Enchantment{
		Type:     equipment.EnchantmentTypeSpecial,
		Name:     name,
		Value:    value,
		Display:  t.Display(value),
		Category: equipment.CategorySpecial,
		Effect:   t.Effect,
		Spell:    t.Spell,
	}
}

// specialPool is the frozen template pool. It is built once by New and only read after.
type specialPool struct {
	basics []SpecialTemplate
	spells []SpecialTemplate
}

func newSpecialPool() specialPool {
	basics := []SpecialTemplate{
		{
			Effect:  equipment.EffectCrit,
			Name:    "暴击",
			Min:     1,
			Max:     20,
			display: func(n int) string { return fmt.Sprintf("暴击+%d%%", n) },
		},
		{
			Effect:  equipment.EffectBlock,
			Name:    "格挡率",
			Min:     1,
			Max:     30,
			display: func(n int) string { return fmt.Sprintf("格挡率+%d%%", n) },
		},
		{
			Effect:  equipment.EffectReducePhysical,
			Name:    "承受的物理伤害减少",
			Min:     1,
			Max:     50,
			display: func(n int) string { return fmt.Sprintf("承受的物理伤害减少%d%%", n) },
		},
		{
			Effect:  equipment.EffectReduceMagic,
			Name:    "承受的魔法伤害减少",
			Min:     1,
			Max:     50,
			display: func(n int) string { return fmt.Sprintf("承受的魔法伤害减少%d%%", n) },
		},
		{
			Effect:  equipment.EffectImmune,
			Name:    "小几率免疫伤害",
			Min:     1,
			Max:     1800,
			display: func(n int) string { return fmt.Sprintf("小几率免疫伤害[%d]", n) },
		},
	}

	spells := make([]SpecialTemplate, 0, len(spellNames))
	for _, spell := range spellNames {
		name := WeaponEffectMarker + spell
		spells = append(spells, SpecialTemplate{
			Effect:  equipment.EffectWeapon,
			Name:    name,
			Min:     1,
			Max:     1000,
			Spell:   spell,
			display: func(n int) string { return fmt.Sprintf("%s[%d]", name, n) },
		})
	}

	return specialPool{basics: basics, spells: spells}
}

// templates returns a copy of every template, basics first
func (p specialPool) templates() []SpecialTemplate {
	out := make([]SpecialTemplate, 0, len(p.basics)+len(p.spells))
	out = append(out, p.basics...)
	return append(out, p.spells...)
}
