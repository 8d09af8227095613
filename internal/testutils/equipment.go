package testutils

import (
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// NewTestEquipment returns a fully populated cursed legendary record that
// carries one enchantment of every kind
func NewTestEquipment(id string) *equipment.Equipment {
	return &equipment.Equipment{
		ID:        id,
		Name:      "诅咒的传说的长剑",
		Adjective: "传说",
		Noun:      "长剑",
		Quality:   equipment.QualityLegendary,
		State:     equipment.StateCursed,
		Level:     1234,
		Enchantments: []equipment.Enchantment{
			{
				Type:     equipment.EnchantmentTypeNegative,
				Name:     "中断成长",
				Display:  "中断你的成长",
				Category: equipment.CategoryNegative,
			},
			{
				Type:        equipment.EnchantmentTypeAttribute,
				Name:        "力量",
				Value:       12,
				Display:     "力量+12",
				Category:    equipment.CategoryAttribute,
				Upgradeable: true,
			},
			{
				Type:      equipment.EnchantmentTypeSkill,
				Name:      "长剑专精",
				Value:     4,
				Display:   "长剑专精+4",
				Category:  equipment.CategorySkill,
				BelongsTo: "力量",
			},
			{
				Type:     equipment.EnchantmentTypeSpecial,
				Name:     "武器特效：炽热射线(炽热射线)",
				Value:    300,
				Display:  "武器特效：炽热射线[300]",
				Category: equipment.CategorySpecial,
				Effect:   equipment.EffectWeapon,
				Spell:    "炽热射线",
			},
		},
		EnchantmentCapacity: 2500,
		UsedCapacity:        600,
		Timestamp:           "12:34:56",
	}
}
