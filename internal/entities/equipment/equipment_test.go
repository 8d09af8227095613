package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

func TestCapacityUsage(t *testing.T) {
	testCases := []struct {
		name            string
		capacity, used  int
		expectedPercent int
		expectedBand    equipment.CapacityBand
	}{
		{name: "empty", capacity: 2000, used: 0, expectedPercent: 0, expectedBand: equipment.CapacityOK},
		{name: "below warning", capacity: 2000, used: 1398, expectedPercent: 69, expectedBand: equipment.CapacityOK},
		{name: "warning", capacity: 2000, used: 1400, expectedPercent: 70, expectedBand: equipment.CapacityWarning},
		{name: "critical", capacity: 2000, used: 1800, expectedPercent: 90, expectedBand: equipment.CapacityCritical},
		{name: "full", capacity: 2000, used: 2000, expectedPercent: 100, expectedBand: equipment.CapacityCritical},
		{name: "refund reads as zero", capacity: 2000, used: -500, expectedPercent: 0, expectedBand: equipment.CapacityOK},
		{name: "over capacity clamps", capacity: 1000, used: 1500, expectedPercent: 100, expectedBand: equipment.CapacityCritical},
		{name: "no capacity", capacity: 0, used: 10, expectedPercent: 0, expectedBand: equipment.CapacityOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := &equipment.Equipment{EnchantmentCapacity: tc.capacity, UsedCapacity: tc.used}
			percent, band := e.CapacityUsage()
			assert.Equal(t, tc.expectedPercent, percent)
			assert.Equal(t, tc.expectedBand, band)
		})
	}
}

func TestKind(t *testing.T) {
	testCases := map[string]equipment.Kind{
		"长剑":  equipment.KindWeapon,
		"战斧":  equipment.KindWeapon,
		"战锤":  equipment.KindWeapon,
		"长枪":  equipment.KindWeapon,
		"盾牌":  equipment.KindArmor,
		"板甲":  equipment.KindArmor,
		"头盔":  equipment.KindArmor,
		"戒指":  equipment.KindAccessory,
		"水晶球": equipment.KindAccessory,
	}

	for noun, kind := range testCases {
		e := &equipment.Equipment{Noun: noun}
		assert.Equal(t, kind, e.Kind(), noun)
	}
}

func TestQuality(t *testing.T) {
	all := equipment.AllQualities()
	require.Len(t, all, 4)
	for i, q := range all {
		assert.Equal(t, i+1, q.Rank())
		assert.True(t, q.IsValid())
	}

	q, ok := equipment.QualityFromString("legendary")
	assert.True(t, ok)
	assert.Equal(t, equipment.QualityLegendary, q)

	_, ok = equipment.QualityFromString("mythic")
	assert.False(t, ok)
	assert.Zero(t, equipment.Quality("mythic").Rank())
}

func TestState(t *testing.T) {
	assert.False(t, equipment.StateNormal.IsTainted())
	assert.True(t, equipment.StateCursed.IsTainted())
	assert.True(t, equipment.StateCorrupted.IsTainted())
	assert.False(t, equipment.State("blessed").IsValid())
	assert.Len(t, equipment.AllStates(), 3)
}

func TestEnchantmentVariants(t *testing.T) {
	assert.True(t, equipment.Enchantment{Type: equipment.EnchantmentTypeAttribute}.IsScaled())
	assert.True(t, equipment.Enchantment{Type: equipment.EnchantmentTypeSkill}.IsScaled())
	assert.False(t, equipment.Enchantment{Type: equipment.EnchantmentTypeSpecial}.IsScaled())
	assert.True(t, equipment.Enchantment{Type: equipment.EnchantmentTypeNegative}.IsNegative())
	assert.False(t, equipment.EnchantmentType("unknown").IsValid())
}

func TestCloneIsIndependent(t *testing.T) {
	original := &equipment.Equipment{
		ID: "eq_1",
		Enchantments: []equipment.Enchantment{
			{Type: equipment.EnchantmentTypeNegative, Name: "中断成长"},
			{Type: equipment.EnchantmentTypeAttribute, Name: "力量", Value: 3},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Enchantments[1].Value = 20
	clone.ID = "eq_2"
	assert.Equal(t, 3, original.Enchantments[1].Value)
	assert.Equal(t, "eq_1", original.ID)

	assert.Len(t, original.NegativeEnchantments(), 1)

	var nilEquipment *equipment.Equipment
	assert.Nil(t, nilEquipment.Clone())
}

func TestEntities(t *testing.T) {
	e := &equipment.Equipment{ID: "eq_1"}
	assert.Equal(t, "eq_1", e.GetID())
	assert.Equal(t, equipment.EntityType, e.GetType())

	o := equipment.Owner{ID: "p1"}
	assert.Equal(t, "p1", o.GetID())
	assert.Equal(t, equipment.OwnerEntityType, o.GetType())
}
