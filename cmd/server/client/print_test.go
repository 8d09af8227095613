package client

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
)

func TestCapacityBar(t *testing.T) {
	testCases := []struct {
		percent  int32
		expected string
	}{
		{0, "[....................]"},
		{24, "[####................]"},
		{100, "[####################]"},
		{150, "[####################]"},
		{-5, "[....................]"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CapacityBar(tc.percent))
	}
}

func TestPrintEquipment(t *testing.T) {
	var buf bytes.Buffer
	PrintEquipment(&buf, v1alpha1.EquipmentToAPI(testutils.NewTestEquipment("eq_1")))

	out := buf.String()
	assert.Contains(t, out, "诅咒的传说的长剑  [legendary/cursed] weapon")
	assert.Contains(t, out, "等级: 1234")
	assert.Contains(t, out, "600/2500 (24%, ok)")
	assert.Contains(t, out, "力量+12 ⚒  属性词条")
	assert.Contains(t, out, "长剑专精+4  技能词条 (力量系)")
}

func TestPrintEquipmentListJSON(t *testing.T) {
	var buf bytes.Buffer
	items := []*v1alpha1.Equipment{v1alpha1.EquipmentToAPI(testutils.NewTestEquipment("eq_1"))}
	require.NoError(t, PrintEquipmentList(&buf, items, true))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "eq_1", decoded[0]["id"])
	assert.Equal(t, "legendary", decoded[0]["quality"])
}
