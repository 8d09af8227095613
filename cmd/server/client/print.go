package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
)

const capacityBarWidth = 20

// PrintEquipmentList writes items as text cards, or as one JSON document when asJSON is set
func PrintEquipmentList(w io.Writer, items []*v1alpha1.Equipment, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		PrintEquipment(w, item)
	}
	return nil
}

// PrintEquipment writes one item as a text card
func PrintEquipment(w io.Writer, e *v1alpha1.Equipment) {
	fmt.Fprintf(w, "%s  [%s/%s] %s\n", e.Name, e.Quality, e.State, e.Kind)
	fmt.Fprintf(w, "  等级: %d    %s    %s\n", e.Level, e.Timestamp, e.ID)
	fmt.Fprintf(w, "  附魔容量: %s %d/%d (%d%%, %s)\n",
		CapacityBar(e.CapacityUsagePercent), e.UsedCapacity, e.EnchantmentCapacity,
		e.CapacityUsagePercent, e.CapacityBand)

	if len(e.Enchantments) == 0 {
		return
	}

	fmt.Fprintln(w, "  附魔词条:")
	for _, ench := range e.Enchantments {
		line := "    " + ench.Display
		if ench.Upgradeable {
			line += " ⚒"
		}
		line += "  " + ench.Category
		if ench.BelongsTo != "" {
			line += fmt.Sprintf(" (%s系)", ench.BelongsTo)
		}
		fmt.Fprintln(w, line)
	}
}

// CapacityBar renders a percentage in [0, 100] as a fixed width bar
func CapacityBar(percent int32) string {
	filled := int(max(0, min(percent, 100))) * capacityBarWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", capacityBarWidth-filled) + "]"
}

// PrintTemplates writes the special template table
func PrintTemplates(w io.Writer, templates []*v1alpha1.SpecialTemplate) {
	for _, t := range templates {
		fmt.Fprintf(w, "%-24s %-16s %d-%d\n", t.Name, t.Effect, t.Min, t.Max)
	}
}
