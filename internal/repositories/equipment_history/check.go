package equipmenthistory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
)

// CheckInput controls a scan of stored history
type CheckInput struct {
	// UsedCapacity recomputes an item's used capacity; nil skips the capacity check
	UsedCapacity func([]equipment.Enchantment) int

	// Fix removes every corrupt entry with LREM
	Fix bool
}

// CorruptEntry is one stored record that failed a check
type CorruptEntry struct {
	Key    string
	Index  int
	Reason string
	raw    string
}

// CheckOutput summarizes a scan
type CheckOutput struct {
	Keys    int
	Entries int
	Corrupt []CorruptEntry
	Removed int
}

// CheckRedis scans every equipment_history list, decoding each entry and checking
// the record is complete and its used capacity adds up
func CheckRedis(ctx context.Context, client redisclient.Client, input *CheckInput) (*CheckOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	if input == nil {
		input = &CheckInput{}
	}

	out := &CheckOutput{}

	iter := client.Scan(ctx, 0, historyKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Keys++

		entries, err := client.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		for i, raw := range entries {
			out.Entries++
			if reason := checkEntry(raw, input.UsedCapacity); reason != "" {
				out.Corrupt = append(out.Corrupt, CorruptEntry{Key: key, Index: i, Reason: reason, raw: raw})
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan equipment history")
	}

	if !input.Fix {
		return out, nil
	}

	for _, c := range out.Corrupt {
		n, err := client.LRem(ctx, c.Key, 1, c.raw).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to remove corrupt entry from %s", c.Key)
		}
		out.Removed += int(n)
	}

	return out, nil
}

func checkEntry(raw string, usedCapacity func([]equipment.Enchantment) int) string {
	var item equipment.Equipment
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return "invalid json"
	}

	switch {
	case item.ID == "":
		return "missing id"
	case !item.Quality.IsValid():
		return fmt.Sprintf("unknown quality %q", item.Quality)
	case !item.State.IsValid():
		return fmt.Sprintf("unknown state %q", item.State)
	}

	for _, e := range item.Enchantments {
		if !e.Type.IsValid() {
			return fmt.Sprintf("unknown enchantment type %q", e.Type)
		}
	}

	if usedCapacity != nil {
		if want := usedCapacity(item.Enchantments); want != item.UsedCapacity {
			return fmt.Sprintf("used capacity %d, enchantments add up to %d", item.UsedCapacity, want)
		}
	}

	return ""
}
