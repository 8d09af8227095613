// Package equipment defines the generated equipment record and its enchantments
package equipment

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by generated equipment
const EntityType = "equipment"

// Quality is the rarity tier of a piece of equipment
type Quality string

// Quality tiers, ordered rare < epic < legendary < darkstar
const (
	QualityRare      Quality = "rare"
	QualityEpic      Quality = "epic"
	QualityLegendary Quality = "legendary"
	QualityDarkstar  Quality = "darkstar"
)

// String returns the string representation of the quality
func (q Quality) String() string {
	return string(q)
}

// IsValid checks if the quality is one of the known tiers
func (q Quality) IsValid() bool {
	return q.Rank() > 0
}

// Rank orders the tiers starting at 1 for rare. Unknown tiers rank 0.
func (q Quality) Rank() int {
	switch q {
	case QualityRare:
		return 1
	case QualityEpic:
		return 2
	case QualityLegendary:
		return 3
	case QualityDarkstar:
		return 4
	default:
		return 0
	}
}

// AllQualities returns every tier from lowest to highest
func AllQualities() []Quality {
	return []Quality{
		QualityRare,
		QualityEpic,
		QualityLegendary,
		QualityDarkstar,
	}
}

// QualityFromString converts a string to a Quality
// Returns the quality and true if valid, empty quality and false if invalid
func QualityFromString(s string) (Quality, bool) {
	q := Quality(s)
	if q.IsValid() {
		return q, true
	}
	return "", false
}

// State marks whether a piece of equipment is tainted
type State string

// Equipment states
const (
	StateNormal    State = "normal"
	StateCursed    State = "cursed"
	StateCorrupted State = "corrupted"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// IsValid checks if the state is known
func (s State) IsValid() bool {
	switch s {
	case StateNormal, StateCursed, StateCorrupted:
		return true
	default:
		return false
	}
}

// IsTainted reports whether the state is cursed or corrupted
func (s State) IsTainted() bool {
	return s == StateCursed || s == StateCorrupted
}

// AllStates returns every equipment state
func AllStates() []State {
	return []State{StateNormal, StateCursed, StateCorrupted}
}

// Equipment is one generated piece of gear.
// It is built in a single call and never modified afterwards.
type Equipment struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Adjective           string        `json:"adjective"`
	Noun                string        `json:"noun"`
	Quality             Quality       `json:"quality"`
	State               State         `json:"state"`
	Level               int           `json:"level"`
	Enchantments        []Enchantment `json:"enchantments"`
	EnchantmentCapacity int           `json:"enchantment_capacity"`
	UsedCapacity        int           `json:"used_capacity"`
	Timestamp           string        `json:"timestamp"`
}

// GetID returns the equipment's ID
func (e *Equipment) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *Equipment) GetType() string {
	return EntityType
}

// NegativeEnchantments returns the negative entries in generation order
func (e *Equipment) NegativeEnchantments() []Enchantment {
	var out []Enchantment
	for _, ench := range e.Enchantments {
		if ench.IsNegative() {
			out = append(out, ench)
		}
	}
	return out
}

// Compile-time check that generated equipment can travel on the toolkit event bus
var _ core.Entity = (*Equipment)(nil)

// Clone returns a deep copy so stored records cannot be changed through a caller's pointer
func (e *Equipment) Clone() *Equipment {
	if e == nil {
		return nil
	}
	out := *e
	if e.Enchantments != nil {
		out.Enchantments = append([]Enchantment(nil), e.Enchantments...)
	}
	return &out
}

// OwnerEntityType is the core.Entity type of an equipment owner
const OwnerEntityType = "owner"

// Owner identifies who a piece of equipment was generated for
type Owner struct {
	ID string
}

// GetID returns the owner's ID
func (o Owner) GetID() string {
	return o.ID
}

// GetType returns the owner entity type
func (o Owner) GetType() string {
	return OwnerEntityType
}

var _ core.Entity = Owner{}
