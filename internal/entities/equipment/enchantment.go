package equipment

// EnchantmentType tags which variant an Enchantment holds
type EnchantmentType string

// Enchantment variants
const (
	EnchantmentTypeAttribute EnchantmentType = "attribute"
	EnchantmentTypeSkill     EnchantmentType = "skill"
	EnchantmentTypeSpecial   EnchantmentType = "special"
	EnchantmentTypeNegative  EnchantmentType = "negative"
)

// String returns the string representation of the enchantment type
func (t EnchantmentType) String() string {
	return string(t)
}

// IsValid checks if the enchantment type is known
func (t EnchantmentType) IsValid() bool {
	switch t {
	case EnchantmentTypeAttribute, EnchantmentTypeSkill, EnchantmentTypeSpecial, EnchantmentTypeNegative:
		return true
	default:
		return false
	}
}

// Effect identifies the template family of a special enchantment
type Effect string

// Special effects
const (
	EffectCrit           Effect = "crit"
	EffectBlock          Effect = "block"
	EffectReducePhysical Effect = "reduce_physical"
	EffectReduceMagic    Effect = "reduce_magic"
	EffectImmune         Effect = "immune"
	EffectWeapon         Effect = "weapon_effect"
)

// Display categories
const (
	CategoryAttribute = "属性词条"
	CategorySkill     = "技能词条"
	CategorySpecial   = "特殊词条"
	CategoryNegative  = "负面词条"
)

// Enchantment is a tagged variant over attribute, skill, special and negative entries.
// Shared fields are always set; the variant fields are only meaningful for their Type:
//   - attribute: IsAdvanced
//   - skill: BelongsTo (one of the six primary attributes)
//   - special: Effect, and Spell for weapon effects
//   - negative: none, Value is always 0
type Enchantment struct {
	Type        EnchantmentType `json:"type"`
	Name        string          `json:"name"`
	Value       int             `json:"value"`
	Display     string          `json:"display"`
	Category    string          `json:"category"`
	Upgradeable bool            `json:"upgradeable,omitempty"`

	IsAdvanced bool   `json:"is_advanced,omitempty"`
	BelongsTo  string `json:"belongs_to,omitempty"`
	Effect     Effect `json:"effect,omitempty"`
	Spell      string `json:"spell,omitempty"`
}

// IsNegative reports whether this is a negative enchantment
func (e Enchantment) IsNegative() bool {
	return e.Type == EnchantmentTypeNegative
}

// IsScaled reports whether the value is measured in points that cost capacity per point
// and is rescaled against the remaining budget when generated
func (e Enchantment) IsScaled() bool {
	return e.Type == EnchantmentTypeAttribute || e.Type == EnchantmentTypeSkill
}
