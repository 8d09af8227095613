package v1alpha1

// Enchantment is the wire form of one enchantment line
type Enchantment struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Value       int32  `json:"value"`
	Display     string `json:"display"`
	Category    string `json:"category"`
	Upgradeable bool   `json:"upgradeable"`
	IsAdvanced  bool   `json:"is_advanced,omitempty"`
	BelongsTo   string `json:"belongs_to,omitempty"`
	Effect      string `json:"effect,omitempty"`
	Spell       string `json:"spell,omitempty"`
}

// Equipment is the wire form of a generated item plus its derived display fields
type Equipment struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Adjective           string         `json:"adjective"`
	Noun                string         `json:"noun"`
	Quality             string         `json:"quality"`
	State               string         `json:"state"`
	Level               int32          `json:"level"`
	Enchantments        []*Enchantment `json:"enchantments"`
	EnchantmentCapacity int32          `json:"enchantment_capacity"`
	UsedCapacity        int32          `json:"used_capacity"`
	Timestamp           string         `json:"timestamp"`

	CapacityUsagePercent int32  `json:"capacity_usage_percent"`
	CapacityBand         string `json:"capacity_band"`
	Kind                 string `json:"kind"`
}

// GenerateRequest asks the forge for one or more items
type GenerateRequest struct {
	OwnerID   string `json:"owner_id,omitempty"`
	Adjective string `json:"adjective,omitempty"`
	Count     int32  `json:"count,omitempty"`
}

// GenerateResponse carries the forged items in generation order
type GenerateResponse struct {
	Equipment []*Equipment `json:"equipment"`
}

// ListHistoryRequest reads an owner's history
type ListHistoryRequest struct {
	OwnerID string `json:"owner_id"`
	Limit   int32  `json:"limit,omitempty"`
}

// ListHistoryResponse carries the owner's history, newest first
type ListHistoryResponse struct {
	Equipment []*Equipment `json:"equipment"`
}

// ClearHistoryRequest drops an owner's history
type ClearHistoryRequest struct {
	OwnerID string `json:"owner_id"`
}

// ClearHistoryResponse reports how many records were dropped
type ClearHistoryResponse struct {
	Removed int32 `json:"removed"`
}

// ListTemplatesRequest has no fields
type ListTemplatesRequest struct{}

// SpecialTemplate is the wire form of a special enchantment template
type SpecialTemplate struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
	Min    int32  `json:"min"`
	Max    int32  `json:"max"`
	Spell  string `json:"spell,omitempty"`
}

// ListTemplatesResponse lists every special template, basic effects first
type ListTemplatesResponse struct {
	Templates []*SpecialTemplate `json:"templates"`
}
