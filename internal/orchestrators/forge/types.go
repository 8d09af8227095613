package forge

import (
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// GenerateInput defines the request for forging equipment
type GenerateInput struct {
	// OwnerID records the results in that owner's history when set
	OwnerID string

	// Adjective pins the adjective; empty rolls it
	Adjective string

	// Count is how many items to forge; 0 means 1
	Count int
}

// GenerateOutput defines the response for forging equipment
type GenerateOutput struct {
	Equipment []*equipment.Equipment
}

// ListHistoryInput defines the request for reading an owner's history
type ListHistoryInput struct {
	OwnerID string
	Limit   int
}

// ListHistoryOutput defines the response for reading an owner's history, newest first
type ListHistoryOutput struct {
	Equipment []*equipment.Equipment
}

// ClearHistoryInput defines the request for dropping an owner's history
type ClearHistoryInput struct {
	OwnerID string
}

// ClearHistoryOutput defines the response for dropping an owner's history
type ClearHistoryOutput struct {
	Removed int
}
