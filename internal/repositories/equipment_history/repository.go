// Package equipmenthistory stores the most recent equipment generated for each owner
package equipmenthistory

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=equipmenthistorymock github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history Repository

const (
	// DefaultLimit is how many records an owner keeps when no limit is configured
	DefaultLimit = 10

	// MaxLimit bounds configured and requested limits
	MaxLimit = 100

	errOwnerIDEmpty  = "owner ID cannot be empty"
	errEquipmentNil  = "equipment cannot be nil"
	errLimitNegative = "limit cannot be negative"
)

// AppendInput contains parameters for recording a generated item
type AppendInput struct {
	OwnerID   string
	Equipment *equipment.Equipment
}

// AppendOutput contains the result of recording an item
type AppendOutput struct {
	// Size is the owner's history length after trimming
	Size int
}

// ListInput contains parameters for reading an owner's history
type ListInput struct {
	OwnerID string

	// Limit caps the number of records returned; 0 returns the whole kept history
	Limit int
}

// ListOutput contains an owner's history, newest first
type ListOutput struct {
	Equipment []*equipment.Equipment
}

// ClearInput contains parameters for dropping an owner's history
type ClearInput struct {
	OwnerID string
}

// ClearOutput contains the result of dropping an owner's history
type ClearOutput struct {
	Removed int
}

// Repository defines the interface for equipment history storage
type Repository interface {
	// Append pushes an item to the front of the owner's history and trims it to the limit
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the owner's history, newest first. An unknown owner has an empty history.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes the owner's history
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// Options are shared by both implementations
type Options struct {
	// Limit is how many records each owner keeps; 0 means DefaultLimit
	Limit int

	// TTL expires an idle owner's history; 0 keeps it forever
	TTL time.Duration
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return min(o.Limit, MaxLimit)
}

// window resolves a requested list size against the kept limit
func window(requested, kept int) int {
	if requested <= 0 || requested > kept {
		return kept
	}
	return requested
}
