package equipmenthistory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Options.TTL is ignored; history lives as long as the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]*equipment.Equipment
	limit int
}

// NewInMemory creates a new in-memory repository
func NewInMemory(opts Options) *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]*equipment.Equipment),
		limit: opts.limit(),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Append stores a copy of the item at the front of the owner's history
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Equipment == nil {
		return nil, errors.InvalidArgument(errEquipmentNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.store[input.OwnerID]
	next := make([]*equipment.Equipment, 0, min(len(current)+1, r.limit))
	next = append(next, input.Equipment.Clone())
	for _, item := range current {
		if len(next) == r.limit {
			break
		}
		next = append(next, item)
	}
	r.store[input.OwnerID] = next

	return &AppendOutput{Size: len(next)}, nil
}

// List returns copies of the owner's records, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errLimitNegative)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	current := r.store[input.OwnerID]
	count := min(window(input.Limit, r.limit), len(current))

	items := make([]*equipment.Equipment, 0, count)
	for _, item := range current[:count] {
		items = append(items, item.Clone())
	}

	return &ListOutput{Equipment: items}, nil
}

// Clear drops the owner's history
func (r *InMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.store[input.OwnerID])
	delete(r.store, input.OwnerID)

	return &ClearOutput{Removed: removed}, nil
}
