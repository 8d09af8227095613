// Package forge implements the orchestrator that generates equipment,
// records it in the owner's history and announces it on the event bus
package forge

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/metrics"
	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
)

const (
	// EventEquipmentGenerated is published once per forged item.
	// The event source is the *equipment.Equipment, the target its equipment.Owner.
	EventEquipmentGenerated = "equipment.generated"

	// MaxBatch caps Count on a single Generate call
	MaxBatch = 50
)

// Service defines the interface for forging equipment
type Service interface {
	// Generate forges Count items. Returns errors.InvalidArgument for a bad
	// count or unknown adjective.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// ListHistory returns the owner's most recent items, newest first
	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)

	// ClearHistory drops the owner's history
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
}

// Config holds the dependencies for the forge orchestrator
type Config struct {
	Generator   equipgen.Generator
	HistoryRepo equipmenthistory.Repository
	EventBus    events.EventBus

	// Metrics is optional
	Metrics *metrics.Metrics

	// Logger is optional and defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	generator   equipgen.Generator
	historyRepo equipmenthistory.Repository
	eventBus    events.EventBus
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewOrchestrator creates a new forge orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		generator:   cfg.Generator,
		historyRepo: cfg.HistoryRepo,
		eventBus:    cfg.EventBus,
		metrics:     cfg.Metrics,
		logger:      logger,
	}, nil
}

// Generate forges the requested items one at a time so a cancelled context
// stops the batch between items
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Count", input.Count, 0, MaxBatch, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	count := max(input.Count, 1)
	owner := equipment.Owner{ID: input.OwnerID}

	items := make([]*equipment.Equipment, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "generation interrupted")
		}

		item, err := o.generator.Generate(&equipgen.GenerateInput{Adjective: input.Adjective})
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate equipment")
		}

		if input.OwnerID != "" {
			_, err = o.historyRepo.Append(ctx, equipmenthistory.AppendInput{
				OwnerID:   input.OwnerID,
				Equipment: item,
			})
			o.metrics.ObserveHistory(metrics.OperationAppend, err)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to record equipment for %s", input.OwnerID)
			}
		}

		o.metrics.ObserveGenerated(item)
		o.publish(ctx, item, owner)

		o.logger.DebugContext(ctx, "Equipment forged",
			"equipment_id", item.ID,
			"name", item.Name,
			"quality", item.Quality,
			"state", item.State,
			"level", item.Level,
			"enchantments", len(item.Enchantments),
			"used_capacity", item.UsedCapacity,
			"capacity", item.EnchantmentCapacity)

		items = append(items, item)
	}

	o.logger.InfoContext(ctx, "Equipment generated",
		"owner_id", input.OwnerID,
		"count", len(items),
		"adjective", input.Adjective)

	return &GenerateOutput{Equipment: items}, nil
}

// publish announces an item. A failing subscriber does not undo the item.
func (o *orchestrator) publish(ctx context.Context, item *equipment.Equipment, owner equipment.Owner) {
	event := events.NewGameEvent(EventEquipmentGenerated, item, owner)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		o.logger.WarnContext(ctx, "Failed to publish equipment event",
			"equipment_id", item.ID,
			"error", err)
	}
}

// ListHistory returns the owner's recent items
func (o *orchestrator) ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("OwnerID", input.OwnerID, vb)
	errors.ValidateRange("Limit", input.Limit, 0, equipmenthistory.MaxLimit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.historyRepo.List(ctx, equipmenthistory.ListInput{
		OwnerID: input.OwnerID,
		Limit:   input.Limit,
	})
	o.metrics.ObserveHistory(metrics.OperationList, err)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list history for %s", input.OwnerID)
	}

	return &ListHistoryOutput{Equipment: out.Equipment}, nil
}

// ClearHistory drops the owner's history
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("OwnerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.historyRepo.Clear(ctx, equipmenthistory.ClearInput{OwnerID: input.OwnerID})
	o.metrics.ObserveHistory(metrics.OperationClear, err)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear history for %s", input.OwnerID)
	}

	o.logger.InfoContext(ctx, "Equipment history cleared",
		"owner_id", input.OwnerID,
		"removed", out.Removed)

	return &ClearHistoryOutput{Removed: out.Removed}, nil
}
