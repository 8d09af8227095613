// Package v1alpha1 serves the equipment forge over gRPC
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge"
)

// HandlerConfig holds dependencies for the equipment handler
type HandlerConfig struct {
	ForgeService forge.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ForgeService == nil {
		return errors.InvalidArgument("forge service is required")
	}
	return nil
}

// Handler implements EquipmentServiceServer
type Handler struct {
	forgeService forge.Service
}

var _ EquipmentServiceServer = (*Handler)(nil)

// NewHandler creates a new equipment handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		forgeService: cfg.ForgeService,
	}, nil
}

// Generate forges equipment, recording it for the owner when one is given
func (h *Handler) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if req.Count < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("count cannot be negative"))
	}

	out, err := h.forgeService.Generate(ctx, &forge.GenerateInput{
		OwnerID:   req.OwnerID,
		Adjective: req.Adjective,
		Count:     int(req.Count),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateResponse{
		Equipment: convertEquipmentListToAPI(out.Equipment),
	}, nil
}

// ListHistory returns an owner's recent equipment, newest first
func (h *Handler) ListHistory(ctx context.Context, req *ListHistoryRequest) (*ListHistoryResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.forgeService.ListHistory(ctx, &forge.ListHistoryInput{
		OwnerID: req.OwnerID,
		Limit:   int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListHistoryResponse{
		Equipment: convertEquipmentListToAPI(out.Equipment),
	}, nil
}

// ClearHistory drops an owner's history
func (h *Handler) ClearHistory(ctx context.Context, req *ClearHistoryRequest) (*ClearHistoryResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.forgeService.ClearHistory(ctx, &forge.ClearHistoryInput{OwnerID: req.OwnerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	// nolint:gosec // history is capped well below int32
	return &ClearHistoryResponse{Removed: int32(out.Removed)}, nil
}

// ListTemplates lists the special enchantment templates
func (h *Handler) ListTemplates(_ context.Context, _ *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return &ListTemplatesResponse{Templates: TemplatesToAPI(equipgen.Templates())}, nil
}

// TemplatesToAPI converts special templates to their wire form
func TemplatesToAPI(templates []equipgen.SpecialTemplate) []*SpecialTemplate {
	out := make([]*SpecialTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, &SpecialTemplate{
			Name:   t.Name,
			Effect: string(t.Effect),
			// nolint:gosec // template bounds are small constants
			Min:   int32(t.Min),
			Max:   int32(t.Max),
			Spell: t.Spell,
		})
	}
	return out
}

func convertEquipmentListToAPI(items []*equipment.Equipment) []*Equipment {
	out := make([]*Equipment, 0, len(items))
	for _, item := range items {
		out = append(out, EquipmentToAPI(item))
	}
	return out
}

// EquipmentToAPI converts a generated item to its wire form with the derived
// capacity usage, band and kind filled in
//
// nolint:gosec // levels, values and capacities all fit in int32
func EquipmentToAPI(e *equipment.Equipment) *Equipment {
	usage, band := e.CapacityUsage()

	enchantments := make([]*Enchantment, 0, len(e.Enchantments))
	for _, ench := range e.Enchantments {
		enchantments = append(enchantments, &Enchantment{
			Type:        ench.Type.String(),
			Name:        ench.Name,
			Value:       int32(ench.Value),
			Display:     ench.Display,
			Category:    ench.Category,
			Upgradeable: ench.Upgradeable,
			IsAdvanced:  ench.IsAdvanced,
			BelongsTo:   ench.BelongsTo,
			Effect:      string(ench.Effect),
			Spell:       ench.Spell,
		})
	}

	return &Equipment{
		ID:                   e.ID,
		Name:                 e.Name,
		Adjective:            e.Adjective,
		Noun:                 e.Noun,
		Quality:              e.Quality.String(),
		State:                e.State.String(),
		Level:                int32(e.Level),
		Enchantments:         enchantments,
		EnchantmentCapacity:  int32(e.EnchantmentCapacity),
		UsedCapacity:         int32(e.UsedCapacity),
		Timestamp:            e.Timestamp,
		CapacityUsagePercent: int32(usage),
		CapacityBand:         string(band),
		Kind:                 string(e.Kind()),
	}
}
