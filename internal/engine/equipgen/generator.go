// Package equipgen generates randomized equipment with budget-constrained enchantments
package equipgen

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=equipgenmock github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen Generator

// TimestampLayout formats the display time of a generated record
const TimestampLayout = "15:04:05"

// Generator produces equipment records
type Generator interface {
	// Generate rolls one complete piece of equipment.
	// Returns errors.InvalidArgument for an unknown pinned adjective
	// Returns errors.Internal if the entropy source fails
	Generate(input *GenerateInput) (*equipment.Equipment, error)
}

// GenerateInput optionally pins parts of the roll. A nil input rolls everything.
type GenerateInput struct {
	// Adjective must be one of Adjectives() when set
	Adjective string
}

// Config holds the dependencies for the generator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type generator struct {
	roller dice.Roller
	idGen  idgen.Generator
	clock  clock.Clock
	pool   specialPool
}

// New creates a generator and freezes its special template pool
func New(cfg *Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &generator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
		pool:   newSpecialPool(),
	}, nil
}

// Templates returns a copy of the special template pool, basic effects first
func Templates() []SpecialTemplate {
	return newSpecialPool().templates()
}

// Generate rolls one complete piece of equipment
func (g *generator) Generate(input *GenerateInput) (*equipment.Equipment, error) {
	if input == nil {
		input = &GenerateInput{}
	}
	if input.Adjective != "" && !isAdjective(input.Adjective) {
		return nil, errors.InvalidArgumentf("unknown adjective: %s", input.Adjective)
	}

	d := &draw{roller: g.roller}

	adjective := input.Adjective
	if adjective == "" {
		adjective = pick(d, adjectives)
	}
	noun := pick(d, nouns)
	level := d.between(MinLevel, MaxLevel)
	quality := rollQuality(d, adjective)
	state := rollState(d)
	capacity := rollCapacity(d, quality, level)
	enchantments := g.generateEnchantments(d, quality, capacity, state)

	if d.err != nil {
		return nil, errors.Wrap(d.err, "failed to roll equipment")
	}

	return &equipment.Equipment{
		ID:                  g.idGen.Generate(),
		Name:                ComposeName(state, adjective, noun),
		Adjective:           adjective,
		Noun:                noun,
		Quality:             quality,
		State:               state,
		Level:               level,
		Enchantments:        enchantments,
		EnchantmentCapacity: capacity,
		UsedCapacity:        UsedCapacity(enchantments),
		Timestamp:           g.clock.Now().Format(TimestampLayout),
	}, nil
}

// ComposeName builds "<prefix><adjective>的<noun>"; the prefix is empty for normal gear
func ComposeName(state equipment.State, adjective, noun string) string {
	return StatePrefix(state) + adjective + "的" + noun
}

func isAdjective(s string) bool {
	for _, a := range adjectives {
		if a == s {
			return true
		}
	}
	return false
}

// rollQuality honours keyword adjectives, otherwise rolls the weighted tier table
func rollQuality(d *draw, adjective string) equipment.Quality {
	if q, ok := keywordQualities[adjective]; ok {
		return q
	}

	roll := d.roll(100)
	for _, qt := range qualityThresholds {
		if roll <= qt.threshold {
			return qt.quality
		}
	}
	return equipment.QualityRare
}

func rollState(d *draw) equipment.State {
	if !d.percent(taintedStatePercent) {
		return equipment.StateNormal
	}
	if d.index(2) == 0 {
		return equipment.StateCursed
	}
	return equipment.StateCorrupted
}

// rollCapacity returns the total enchantment budget for a tier.
// Darkstar is 2000 + floor(1.5 * level) and consumes no roll.
func rollCapacity(d *draw, quality equipment.Quality, level int) int {
	if quality == equipment.QualityDarkstar {
		return darkstarBaseCapacity + level*3/2
	}

	r, ok := capacityRanges[quality]
	if !ok {
		return capacityRanges[equipment.QualityRare].min
	}
	return d.between(r.min, r.max)
}
