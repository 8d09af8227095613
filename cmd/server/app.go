package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-equipment/internal/config"
	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/metrics"
	"github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-equipment/internal/redis"
	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
)

// app is the wired dependency graph shared by the server and local commands
type app struct {
	forge   forge.Service
	bus     events.EventBus
	cleanup func()
}

type appConfig struct {
	cfg     config.Config
	roller  dice.Roller
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// newApp wires generator, history store, event bus and forge.
// History lives in Redis when an address is configured, otherwise in memory.
func newApp(ctx context.Context, ac appConfig) (*app, error) {
	clk := clock.New()

	generator, err := equipgen.New(&equipgen.Config{
		Roller:      ac.roller,
		IDGenerator: idgen.NewPrefixedWithClock("eq", clk),
		Clock:       clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	historyRepo, cleanup, err := newHistoryRepo(ctx, ac.cfg)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	bus.SubscribeFunc(forge.EventEquipmentGenerated, 0, func(ctx context.Context, e events.Event) error {
		item, ok := e.Source().(*equipment.Equipment)
		if !ok {
			return nil
		}
		if item.Quality == equipment.QualityDarkstar {
			ac.logger.InfoContext(ctx, "Darkstar equipment forged",
				"equipment_id", item.ID,
				"name", item.Name,
				"owner_id", e.Target().GetID())
		}
		return nil
	})

	forgeService, err := forge.NewOrchestrator(&forge.Config{
		Generator:   generator,
		HistoryRepo: historyRepo,
		EventBus:    bus,
		Metrics:     ac.metrics,
		Logger:      ac.logger,
	})
	if err != nil {
		cleanup()
		return nil, errors.Wrap(err, "failed to create forge")
	}

	return &app{
		forge:   forgeService,
		bus:     bus,
		cleanup: cleanup,
	}, nil
}

func newHistoryRepo(ctx context.Context, cfg config.Config) (equipmenthistory.Repository, func(), error) {
	if !cfg.UseRedis() {
		return equipmenthistory.NewInMemory(cfg.HistoryOptions()), func() {}, nil
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis settings")
	}
	cleanup := func() { _ = client.Close() }

	if err := redis.Ping(ctx, client); err != nil {
		cleanup()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	repo, err := equipmenthistory.NewRedisRepository(&equipmenthistory.Config{
		Client:  client,
		Options: cfg.HistoryOptions(),
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create history repository")
	}

	return repo, cleanup, nil
}
