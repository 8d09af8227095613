package equipmenthistory

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
)

// Key pattern: equipment_history:{owner_id}
const historyKeyPrefix = "equipment_history:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client  redisclient.Client
	Options Options
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Options.Limit < 0 {
		return errors.InvalidArgument(errLimitNegative)
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	opts   Options
}

// NewRedisRepository creates a new Redis repository for equipment history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		opts:   cfg.Options,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the item and trims the list in one transaction
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Equipment == nil {
		return nil, errors.InvalidArgument(errEquipmentNil)
	}

	data, err := json.Marshal(input.Equipment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal equipment")
	}

	key := r.buildKey(input.OwnerID)
	limit := r.opts.limit()

	var size *redisclient.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, int64(limit-1))
		if r.opts.TTL > 0 {
			pipe.Expire(ctx, key, r.opts.TTL)
		}
		size = pipe.LLen(ctx, key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to append equipment history")
	}

	return &AppendOutput{
		Size: int(size.Val()),
	}, nil
}

// List reads the newest records first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errLimitNegative)
	}

	count := window(input.Limit, r.opts.limit())

	raw, err := r.client.LRange(ctx, r.buildKey(input.OwnerID), 0, int64(count-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read equipment history")
	}

	items := make([]*equipment.Equipment, 0, len(raw))
	for _, entry := range raw {
		var item equipment.Equipment
		if err := json.Unmarshal([]byte(entry), &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal equipment")
		}
		items = append(items, &item)
	}

	return &ListOutput{
		Equipment: items,
	}, nil
}

// Clear counts and deletes the owner's list atomically
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := r.buildKey(input.OwnerID)

	var length *redisclient.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
		length = pipe.LLen(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear equipment history")
	}

	return &ClearOutput{
		Removed: int(length.Val()),
	}, nil
}

func (r *redisRepository) buildKey(ownerID string) string {
	return historyKeyPrefix + ownerID
}
