package restorespecs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a Redis-backed repository. Redis expires the keys, so
// no clock is needed. A zero ttl uses DefaultTTL.
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepo{client: client, ttl: ttl}
}

func key(id string) string {
	return fmt.Sprintf("restore:%s", id)
}

func (r *redisRepo) Save(ctx context.Context, spec *entities.RestoreSpec) error {
	if err := validate(spec); err != nil {
		return err
	}
	data, err := json.Marshal(spec)
	if err != nil {
		return perr.Wrap(err, "failed to marshal restore spec")
	}
	if err := r.client.Set(ctx, key(spec.ID), data, r.ttl).Err(); err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to store restore spec")
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.RestoreSpec, error) {
	if id == "" {
		return nil, perr.InvalidArgument("restore spec ID is required")
	}
	return decode(id, r.client.Get(ctx, key(id)))
}

// Consume uses GETDEL so two readers cannot both consume the spec
func (r *redisRepo) Consume(ctx context.Context, id string) (*entities.RestoreSpec, error) {
	if id == "" {
		return nil, perr.InvalidArgument("restore spec ID is required")
	}
	return decode(id, r.client.GetDel(ctx, key(id)))
}

func decode(id string, cmd *redis.StringCmd) (*entities.RestoreSpec, error) {
	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, perr.NotFoundf("restore spec '%s' not found", id).WithMeta("restore_id", id)
	}
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "failed to read restore spec")
	}
	var spec entities.RestoreSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, perr.Wrapf(err, "failed to unmarshal restore spec %s", id)
	}
	return &spec, nil
}
