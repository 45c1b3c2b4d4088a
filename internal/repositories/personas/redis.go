package personas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

const indexKey = "personas"

type redisRepo struct {
	client redis.UniversalClient
	clock  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Clock  TimeProvider
}

// NewRedisRepository creates a Redis-backed persona repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &redisRepo{client: cfg.Client, clock: clock}
}

func key(id string) string {
	return fmt.Sprintf("persona:%s", id)
}

// Create stores the persona as JSON and indexes it. SetNX makes the
// existence check and the write one step.
func (r *redisRepo) Create(ctx context.Context, persona *entities.Persona) error {
	if err := validate(persona); err != nil {
		return err
	}

	stored := persona.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return perr.Wrap(err, "failed to marshal persona")
	}

	ok, err := r.client.SetNX(ctx, key(persona.ID), data, 0).Result()
	if err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to store persona")
	}
	if !ok {
		return perr.AlreadyExistsf("persona with ID '%s' already exists", persona.ID).
			WithMeta("persona_id", persona.ID)
	}

	if err := r.client.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(stored.CreatedAt.UnixNano()),
		Member: persona.ID,
	}).Err(); err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to index persona")
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Persona, error) {
	if id == "" {
		return nil, perr.InvalidArgument("persona ID is required")
	}

	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "failed to get persona")
	}

	var p entities.Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, perr.Wrapf(err, "failed to unmarshal persona %s", id)
	}
	return &p, nil
}

// List loads the index newest first and fetches each persona concurrently
func (r *redisRepo) List(ctx context.Context) ([]*entities.Persona, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "failed to list persona IDs")
	}

	result := make([]*entities.Persona, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := r.Get(gctx, id)
			if err != nil {
				return perr.Wrapf(err, "failed to get persona %s", id)
			}
			result[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return perr.InvalidArgument("persona ID is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, key(id))
	pipe.ZRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to delete persona")
	}
	if del.Val() == 0 {
		return perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	return nil
}
