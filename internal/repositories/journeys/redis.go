package journeys

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

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed journey repository
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func key(id string) string {
	return fmt.Sprintf("journey:%s", id)
}

func rootKey(personaID string) string {
	return fmt.Sprintf("persona:%s:journeys", personaID)
}

func (r *redisRepo) Create(ctx context.Context, journey *entities.Journey) error {
	if err := validate(journey); err != nil {
		return err
	}

	data, err := json.Marshal(journey)
	if err != nil {
		return perr.Wrap(err, "failed to marshal journey")
	}

	ok, err := r.client.SetNX(ctx, key(journey.ID), data, 0).Result()
	if err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to store journey")
	}
	if !ok {
		return perr.AlreadyExistsf("journey with ID '%s' already exists", journey.ID).
			WithMeta("journey_id", journey.ID)
	}
	if err := r.client.SAdd(ctx, rootKey(journey.RootPersonaID), journey.ID).Err(); err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to index journey")
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Journey, error) {
	if id == "" {
		return nil, perr.InvalidArgument("journey ID is required")
	}

	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, perr.NotFoundf("journey with ID '%s' not found", id).
			WithMeta("journey_id", id)
	}
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "failed to get journey")
	}

	var j entities.Journey
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, perr.Wrapf(err, "failed to unmarshal journey %s", id)
	}
	return &j, nil
}

// Update overwrites an existing journey. SetXX fails when the key is gone.
func (r *redisRepo) Update(ctx context.Context, journey *entities.Journey) error {
	if err := validate(journey); err != nil {
		return err
	}

	data, err := json.Marshal(journey)
	if err != nil {
		return perr.Wrap(err, "failed to marshal journey")
	}

	ok, err := r.client.SetXX(ctx, key(journey.ID), data, 0).Result()
	if err != nil {
		return perr.WrapWithCode(err, perr.CodeUnavailable, "failed to update journey")
	}
	if !ok {
		return perr.NotFoundf("journey with ID '%s' not found", journey.ID).
			WithMeta("journey_id", journey.ID)
	}
	return nil
}

func (r *redisRepo) ListByRoot(ctx context.Context, rootPersonaID string) ([]*entities.Journey, error) {
	if rootPersonaID == "" {
		return nil, perr.InvalidArgument("root persona ID is required")
	}

	ids, err := r.client.SMembers(ctx, rootKey(rootPersonaID)).Result()
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "failed to list journey IDs")
	}

	result := make([]*entities.Journey, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			j, err := r.Get(gctx, id)
			if err != nil {
				return perr.Wrapf(err, "failed to get journey %s", id)
			}
			result[i] = j
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
