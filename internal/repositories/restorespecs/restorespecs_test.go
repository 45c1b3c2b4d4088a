package restorespecs_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/restorespecs"
	"github.com/KirkDiggler/historical-personas/internal/testutils"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func testSpec() *entities.RestoreSpec {
	return &entities.RestoreSpec{
		ID:       "r-1",
		Date:     "1348",
		Location: "England",
		Seed:     7,
		Spec: entities.CharacterSpecification{
			Name:       "Ermengarde de Clare",
			Age:        entities.Year(30),
			Attributes: []string{"twin"},
		},
	}
}

func TestInMemoryConsumeOnce(t *testing.T) {
	ctx := context.Background()
	repo := restorespecs.NewInMemoryRepository(time.Hour, &stepClock{now: testutils.FixedTime})

	require.NoError(t, repo.Save(ctx, testSpec()))

	peek, err := repo.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Ermengarde de Clare", peek.Spec.Name)

	got, err := repo.Consume(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, 30, *got.Spec.Age)
	assert.Equal(t, []string{"twin"}, got.Spec.Attributes)

	_, err = repo.Consume(ctx, "r-1")
	assert.True(t, perr.IsNotFound(err))
}

func TestInMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{now: testutils.FixedTime}
	repo := restorespecs.NewInMemoryRepository(time.Hour, clock)

	require.NoError(t, repo.Save(ctx, testSpec()))
	clock.now = clock.now.Add(time.Hour)

	_, err := repo.Get(ctx, "r-1")
	assert.True(t, perr.IsNotFound(err))
}

func TestInMemoryStoredCopyIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := restorespecs.NewInMemoryRepository(0, nil)

	spec := testSpec()
	require.NoError(t, repo.Save(ctx, spec))
	spec.Spec.Attributes[0] = "changed"

	got, err := repo.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"twin"}, got.Spec.Attributes)
}

func TestRedisSaveAndConsume(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	repo := restorespecs.NewRedis(client, 10*time.Minute)

	data, err := json.Marshal(testSpec())
	require.NoError(t, err)

	mock.ExpectSet("restore:r-1", data, 10*time.Minute).SetVal("OK")
	require.NoError(t, repo.Save(ctx, testSpec()))

	mock.ExpectGetDel("restore:r-1").SetVal(string(data))
	got, err := repo.Consume(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "England", got.Location)
	assert.Equal(t, int64(7), got.Seed)

	mock.ExpectGetDel("restore:r-1").RedisNil()
	_, err = repo.Consume(ctx, "r-1")
	assert.True(t, perr.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	repo := restorespecs.NewInMemoryRepository(0, nil)

	assert.True(t, perr.IsInvalidArgument(repo.Save(ctx, nil)))
	assert.True(t, perr.IsInvalidArgument(repo.Save(ctx, &entities.RestoreSpec{})))
	_, err := repo.Consume(ctx, "")
	assert.True(t, perr.IsInvalidArgument(err))
}
