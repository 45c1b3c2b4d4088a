package restorespecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/restorespecs"
	"github.com/KirkDiggler/historical-personas/internal/testutils"
)

func TestRedisIntegrationConsumeOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testutils.CreateTestRedisClient(t, nil)
	ctx := context.Background()
	repo := restorespecs.NewRedis(client, time.Minute)

	require.NoError(t, repo.Save(ctx, testSpec()))

	ttl, err := client.TTL(ctx, "restore:r-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err := repo.Consume(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Ermengarde de Clare", got.Spec.Name)

	_, err = repo.Consume(ctx, "r-1")
	assert.True(t, perr.IsNotFound(err))
}
