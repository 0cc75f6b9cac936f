package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

func TestCatalogService_CachesSuccessfulFetch(t *testing.T) {
	src := &fakeCatalogSource{activities: map[int64][]response_models.Activity{7: kyotoActivities()}}
	svc := NewCatalogService(src, mem.NewTTLStore(), time.Minute, zap.NewNop())
	ctx := context.Background()

	first := svc.ListActivitiesByDestination(ctx, 7)
	second := svc.ListActivitiesByDestination(ctx, 7)

	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)
}

func TestCatalogService_FailureIsEmptyAndNotCached(t *testing.T) {
	src := &fakeCatalogSource{activities: map[int64][]response_models.Activity{7: kyotoActivities()}, fail: true}
	svc := NewCatalogService(src, mem.NewTTLStore(), time.Minute, zap.NewNop())
	ctx := context.Background()

	got := svc.ListActivitiesByDestination(ctx, 7)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	src.fail = false
	got = svc.ListActivitiesByDestination(ctx, 7)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, src.calls)
}

func TestCatalogService_Destinations(t *testing.T) {
	src := &fakeCatalogSource{fail: true}
	svc := NewCatalogService(src, nil, time.Minute, zap.NewNop())
	assert.Empty(t, svc.ListDestinations(context.Background()))
	assert.Empty(t, svc.ListRecommendedActivities(context.Background(), 1, 7))
}

func TestToActivityRefs_ClampsNegativePrice(t *testing.T) {
	refs := ToActivityRefs(kyotoActivities()[:1])
	assert.Equal(t, 10.0, refs[0].Price)

	acts := kyotoActivities()[:1]
	acts[0].Price = -3
	assert.Zero(t, ToActivityRefs(acts)[0].Price)
}

func TestCatalogService_LikeActivity(t *testing.T) {
	src := &fakeCatalogSource{activities: map[int64][]response_models.Activity{7: kyotoActivities()}}
	svc := NewCatalogService(src, mem.NewTTLStore(), time.Minute, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.LikeActivity(ctx, 3, 7, 2, true))
	require.NoError(t, svc.LikeActivity(ctx, 3, 7, 1, false))
	assert.Equal(t, map[int64]bool{2: true, 1: false}, src.likes)

	err := svc.LikeActivity(ctx, 3, 7, 99, true)
	assert.ErrorIs(t, err, planner.ErrActivityNotInCatalog)
	assert.NotContains(t, src.likes, int64(99))
}

func TestCatalogService_LikeActivityRemoteFailure(t *testing.T) {
	src := &fakeCatalogSource{fail: true}
	svc := NewCatalogService(src, nil, time.Minute, zap.NewNop())

	err := svc.LikeActivity(context.Background(), 3, 7, 2, true)
	assert.ErrorIs(t, err, utils.ErrRemoteUnavailable)
}
