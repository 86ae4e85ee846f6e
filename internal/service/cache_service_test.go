package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	var dest map[string]int
	hit, err := svc.Get(ctx, "progress:test", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "progress:test", map[string]int{"completed": 3}, time.Minute))

	hit, err = svc.Get(ctx, "progress:test", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, map[string]int{"completed": 3}, dest)
}

func TestCacheServiceDelete(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, svc.Delete(ctx, "a", "b"))

	var dest int
	hit, err := svc.Get(ctx, "a", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceInvalidatePattern(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "progress:usermetrics:1:10", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "progress:usermetrics:1:11", 2, time.Minute))
	require.NoError(t, svc.Set(ctx, "progress:usermetrics:2:10", 3, time.Minute))

	require.NoError(t, svc.Invalidate(ctx, "progress:usermetrics:1:*"))

	var dest int
	hit, err := svc.Get(ctx, "progress:usermetrics:1:11", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = svc.Get(ctx, "progress:usermetrics:2:10", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), false)
	ctx := context.Background()

	assert.False(t, svc.Enabled())
	require.NoError(t, svc.Set(ctx, "a", 1, time.Minute))
	assert.Empty(t, repo.store)

	var dest int
	hit, err := svc.Get(ctx, "a", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceNilRepo(t *testing.T) {
	svc := NewCacheService(nil, nil, time.Minute, zap.NewNop(), true)

	assert.False(t, svc.Enabled())

	var dest int
	hit, err := svc.Get(context.Background(), "a", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}
