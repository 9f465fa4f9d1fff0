package service

import (
	"context"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miles-advisor/domain"
	"miles-advisor/repository"
)

func TestCached_MissThenHit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryCache()
	defer repo.Stop()
	cache := NewResultCache(repo, time.Minute, DefaultValuation(), zerolog.Nop())
	svc := NewAcceleratorService(newTestValuer())

	calls := 0
	evaluate := func(in domain.AcceleratorInput) (domain.AcceleratorResult, error) {
		calls++
		return svc.Evaluate(in)
	}
	in := domain.AcceleratorInput{Miles: 10000, PQP: 500, Cost: 1000}

	first, hit, err := Cached(ctx, cache, "accelerator", in, evaluate)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := Cached(ctx, cache, "accelerator", in, evaluate)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, repo.Len())
}

func TestCached_KindSeparatesKeys(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryCache()
	defer repo.Stop()
	cache := NewResultCache(repo, time.Minute, DefaultValuation(), zerolog.Nop())

	echo := func(in int) (int, error) { return in, nil }
	_, _, err := Cached(ctx, cache, "a", 1, echo)
	require.NoError(t, err)
	_, hit, err := Cached(ctx, cache, "b", 1, echo)
	require.NoError(t, err)

	assert.False(t, hit)
	assert.Equal(t, 2, repo.Len())
}

func TestCached_ErrorsAreNotStored(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryCache()
	defer repo.Stop()
	cache := NewResultCache(repo, time.Minute, DefaultValuation(), zerolog.Nop())
	svc := NewAcceleratorService(newTestValuer())

	in := domain.AcceleratorInput{Miles: -1}
	_, hit, err := Cached(ctx, cache, "accelerator", in, svc.Evaluate)

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, hit)
	assert.Equal(t, 0, repo.Len())
}

func TestCached_UndecodableEntryIsRecomputed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryCache()
	defer repo.Stop()
	cache := NewResultCache(repo, time.Minute, DefaultValuation(), zerolog.Nop())

	in := domain.RelativeUpgradeInput{BaseFare: 1000, UpgradeCost: 400}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, cache.cacheKey("relative", raw), "{not json", time.Minute))

	r, hit, err := Cached(ctx, cache, "relative", in, EvaluateRelativeUpgradeCost)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, domain.RelativeCostReasonable, r.Verdict)

	stored, ok := repo.Get(ctx, cache.cacheKey("relative", raw))
	require.True(t, ok)
	assert.NotEqual(t, "{not json", stored)
}

func TestCached_NilCacheEvaluates(t *testing.T) {
	r, hit, err := Cached(context.Background(), nil, "relative",
		domain.RelativeUpgradeInput{BaseFare: 1000, UpgradeCost: 900}, EvaluateRelativeUpgradeCost)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, domain.RelativeCostExpensive, r.Verdict)
}

func TestCached_ProfileSeparatesKeys(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryCache()
	defer repo.Stop()

	richer := DefaultValuation()
	richer.LowRate, richer.HighRate = 0.02, 0.03

	defaults := NewSuite(DefaultValuation())
	custom := NewSuite(richer)
	defaultCache := NewResultCache(repo, time.Minute, defaults.Valuation, zerolog.Nop())
	customCache := NewResultCache(repo, time.Minute, custom.Valuation, zerolog.Nop())

	in := domain.AcceleratorInput{Miles: 10000, Cost: 100}

	first, hit, err := Cached(ctx, defaultCache, "accelerator", in, defaults.Accelerator.Evaluate)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.InDelta(t, 120.0, first.MilesWorth.Low, 1e-9)

	second, hit, err := Cached(ctx, customCache, "accelerator", in, custom.Accelerator.Evaluate)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.InDelta(t, 200.0, second.MilesWorth.Low, 1e-9)
	assert.InDelta(t, 300.0, second.MilesWorth.High, 1e-9)
	assert.Equal(t, 2, repo.Len())
}

func TestValuationFingerprint(t *testing.T) {
	base := DefaultValuation()
	assert.Equal(t, valuationFingerprint(base), valuationFingerprint(DefaultValuation()))

	changed := DefaultValuation()
	changed.RedemptionAdjustments["economy_domestic"] = -0.003
	assert.NotEqual(t, valuationFingerprint(base), valuationFingerprint(changed))

	changed = DefaultValuation()
	changed.Multipliers[domain.CabinPair{From: domain.Economy, To: domain.Business}] = 1.6
	assert.NotEqual(t, valuationFingerprint(base), valuationFingerprint(changed))
}
