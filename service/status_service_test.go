package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miles-advisor/domain"
)

func newTestSuite() *Suite {
	return NewSuite(DefaultValuation())
}

func TestStatusProgress_PurchaseFallsShort(t *testing.T) {
	s := newTestSuite()

	p, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: 3500, CurrentPQF: 20, PurchasePQP: 800})

	require.NoError(t, err)
	assert.Equal(t, "General Member", p.Current)
	assert.Equal(t, "Premier Silver", p.Next)
	assert.InDelta(t, 500.0, p.PQPNeeded, 1e-9)
	assert.Equal(t, 5, p.PQFNeeded)
	assert.InDelta(t, 87.5, p.ProgressPercent, 1e-9)
	assert.InDelta(t, 4300.0, p.PQPAfterPurchase, 1e-9)
	assert.False(t, p.PurchaseReachesNext)
	assert.False(t, p.MaxLevel)
}

func TestStatusProgress_PurchaseReachesNext(t *testing.T) {
	s := newTestSuite()

	p, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: 3500, CurrentPQF: 30, PurchasePQP: 800})

	require.NoError(t, err)
	assert.True(t, p.PurchaseReachesNext)
}

func TestStatusProgress_FlightsHoldBackTier(t *testing.T) {
	s := newTestSuite()

	p, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: 9000, CurrentPQF: 30})

	require.NoError(t, err)
	assert.Equal(t, "Premier Silver", p.Current)
	assert.Equal(t, "Premier Gold", p.Next)
	assert.Zero(t, p.PQPNeeded)
	assert.Equal(t, 20, p.PQFNeeded)
	assert.InDelta(t, 100.0, p.ProgressPercent, 1e-9)
	assert.False(t, p.PurchaseReachesNext)
}

func TestStatusProgress_MaxLevel(t *testing.T) {
	s := newTestSuite()

	p, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: 20000, CurrentPQF: 120})

	require.NoError(t, err)
	assert.Equal(t, "Premier 1K", p.Current)
	assert.True(t, p.MaxLevel)
	assert.Empty(t, p.Next)
	assert.Equal(t, 100.0, p.ProgressPercent)
}

func TestStatusProgress_Errors(t *testing.T) {
	s := newTestSuite()

	_, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQF: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = NewEliteStatusService(nil).Progress(domain.StatusProgressInput{})
	assert.Error(t, err)
}

func TestStatusProgress_OverflowIsRejected(t *testing.T) {
	s := newTestSuite()

	_, err := s.EliteStatus.Progress(domain.StatusProgressInput{CurrentPQP: 1e308, PurchasePQP: 1e308})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPersonalValue(t *testing.T) {
	s := newTestSuite()

	r, err := s.PersonalValue.Calculate(domain.PersonalValueInput{
		Pattern:    "business_traveler",
		Redemption: "business_domestic",
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.015, r.PersonalValue, 1e-12)
	assert.InDelta(t, 1.5, r.PersonalCPM, 1e-9)
	assert.InDelta(t, 0.001, r.Adjustment, 1e-12)
	assert.Empty(t, r.OfferVerdict)
}

func TestPersonalValue_OfferVerdict(t *testing.T) {
	s := newTestSuite()

	good, err := s.PersonalValue.Calculate(domain.PersonalValueInput{
		Pattern: "frequent_flyer", Redemption: "economy_international", OfferedCPM: floatPtr(1.4),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferGood, good.OfferVerdict)

	expensive, err := s.PersonalValue.Calculate(domain.PersonalValueInput{
		Pattern: "leisure_traveler", Redemption: "economy_domestic", OfferedCPM: floatPtr(1.4),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferExpensive, expensive.OfferVerdict)
}

func TestPersonalValue_UnknownInputs(t *testing.T) {
	s := newTestSuite()

	_, err := s.PersonalValue.Calculate(domain.PersonalValueInput{Pattern: "astronaut"})
	assert.True(t, errors.Is(err, domain.ErrUnknownTravelPattern))

	r, err := s.PersonalValue.Calculate(domain.PersonalValueInput{Pattern: "leisure_traveler", Redemption: "space_tourism"})
	require.NoError(t, err)
	assert.Zero(t, r.Adjustment)
	assert.InDelta(t, 0.013, r.PersonalValue, 1e-12)
}

func TestStatusRun_Recommended(t *testing.T) {
	s := newTestSuite()

	r, err := s.StatusRun.Recommend(domain.StatusRunInput{
		CurrentPQP: 3500, CurrentPQF: 30, PurchasePQP: 800,
		Pattern: "frequent_flyer", Redemption: "economy_international",
	})

	require.NoError(t, err)
	assert.True(t, r.Recommended)
	assert.Empty(t, r.Reasons)
	assert.Equal(t, "Premier Silver", r.Progress.Next)
}

func TestStatusRun_NotRecommended(t *testing.T) {
	s := newTestSuite()

	r, err := s.StatusRun.Recommend(domain.StatusRunInput{
		CurrentPQP: 3500, CurrentPQF: 20, PurchasePQP: 800,
		Pattern: "leisure_traveler", Redemption: "economy_domestic",
	})

	require.NoError(t, err)
	assert.False(t, r.Recommended)
	assert.Equal(t, []domain.StatusRunReason{
		domain.ReasonWontReachNextStatus,
		domain.ReasonBelowPersonalValue,
	}, r.Reasons)
}

func TestStatusRun_PropagatesErrors(t *testing.T) {
	s := newTestSuite()

	_, err := s.StatusRun.Recommend(domain.StatusRunInput{Pattern: "nobody"})
	assert.True(t, errors.Is(err, domain.ErrUnknownTravelPattern))
}
