package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miles-advisor/domain"
)

func newTestValuer() *Valuer {
	return NewValuer(MileValueLow, MileValueHigh)
}

func TestValuer_Value(t *testing.T) {
	v := newTestValuer()

	assert.Equal(t, domain.ValueRange{}, v.Value(0))

	r := v.Value(10000)
	assert.InDelta(t, 120.0, r.Low, 1e-9)
	assert.InDelta(t, 150.0, r.High, 1e-9)

	big := v.Value(1_000_000)
	assert.InDelta(t, 12000.0, big.Low, 1e-6)
	assert.InDelta(t, 15000.0, big.High, 1e-6)
}

func TestValuer_LowNotAboveHighAndLinear(t *testing.T) {
	v := newTestValuer()
	for _, miles := range []float64{0, 1, 999, 12500, 250000, 3_333_333} {
		r := v.Value(miles)
		assert.LessOrEqual(t, r.Low, r.High)

		double := v.Value(2 * miles)
		assert.InDelta(t, 2*r.Low, double.Low, 1e-6)
		assert.InDelta(t, 2*r.High, double.High, 1e-6)
	}
}

func TestAccelerator_NegativeInputs(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	for _, in := range []domain.AcceleratorInput{
		{Miles: -1, PQP: 0, Cost: 10},
		{Miles: 1000, PQP: -1, Cost: 10},
		{Miles: 1000, PQP: 0, Cost: -10},
	} {
		_, err := svc.Evaluate(in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "input %+v", in)
	}
}

func TestAccelerator_OverflowIsRejected(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	tests := []struct {
		name string
		in   domain.AcceleratorInput
	}{
		{"cost per mile overflows", domain.AcceleratorInput{Miles: 1e-300, Cost: 1e10}},
		{"cost per pqp overflows", domain.AcceleratorInput{Miles: 1000, PQP: 1e-300, Cost: 1e10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Evaluate(tt.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestAccelerator_CheapMilesWithoutPQP(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 1000, PQP: 0, Cost: 5})

	require.NoError(t, err)
	assert.InDelta(t, 0.005, r.CostPerMile, 1e-12)
	assert.Equal(t, domain.VerdictGood, r.Verdict)
	assert.Nil(t, r.PQPCost)
	assert.InDelta(t, 0.5, r.CPM, 1e-9)
	assert.Equal(t, domain.CPMBelowValuation, r.CPMBand)
	assert.Equal(t, domain.PQPEarningNone, r.PQPEarningBand)
}

func TestAccelerator_NoPQPVerdictBands(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	tests := []struct {
		name string
		cost float64
		want domain.Verdict
		band domain.CPMBand
	}{
		{"just under a cent", 99, domain.VerdictGood, domain.CPMBelowValuation},
		{"between a cent and low rate", 110, domain.VerdictDecent, domain.CPMSlightlyBelowValuation},
		{"above low rate", 125, domain.VerdictPoor, domain.CPMAboveValuation},
		{"expensive", 250, domain.VerdictPoor, domain.CPMAboveValuation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 10000, Cost: tt.cost})
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Verdict)
			assert.Equal(t, tt.band, r.CPMBand)
		})
	}
}

func TestAccelerator_WithPQPNotWorthIt(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 10000, PQP: 500, Cost: 1000})

	require.NoError(t, err)
	assert.InDelta(t, 120.0, r.MilesWorth.Low, 1e-9)
	assert.InDelta(t, 150.0, r.MilesWorth.High, 1e-9)
	require.NotNil(t, r.PQPCost)
	assert.InDelta(t, 1.7, r.PQPCost.Low, 1e-9)
	assert.InDelta(t, 1.76, r.PQPCost.High, 1e-9)
	assert.Equal(t, domain.VerdictPoor, r.Verdict)

	require.NotNil(t, r.PQPEarningRate)
	assert.InDelta(t, 0.5, *r.PQPEarningRate, 1e-9)
	assert.Equal(t, domain.PQPEarningBelowAverage, r.PQPEarningBand)
}

func TestAccelerator_WithPQPExcellent(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 10000, PQP: 120, Cost: 200})

	require.NoError(t, err)
	require.NotNil(t, r.PQPCost)
	assert.InDelta(t, 50.0/120.0, r.PQPCost.Low, 1e-9)
	assert.Equal(t, domain.VerdictGood, r.Verdict)
	assert.Equal(t, domain.PQPEarningDecent, r.PQPEarningBand)
}

func TestAccelerator_WithPQPDecent(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	// (850 - 150) / 500 = 1.4
	r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 10000, PQP: 500, Cost: 850})

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictDecent, r.Verdict)
}

func TestAccelerator_ZeroMiles(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())

	r, err := svc.Evaluate(domain.AcceleratorInput{Miles: 0, PQP: 0, Cost: 100})

	require.NoError(t, err)
	assert.Equal(t, 0.0, r.CostPerMile)
	assert.Equal(t, 0.0, r.CPM)
	assert.Equal(t, domain.ValueRange{}, r.MilesWorth)
	assert.Equal(t, domain.VerdictPoor, r.Verdict)
	assert.Empty(t, r.CPMBand)
}

func TestAccelerator_Idempotent(t *testing.T) {
	svc := NewAcceleratorService(newTestValuer())
	in := domain.AcceleratorInput{Miles: 25000, PQP: 1000, Cost: 975}

	a, err := svc.Evaluate(in)
	require.NoError(t, err)
	b, err := svc.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
