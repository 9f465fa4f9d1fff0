package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCabinClass(t *testing.T) {
	tests := []struct {
		in   string
		want CabinClass
	}{
		{"economy", Economy},
		{"Economy", Economy},
		{"premium_plus", PremiumPlus},
		{"Premium Plus", PremiumPlus},
		{"premium-plus", PremiumPlus},
		{"business", Business},
		{"Business (Polaris)", Business},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCabinClass(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCabinClass_Unknown(t *testing.T) {
	_, err := ParseCabinClass("first")
	assert.True(t, errors.Is(err, ErrUnknownCabinClass))
}

func TestCabinClass_RankOrder(t *testing.T) {
	classes := CabinClasses()
	for i := 1; i < len(classes); i++ {
		assert.Less(t, classes[i-1].Rank(), classes[i].Rank())
	}
}

func TestCabinClass_JSON(t *testing.T) {
	in := UpgradeInput{From: Economy, To: Business}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"from":"economy"`)
	assert.Contains(t, string(b), `"to":"business"`)

	var out UpgradeInput
	require.NoError(t, json.Unmarshal([]byte(`{"from":"premium_plus","to":"business"}`), &out))
	assert.Equal(t, PremiumPlus, out.From)
	assert.Equal(t, Business, out.To)

	err = json.Unmarshal([]byte(`{"from":"coach"}`), &out)
	assert.Error(t, err)
}

func TestUpgradeMultipliers_LookupDefault(t *testing.T) {
	m := UpgradeMultipliers{{From: Economy, To: Business}: 1.5}

	assert.Equal(t, 1.5, m.Lookup(Economy, Business))
	assert.Equal(t, DefaultUpgradeMultiplier, m.Lookup(Business, Economy))
	assert.Equal(t, DefaultUpgradeMultiplier, m.Lookup(Economy, Economy))
}

func TestUpgradeMultipliers_CloneIsIndependent(t *testing.T) {
	m := UpgradeMultipliers{{From: Economy, To: Business}: 1.5}
	c := m.Clone()
	c[CabinPair{From: Economy, To: Business}] = 9

	assert.Equal(t, 1.5, m.Lookup(Economy, Business))
}
