package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealhunt-engine/internal/catalog"
)

func TestLookup(t *testing.T) {
	d, ok := catalog.Lookup("FNC")
	require.True(t, ok)
	assert.Equal(t, "Funchal (Madeira)", d.City)
	assert.Equal(t, "Portugal", d.Country)
	assert.Equal(t, 45, d.TransferMins)
	assert.Equal(t, 4, d.Walkability)
	assert.InDelta(t, 4.0, d.FlightHours, 1e-9)
	assert.Equal(t, []string{"Lido promenade", "Forum Madeira"}, d.Areas)

	_, ok = catalog.Lookup("XXX")
	assert.False(t, ok)
	_, ok = catalog.Lookup("")
	assert.False(t, ok)
}

func TestAllOrderIsStable(t *testing.T) {
	all := catalog.All()
	require.Len(t, all, 10)
	// first-match scans depend on this order
	assert.Equal(t, "FNC", all[0].Code)
	assert.Equal(t, "TFS", all[1].Code)
	assert.Equal(t, "SID", all[9].Code)
}

func TestWalkabilityRange(t *testing.T) {
	for _, d := range catalog.All() {
		assert.GreaterOrEqual(t, d.Walkability, 0, d.Code)
		assert.LessOrEqual(t, d.Walkability, 5, d.Code)
		assert.GreaterOrEqual(t, d.TransferMins, 0, d.Code)
		assert.Greater(t, d.FlightHours, 0.0, d.Code)
	}
}

func TestIsLondonCode(t *testing.T) {
	for _, c := range []string{"LHR", "LGW", "LTN", "STN", "LCY", "SEN"} {
		assert.True(t, catalog.IsLondonCode(c), c)
	}
	assert.False(t, catalog.IsLondonCode("FNC"))
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"FNC", "Funchal"},
		{"TFS", "Tenerife South"},
		{"NCE", "Nice"},
		{"SID", "Sal"},
	}
	for _, tt := range tests {
		d, ok := catalog.Lookup(tt.code)
		require.True(t, ok)
		assert.Equal(t, tt.want, d.MatchName())
	}
}
