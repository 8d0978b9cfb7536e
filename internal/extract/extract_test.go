package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealhunt-engine/internal/extract"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"plain", "Cheap flights to Lisbon £89 return", 89, true},
		{"from prefix", "Nice from £35 this winter", 35, true},
		{"for only", "Madeira for only £46 return", 46, true},
		{"thousands separator", "Business class to Tokyo £1,234 return", 1234, true},
		{"decimal", "Valencia £52.99 return", 52.99, true},
		{"space after sign", "Palma £ 60 return", 60, true},
		{"no currency", "Amazing deal to Porto this weekend", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.Price(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestDestCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"city name", "London to Funchal for £46 return, non-stop", "FNC", true},
		{"city case-insensitive", "CHEAP TRIP TO FUNCHAL", "FNC", true},
		{"exact code", "LGW-FNC £50 return", "FNC", true},
		{"compound city leading part", "Tenerife South deals from £60", "TFS", true},
		{"generic token fallback", "London to RAK for £30", "RAK", true},
		{"departure code skipped", "LHR to AGP from £25", "AGP", true},
		{"only departure codes", "Deals from LHR and LGW this week", "", false},
		{"nothing", "Mystery getaway this weekend", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract.DestCode(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestCodeCatalogOrderWins(t *testing.T) {
	// FNC precedes VLC in the catalog; a title mentioning both resolves to
	// the earlier entry.
	got, ok := extract.DestCode("Funchal or Valencia from £40")
	require.True(t, ok)
	assert.Equal(t, "FNC", got)
}

func TestFlightHours(t *testing.T) {
	assert.InDelta(t, 4.0, extract.FlightHours("FNC"), 1e-9)
	assert.InDelta(t, 6.0, extract.FlightHours("SID"), 1e-9)
	assert.InDelta(t, 2.1, extract.FlightHours("NCE"), 1e-9)
	assert.InDelta(t, extract.DefaultFlightHours, extract.FlightHours("XXX"), 1e-9)
	assert.InDelta(t, extract.DefaultFlightHours, extract.FlightHours(""), 1e-9)
}

func TestNonstop(t *testing.T) {
	nonstop, known := extract.Nonstop("London to Funchal for £46 return, non-stop")
	assert.True(t, nonstop)
	assert.True(t, known)

	nonstop, known = extract.Nonstop("NONSTOP to Nice £35")
	assert.True(t, nonstop)
	assert.True(t, known)

	nonstop, known = extract.Nonstop("Lisbon £60 return")
	assert.False(t, nonstop)
	assert.False(t, known)
}

// The reference scenario end to end through the extractor.
func TestFunchalScenario(t *testing.T) {
	title := "London to Funchal for £46 return, non-stop"

	price, ok := extract.Price(title)
	require.True(t, ok)
	assert.InDelta(t, 46.0, price, 1e-9)

	code, ok := extract.DestCode(title)
	require.True(t, ok)
	assert.Equal(t, "FNC", code)

	assert.InDelta(t, 4.0, extract.FlightHours(code), 1e-9)

	nonstop, known := extract.Nonstop(title)
	assert.True(t, nonstop)
	assert.True(t, known)
}
