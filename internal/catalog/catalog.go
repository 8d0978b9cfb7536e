// Package catalog holds the curated destination metadata used to enrich
// listings: airport transfer minutes, family-walkability score, recommended
// stay areas and a rough London-outbound flight-hours estimate. The set is
// closed and hand-curated; adding a destination is a data change only.
package catalog

import "strings"

type DestinationInfo struct {
	Code         string
	City         string
	Country      string
	TransferMins int
	Walkability  int // 0..5
	FlightHours  float64
	Areas        []string
}

// entries is deliberately a slice, not a map: first-match scans over the
// catalog must be reproducible, so iteration order is declaration order.
var entries = []DestinationInfo{
	{Code: "FNC", City: "Funchal (Madeira)", Country: "Portugal", TransferMins: 45, Walkability: 4, FlightHours: 4.0, Areas: []string{"Lido promenade", "Forum Madeira"}},
	{Code: "TFS", City: "Tenerife South → Costa Adeje", Country: "Spain (Canaries)", TransferMins: 40, Walkability: 5, FlightHours: 4.5, Areas: []string{"Costa Adeje", "Fañabé"}},
	{Code: "KEF", City: "Reykjavík", Country: "Iceland", TransferMins: 45, Walkability: 4, FlightHours: 3.0, Areas: []string{"101 Reykjavík", "Harpa"}},
	{Code: "NCE", City: "Nice", Country: "France", TransferMins: 28, Walkability: 5, FlightHours: 2.1, Areas: []string{"Vieux Nice", "Jean Médecin"}},
	{Code: "PMI", City: "Palma de Mallorca", Country: "Spain (Balearics)", TransferMins: 22, Walkability: 5, FlightHours: 2.3, Areas: []string{"Can Pastilla", "Old Town"}},
	{Code: "LIS", City: "Lisbon", Country: "Portugal", TransferMins: 24, Walkability: 4, FlightHours: 2.8, Areas: []string{"Baixa", "Chiado", "Saldanha"}},
	{Code: "OPO", City: "Porto", Country: "Portugal", TransferMins: 30, Walkability: 4, FlightHours: 2.2, Areas: []string{"Cedofeita", "Ribeira"}},
	{Code: "DBV", City: "Dubrovnik", Country: "Croatia", TransferMins: 35, Walkability: 4, FlightHours: 2.8, Areas: []string{"Lapad promenade"}},
	{Code: "VLC", City: "Valencia", Country: "Spain", TransferMins: 25, Walkability: 5, FlightHours: 2.3, Areas: []string{"Ruzafa", "Eixample"}},
	{Code: "SID", City: "Sal (Cape Verde)", Country: "Cape Verde", TransferMins: 20, Walkability: 4, FlightHours: 6.0, Areas: []string{"Santa Maria"}},
}

var byCode = func() map[string]DestinationInfo {
	m := make(map[string]DestinationInfo, len(entries))
	for _, d := range entries {
		m[d.Code] = d
	}
	return m
}()

// londonCodes are the departure airports; a generic IATA token scan must
// never mistake one of these for a destination.
var londonCodes = map[string]bool{
	"LHR": true, "LGW": true, "LTN": true, "STN": true, "LCY": true, "SEN": true,
}

func Lookup(code string) (DestinationInfo, bool) {
	d, ok := byCode[code]
	return d, ok
}

// All returns the curated entries in declaration order.
func All() []DestinationInfo {
	return entries
}

func IsLondonCode(code string) bool {
	return londonCodes[code]
}

// MatchName returns the part of the city name used for free-text matching:
// the leading city, cut before any airport-to-area arrow or parenthetical.
// "Tenerife South → Costa Adeje" matches as "Tenerife South", "Funchal
// (Madeira)" as "Funchal".
func (d DestinationInfo) MatchName() string {
	name := d.City
	if i := strings.Index(name, " → "); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
