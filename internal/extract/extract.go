// Package extract pulls structured facts out of noisy deal-listing titles.
// Every function is best-effort: a miss is reported through the ok result,
// never as an error and never as a sentinel value.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"dealhunt-engine/internal/catalog"
)

// DefaultFlightHours is the estimate used for destinations outside the
// curated catalog.
const DefaultFlightHours = 3.0

// pricePatterns are tried in priority order; the first match wins and no
// attempt is made to reconcile conflicting matches.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`£\s?(\d+[.,]?\d*)`),
	regexp.MustCompile(`(?i)from\s*£\s?(\d+[.,]?\d*)`),
	regexp.MustCompile(`(?i)for\s*only\s*£\s?(\d+[.,]?\d*)`),
}

var iataPattern = regexp.MustCompile(`\b([A-Z]{3})\b`)

// Price returns the first currency-prefixed amount found in text, with
// thousands separators stripped.
func Price(text string) (float64, bool) {
	for _, pat := range pricePatterns {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// DestCode guesses the destination airport code mentioned in text. Catalog
// entries are tried first, in catalog order, matching either the exact code
// token or the city name as a case-insensitive substring. Failing that, the
// first generic three-uppercase-letter token that is not a London departure
// code is returned.
func DestCode(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, d := range catalog.All() {
		if strings.Contains(text, d.Code) || strings.Contains(lower, strings.ToLower(d.MatchName())) {
			return d.Code, true
		}
	}
	for _, m := range iataPattern.FindAllStringSubmatch(text, -1) {
		if !catalog.IsLondonCode(m[1]) {
			return m[1], true
		}
	}
	return "", false
}

// FlightHours returns the curated London-outbound estimate for known codes
// and DefaultFlightHours for anything else, including an empty code.
func FlightHours(code string) float64 {
	if d, ok := catalog.Lookup(code); ok {
		return d.FlightHours
	}
	return DefaultFlightHours
}

// Nonstop reports whether text explicitly signals a nonstop flight. known is
// false when the text says nothing either way; the caller decides what an
// unknown means (assumed nonstop unless the strict filter is on).
func Nonstop(text string) (nonstop, known bool) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "non-stop") || strings.Contains(lower, "nonstop") {
		return true, true
	}
	return false, false
}
