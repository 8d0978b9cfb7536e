// Package links builds outbound deep links as pure string construction; no
// network calls, no validation of the destination against either provider.
package links

import (
	"fmt"
	"net/url"
	"time"
)

const (
	flightsBase = "https://www.google.com/travel/flights"
	bookingBase = "https://www.booking.com/searchresults.html"
)

const dateLayout = "2006-01-02"

// Flights builds a Google Flights search URL from a natural-language query,
// the only form Google accepts without an API key.
func Flights(destCode string, start time.Time, nights int) string {
	q := fmt.Sprintf("Flights to %s from London", destCode)
	if !start.IsZero() {
		end := start.AddDate(0, 0, nights)
		q += fmt.Sprintf(" on %s through %s", start.Format(dateLayout), end.Format(dateLayout))
	}
	v := url.Values{}
	v.Set("q", q)
	return flightsBase + "?" + v.Encode()
}

// Accommodation builds a Booking.com search URL for a family of four, with
// an optional area hint appended to the city search string.
func Accommodation(city string, start time.Time, nights int, area string) string {
	ss := city
	if area != "" {
		ss += " " + area
	}

	v := url.Values{}
	v.Set("ss", ss)
	if !start.IsZero() {
		end := start.AddDate(0, 0, nights)
		v.Set("checkin", start.Format(dateLayout))
		v.Set("checkout", end.Format(dateLayout))
		v.Set("group_adults", "2")
		v.Set("group_children", "2")
		v.Set("no_rooms", "1")
	}
	return bookingBase + "?" + v.Encode()
}
