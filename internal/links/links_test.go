package links_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealhunt-engine/internal/links"
)

var start = time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC)

func TestFlights(t *testing.T) {
	got := links.Flights("FNC", start, 6)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", u.Host)
	assert.Equal(t, "/travel/flights", u.Path)
	assert.Equal(t, "Flights to FNC from London on 2026-09-22 through 2026-09-28", u.Query().Get("q"))
}

func TestFlightsWithoutDates(t *testing.T) {
	got := links.Flights("PMI", time.Time{}, 6)
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Flights to PMI from London", u.Query().Get("q"))
}

func TestAccommodationRoundTrip(t *testing.T) {
	got := links.Accommodation("Lisbon", start, 6, "Baixa")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "www.booking.com", u.Host)
	assert.Equal(t, "/searchresults.html", u.Path)

	q := u.Query()
	assert.Equal(t, "Lisbon Baixa", q.Get("ss"))
	assert.Equal(t, "2026-09-22", q.Get("checkin"))
	assert.Equal(t, "2026-09-28", q.Get("checkout"))
	assert.Equal(t, "2", q.Get("group_adults"))
	assert.Equal(t, "2", q.Get("group_children"))
	assert.Equal(t, "1", q.Get("no_rooms"))
}

func TestAccommodationNoArea(t *testing.T) {
	got := links.Accommodation("Nice", start, 6, "")
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Nice", u.Query().Get("ss"))
}

func TestAccommodationEncodesSpaces(t *testing.T) {
	got := links.Accommodation("Palma de Mallorca", start, 6, "Old Town")
	assert.NotContains(t, got, " ")
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Palma de Mallorca Old Town", u.Query().Get("ss"))
}
