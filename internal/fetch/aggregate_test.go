package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealhunt-engine/internal/domain"
)

type stubFetcher struct {
	name     string
	listings []domain.RawListing
	err      error
	delay    time.Duration
	calls    *int
}

func (s stubFetcher) Name() string { return s.name }
func (s stubFetcher) Fetch(ctx context.Context) ([]domain.RawListing, error) {
	if s.calls != nil {
		*s.calls++
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.listings, s.err
}

func raws(urls ...string) []domain.RawListing {
	out := make([]domain.RawListing, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.RawListing{Title: "deal " + u, URL: u})
	}
	return out
}

func TestAllOneSourceFailsOthersSurvive(t *testing.T) {
	fetchers := []Fetcher{
		stubFetcher{name: "broken", err: errors.New("connect: timeout")},
		stubFetcher{name: "ok", listings: raws("a", "b", "c")},
	}
	listings, warns := All(context.Background(), fetchers, Options{})

	assert.Len(t, listings, 3)
	require.Len(t, warns, 1)
	assert.Equal(t, "broken", warns[0].Source)
	assert.Contains(t, warns[0].Err, "timeout")
}

func TestAllKeepsRegistrationOrder(t *testing.T) {
	// the slower first adapter still lands first in the output
	fetchers := []Fetcher{
		stubFetcher{name: "slow", delay: 30 * time.Millisecond, listings: raws("s1", "s2")},
		stubFetcher{name: "fast", listings: raws("f1")},
	}
	listings, warns := All(context.Background(), fetchers, Options{})

	assert.Empty(t, warns)
	require.Len(t, listings, 3)
	assert.Equal(t, "s1", listings[0].URL)
	assert.Equal(t, "s2", listings[1].URL)
	assert.Equal(t, "f1", listings[2].URL)
}

func TestAllPerAdapterTimeout(t *testing.T) {
	fetchers := []Fetcher{
		stubFetcher{name: "hang", delay: time.Minute, listings: raws("never")},
		stubFetcher{name: "ok", listings: raws("a")},
	}
	listings, warns := All(context.Background(), fetchers, Options{Timeout: 20 * time.Millisecond})

	assert.Len(t, listings, 1)
	require.Len(t, warns, 1)
	assert.Equal(t, "hang", warns[0].Source)
}

func TestAllNoFetchers(t *testing.T) {
	listings, warns := All(context.Background(), nil, Options{})
	assert.Empty(t, listings)
	assert.Empty(t, warns)
}

func TestCacheServesWithinTTLAndRecomputesAfter(t *testing.T) {
	calls := 0
	fetchers := []Fetcher{stubFetcher{name: "src", listings: raws("a"), calls: &calls}}

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(30 * time.Minute)
	c.now = func() time.Time { return now }

	first, _ := c.Get(context.Background(), fetchers, Options{})
	assert.Equal(t, 1, calls)
	require.Len(t, first, 1)

	now = now.Add(10 * time.Minute)
	second, _ := c.Get(context.Background(), fetchers, Options{})
	assert.Equal(t, 1, calls, "within TTL the cached snapshot is served")
	assert.Equal(t, first, second)

	now = now.Add(25 * time.Minute)
	_, _ = c.Get(context.Background(), fetchers, Options{})
	assert.Equal(t, 2, calls, "after TTL the snapshot is recomputed")
}

func TestCacheCachesWarningsToo(t *testing.T) {
	calls := 0
	fetchers := []Fetcher{stubFetcher{name: "broken", err: errors.New("down"), calls: &calls}}

	c := NewCache(30 * time.Minute)
	_, warns1 := c.Get(context.Background(), fetchers, Options{})
	_, warns2 := c.Get(context.Background(), fetchers, Options{})

	assert.Equal(t, 1, calls)
	require.Len(t, warns1, 1)
	assert.Equal(t, warns1, warns2)
}
