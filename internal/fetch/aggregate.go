package fetch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"dealhunt-engine/internal/domain"
)

type Options struct {
	Timeout time.Duration // per adapter; defaults to 20s
	Log     *slog.Logger
}

// All runs every fetcher concurrently and concatenates their listings in
// registration order, each adapter's own order preserved within its slot.
// A failing adapter becomes a Warning and never cancels its siblings.
func All(ctx context.Context, fetchers []Fetcher, opts Options) ([]domain.RawListing, []Warning) {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	logger := opts.Log
	if logger == nil {
		logger = slog.Default()
	}

	type slot struct {
		listings []domain.RawListing
		warn     *Warning
	}
	slots := make([]slot, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, opts.Timeout)
			defer cancel()

			logger.Info("fetching", "source", f.Name())
			listings, err := f.Fetch(fctx)
			if err != nil {
				logger.Warn("source failed", "source", f.Name(), "err", err)
				slots[i] = slot{warn: &Warning{Source: f.Name(), Err: err.Error()}}
				return nil // best-effort: don't cancel siblings
			}
			logger.Info("fetched", "source", f.Name(), "listings", len(listings))
			slots[i] = slot{listings: listings}
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.RawListing
	var warns []Warning
	for _, s := range slots {
		out = append(out, s.listings...)
		if s.warn != nil {
			warns = append(warns, *s.warn)
		}
	}
	return out, warns
}
