// Package pipeline wires the whole run together: fetch-all, normalize-all,
// score-all, rank, build links. Each run is synchronous and stateless; given
// the same source content and config, the output is identical.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"dealhunt-engine/internal/config"
	"dealhunt-engine/internal/domain"
	"dealhunt-engine/internal/fetch"
	"dealhunt-engine/internal/links"
	"dealhunt-engine/internal/rank"
)

type Deps struct {
	Fetchers []fetch.Fetcher
	Cache    *fetch.Cache // nil: fetch fresh every run
	Cfg      config.Config
	Log      *slog.Logger
	Now      func() time.Time // nil: time.Now
}

type Result struct {
	Deals    []domain.Deal   `json:"deals"`
	Warnings []fetch.Warning `json:"warnings"`
	Fetched  int             `json:"fetched"`
}

func Run(ctx context.Context, d Deps) Result {
	logger := d.Log
	if logger == nil {
		logger = slog.Default()
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}

	opts := fetch.Options{Timeout: d.Cfg.FetchTimeout(), Log: logger}
	var raw []domain.RawListing
	var warns []fetch.Warning
	if d.Cache != nil {
		raw, warns = d.Cache.Get(ctx, d.Fetchers, opts)
	} else {
		raw, warns = fetch.All(ctx, d.Fetchers, opts)
	}

	var listings []domain.Listing
	for _, r := range raw {
		l, dropped := Normalize(r, d.Cfg)
		if dropped != "" {
			logger.Debug("dropped", "reason", dropped, "source", r.Source, "title", r.Title)
			continue
		}
		listings = append(listings, l)
	}

	scored := make([]domain.ScoredListing, 0, len(listings))
	for _, l := range listings {
		scored = append(scored, domain.ScoredListing{
			Listing: l,
			Score:   rank.Score(l, d.Cfg.Scoring),
		})
	}
	top := rank.Top(scored, d.Cfg.Filters.ResultCount)

	start := now().AddDate(0, 0, d.Cfg.Travel.LeadDays)
	deals := make([]domain.Deal, 0, len(top))
	for _, s := range top {
		area := ""
		if len(s.Areas) > 0 {
			area = s.Areas[0]
		}
		city := s.City
		if city == "" {
			city = s.DestCode
		}
		deals = append(deals, domain.Deal{
			Score:         s.Score,
			Title:         s.Title,
			City:          s.City,
			Country:       s.Country,
			Price:         s.Price,
			OutboundHours: s.OutboundHours,
			TransferMins:  s.TransferMins,
			Walkability:   s.Walkability,
			Areas:         s.Areas,
			FlightsLink:   links.Flights(s.DestCode, start, d.Cfg.Travel.Nights),
			AccomLink:     links.Accommodation(city, start, d.Cfg.Travel.Nights, area),
			SourceURL:     s.SourceURL,
		})
	}

	logger.Info("run complete", "fetched", len(raw), "kept", len(listings), "ranked", len(deals), "warnings", len(warns))
	return Result{Deals: deals, Warnings: warns, Fetched: len(raw)}
}
