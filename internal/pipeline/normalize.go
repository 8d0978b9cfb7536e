package pipeline

import (
	"dealhunt-engine/internal/catalog"
	"dealhunt-engine/internal/config"
	"dealhunt-engine/internal/domain"
	"dealhunt-engine/internal/extract"
)

// Normalize turns one raw listing into the canonical record, or drops it.
// This is the single place the max-hours rule and the nonstop-only filter
// are enforced; downstream code can rely on both having been applied.
//
// Reason strings are for logging only.
func Normalize(raw domain.RawListing, cfg config.Config) (domain.Listing, string) {
	l := domain.Listing{
		Title:     raw.Title,
		SourceURL: raw.URL,
		Source:    raw.Source,
	}

	switch {
	case raw.Price != nil:
		l.Price = *raw.Price
	default:
		if v, ok := extract.Price(raw.Title); ok {
			l.Price = v
		} else {
			l.Price = cfg.Defaults.Price
		}
	}
	l.AccomNightly = cfg.Defaults.AccomNightly

	code := raw.DestCode
	if code == "" {
		code, _ = extract.DestCode(raw.Title)
	}
	l.DestCode = code

	if info, ok := catalog.Lookup(code); ok {
		l.City = info.City
		l.Country = info.Country
		l.Areas = info.Areas
		l.TransferMins = info.TransferMins
		l.Walkability = info.Walkability
	} else {
		l.TransferMins = cfg.Defaults.TransferMins
		l.Walkability = cfg.Defaults.Walkability
	}

	if raw.Hours != nil {
		l.OutboundHours = *raw.Hours
	} else {
		l.OutboundHours = extract.FlightHours(code)
	}
	if l.OutboundHours > cfg.Filters.MaxHours {
		return l, "max_hours"
	}

	// Nonstop is true only on an explicit signal: structured zero stopovers
	// or the literal word in the title. An unknown is assumed nonstop when
	// the strict filter is off, and fails the filter when it is on.
	var nonstop, known bool
	if raw.Stops != nil {
		nonstop, known = *raw.Stops == 0, true
	} else {
		nonstop, known = extract.Nonstop(raw.Title)
	}
	if !known && !cfg.Filters.NonstopOnly {
		nonstop = true
	}
	if cfg.Filters.NonstopOnly && !(known && nonstop) {
		return l, "nonstop_only"
	}
	l.Nonstop = nonstop

	if raw.Baggage != nil {
		l.BaggageIncluded = *raw.Baggage
	}

	return l, ""
}
