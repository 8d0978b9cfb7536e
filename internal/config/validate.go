package config

import (
	"errors"
	"fmt"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}

	checkWeight := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("scoring.%s must be >= 0", name))
		}
	}
	checkWeight("price_weight", cfg.Scoring.PriceWeight)
	checkWeight("accom_weight", cfg.Scoring.AccomWeight)
	checkWeight("nonstop_bonus", cfg.Scoring.NonstopBonus)
	checkWeight("stop_penalty", cfg.Scoring.StopPenalty)
	checkWeight("hour_penalty", cfg.Scoring.HourPenalty)
	checkWeight("transfer_penalty", cfg.Scoring.TransferPenalty)
	checkWeight("walk_bonus", cfg.Scoring.WalkBonus)
	checkWeight("baggage_bonus", cfg.Scoring.BaggageBonus)

	if cfg.Filters.MaxHours <= 0 {
		errs = append(errs, "filters.max_hours must be > 0")
	}
	if cfg.Filters.ResultCount <= 0 {
		errs = append(errs, "filters.result_count must be > 0")
	}

	if cfg.Defaults.Price < 0 {
		errs = append(errs, "defaults.price must be >= 0")
	}
	if cfg.Defaults.AccomNightly < 0 {
		errs = append(errs, "defaults.accom_nightly must be >= 0")
	}
	if cfg.Defaults.TransferMins < 0 {
		errs = append(errs, "defaults.transfer_mins must be >= 0")
	}
	if cfg.Defaults.Walkability < 0 || cfg.Defaults.Walkability > 5 {
		errs = append(errs, "defaults.walkability must be 0..5")
	}

	if cfg.Travel.Nights <= 0 {
		errs = append(errs, "travel.nights must be > 0")
	}
	if cfg.Travel.LeadDays < 0 {
		errs = append(errs, "travel.lead_days must be >= 0")
	}

	if cfg.Fetch.RequestsPerSec < 0 {
		errs = append(errs, "fetch.requests_per_sec must be >= 0")
	}
	if cfg.Sources.Kiwi.MaxStopovers < 0 {
		errs = append(errs, "sources.kiwi.max_stopovers must be >= 0")
	}

	if !cfg.Sources.Fly4Free.Enabled && !cfg.Sources.SecretFlying.Enabled && !cfg.Sources.Kiwi.Enabled {
		errs = append(errs, "no sources enabled: enable fly4free, secretflying, or kiwi")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
