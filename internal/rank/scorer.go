package rank

import (
	"math"

	"dealhunt-engine/internal/config"
	"dealhunt-engine/internal/domain"
)

// Score applies the weighted desirability formula. Only relative ordering
// between listings matters, so the result is deliberately unclamped and may
// go negative or exceed 100.
func Score(l domain.Listing, w config.Scoring) float64 {
	score := 100.0
	score -= (l.Price / 10) * w.PriceWeight
	score -= (l.AccomNightly / 10) * w.AccomWeight
	score -= float64(l.TransferMins) * w.TransferPenalty
	score -= l.OutboundHours * w.HourPenalty
	if l.Nonstop {
		score += w.NonstopBonus
	} else {
		score -= w.StopPenalty
	}
	score += float64(l.Walkability) * w.WalkBonus
	if l.BaggageIncluded {
		score += w.BaggageBonus
	}
	return math.Round(score*100) / 100
}
