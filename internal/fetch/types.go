package fetch

import (
	"context"

	"dealhunt-engine/internal/domain"
)

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RawListing, error)
}

// Warning records a per-source failure the run survived. A source outage is
// never fatal; the worst case is an empty aggregate.
type Warning struct {
	Source string `json:"source"`
	Err    string `json:"error"`
}
