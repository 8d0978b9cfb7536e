package domain

// RawListing is one item as returned by a source, before any parsing.
// Pointer fields are set only when the source already supplies structured
// data (the priced API does; the scrape/feed sources never do).
type RawListing struct {
	Source string
	Title  string
	URL    string

	Price    *float64
	DestCode string
	Hours    *float64
	Stops    *int
	Baggage  *bool
}

// Listing is the canonical record the scoring pipeline operates on.
// Immutable after normalization; OutboundHours is guaranteed to be within
// the configured max-hours filter.
type Listing struct {
	Title     string
	SourceURL string
	Source    string

	DestCode string // empty when no code could be resolved from the text
	City     string
	Country  string
	Areas    []string

	OutboundHours   float64
	TransferMins    int
	Walkability     int
	Price           float64
	AccomNightly    float64
	Nonstop         bool
	BaggageIncluded bool
}

type ScoredListing struct {
	Listing
	Score float64
}
