package domain

// Deal is the tuple handed to the presentation layer: one ranked listing
// plus its generated deep links.
type Deal struct {
	Score         float64  `json:"score"`
	Title         string   `json:"title"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Price         float64  `json:"price"`
	OutboundHours float64  `json:"outboundHours"`
	TransferMins  int      `json:"transferMins"`
	Walkability   int      `json:"walkability"`
	Areas         []string `json:"areas"`
	FlightsLink   string   `json:"flightsLink"`
	AccomLink     string   `json:"accomLink"`
	SourceURL     string   `json:"sourceUrl"`
}
