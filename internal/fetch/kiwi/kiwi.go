// Package kiwi queries the Kiwi Tequila search API. Unlike the scraped
// sources it returns structured price, destination, duration and stopover
// data, so its listings skip most of the text extraction downstream.
package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dealhunt-engine/internal/domain"
	"dealhunt-engine/internal/fetch/util"
)

const defaultBaseURL = "https://api.tequila.kiwi.com"

type Config struct {
	BaseURL string
	APIKey  string // empty: the source contributes nothing, by contract

	Origin       string // city cluster, default LON
	LeadDays     int    // search window opens this many days out
	WindowDays   int    // search window length
	NightsMin    int
	NightsMax    int
	MaxStopovers int
	MaxItems     int
	Limiter      *util.HostLimiter
}

type Client struct {
	cfg Config
	hc  *http.Client
	now func() time.Time
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Origin == "" {
		cfg.Origin = "LON"
	}
	if cfg.LeadDays <= 0 {
		cfg.LeadDays = 21
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 30
	}
	if cfg.NightsMin <= 0 {
		cfg.NightsMin = 4
	}
	if cfg.NightsMax < cfg.NightsMin {
		cfg.NightsMax = cfg.NightsMin + 4
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 40
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: 20 * time.Second},
		now: time.Now,
	}
}

func (c *Client) Name() string { return "kiwi" }

type searchResponse struct {
	Data []struct {
		FlyTo    string  `json:"flyTo"`
		CityTo   string  `json:"cityTo"`
		Price    float64 `json:"price"`
		DeepLink string  `json:"deep_link"`
		Duration struct {
			Departure int `json:"departure"` // seconds
		} `json:"duration"`
		Route []struct {
			Return int `json:"return"` // 0 = outbound leg
		} `json:"route"`
		BagsPrice map[string]float64 `json:"bags_price"`
	} `json:"data"`
}

func (c *Client) Fetch(ctx context.Context) ([]domain.RawListing, error) {
	if c.cfg.APIKey == "" {
		// missing credential is "this source contributes nothing", not a failure
		return nil, nil
	}

	from := c.now().AddDate(0, 0, c.cfg.LeadDays)
	to := from.AddDate(0, 0, c.cfg.WindowDays)

	q := url.Values{}
	q.Set("fly_from", c.cfg.Origin)
	q.Set("date_from", from.Format("02/01/2006"))
	q.Set("date_to", to.Format("02/01/2006"))
	q.Set("nights_in_dst_from", strconv.Itoa(c.cfg.NightsMin))
	q.Set("nights_in_dst_to", strconv.Itoa(c.cfg.NightsMax))
	q.Set("max_stopovers", strconv.Itoa(c.cfg.MaxStopovers))
	q.Set("curr", "GBP")
	q.Set("adults", "2")
	q.Set("children", "2")
	q.Set("limit", strconv.Itoa(c.cfg.MaxItems))

	searchURL := c.cfg.BaseURL + "/v2/search?" + q.Encode()
	if c.cfg.Limiter != nil {
		if err := c.cfg.Limiter.WaitURL(ctx, searchURL); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("User-Agent", util.UserAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kiwi search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("kiwi search status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("kiwi decode response: %w", err)
	}

	seen := map[string]bool{}
	var out []domain.RawListing
	for _, d := range sr.Data {
		if len(out) >= c.cfg.MaxItems {
			break
		}
		if d.DeepLink == "" || d.FlyTo == "" {
			continue
		}
		key := util.CanonicalURL(d.DeepLink)
		if seen[key] {
			continue
		}
		seen[key] = true

		price := d.Price
		hours := float64(d.Duration.Departure) / 3600
		stops := 0
		for _, leg := range d.Route {
			if leg.Return == 0 {
				stops++
			}
		}
		if stops > 0 {
			stops-- // legs to stopovers
		}
		baggage := len(d.BagsPrice) > 0 && d.BagsPrice["1"] == 0

		out = append(out, domain.RawListing{
			Source:   "kiwi",
			Title:    fmt.Sprintf("%s (%s) from London, £%.0f return", d.CityTo, d.FlyTo, d.Price),
			URL:      d.DeepLink,
			Price:    &price,
			DestCode: d.FlyTo,
			Hours:    &hours,
			Stops:    &stops,
			Baggage:  &baggage,
		})
	}
	return out, nil
}
