// Package secretflying reads the SecretFlying London syndication feed.
package secretflying

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"dealhunt-engine/internal/domain"
	"dealhunt-engine/internal/fetch/util"
)

const defaultFeedURL = "https://www.secretflying.com/london/feed/"

// keywords gate feed entries to London/UK departures. The London feed mostly
// self-selects, but syndicated extras slip in.
var keywords = []string{"london", "from the uk", "united kingdom"}

type Config struct {
	FeedURL  string
	MaxItems int
	Limiter  *util.HostLimiter
}

type Feed struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) *Feed {
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaultFeedURL
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 40
	}
	return &Feed{
		cfg: cfg,
		hc:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (f *Feed) Name() string { return "secretflying" }

func (f *Feed) Fetch(ctx context.Context) ([]domain.RawListing, error) {
	if f.cfg.Limiter != nil {
		if err := f.cfg.Limiter.WaitURL(ctx, f.cfg.FeedURL); err != nil {
			return nil, err
		}
	}

	fp := gofeed.NewParser()
	fp.Client = f.hc
	fp.UserAgent = util.UserAgent

	parsed, err := fp.ParseURLWithContext(f.cfg.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("secretflying parse feed: %w", err)
	}

	seen := map[string]bool{}
	var out []domain.RawListing
	for _, entry := range parsed.Items {
		if len(out) >= f.cfg.MaxItems {
			break
		}
		link := entry.Link
		if link == "" && strings.HasPrefix(entry.GUID, "http") {
			link = entry.GUID
		}
		title := util.CleanText(entry.Title)
		if link == "" || title == "" {
			continue
		}
		if !relevantTitle(title) {
			continue
		}

		key := util.CanonicalURL(link)
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, domain.RawListing{
			Source: "secretflying",
			Title:  title,
			URL:    link,
		})
	}
	return out, nil
}

func relevantTitle(title string) bool {
	low := strings.ToLower(title)
	for _, k := range keywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}
