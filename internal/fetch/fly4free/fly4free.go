// Package fly4free scrapes the Fly4Free London deals page. The page is a
// plain article list; anchors under article elements carry the deal title
// and post URL.
package fly4free

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"dealhunt-engine/internal/domain"
	"dealhunt-engine/internal/fetch/util"
)

const defaultPageURL = "https://www.fly4free.com/flight-deals/london/"

// minTitleLen drops nav anchors and "read more" stubs.
const minTitleLen = 9

type Config struct {
	PageURL  string
	MaxItems int
	Limiter  *util.HostLimiter
}

type Scraper struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) *Scraper {
	if cfg.PageURL == "" {
		cfg.PageURL = defaultPageURL
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 40
	}
	return &Scraper{
		cfg: cfg,
		hc:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *Scraper) Name() string { return "fly4free" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawListing, error) {
	if s.cfg.Limiter != nil {
		if err := s.cfg.Limiter.WaitURL(ctx, s.cfg.PageURL); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.PageURL, nil)
	req.Header.Set("User-Agent", util.UserAgent)

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fly4free get page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fly4free page status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("fly4free parse html: %w", err)
	}

	seen := map[string]bool{}
	var out []domain.RawListing
	doc.Find("article a[href]").Each(func(_ int, a *goquery.Selection) {
		if len(out) >= s.cfg.MaxItems {
			return
		}
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		title := util.CleanText(a.Text())

		if !strings.Contains(href, "/flight-deals/") && !strings.Contains(href, "/posts/") {
			return
		}
		if !londonRelevant(title, href) {
			return
		}
		if len(title) < minTitleLen {
			return
		}

		key := util.CanonicalURL(href)
		if seen[key] {
			return
		}
		seen[key] = true

		out = append(out, domain.RawListing{
			Source: "fly4free",
			Title:  title,
			URL:    href,
		})
	})

	return out, nil
}

func londonRelevant(title, href string) bool {
	if strings.Contains(title, "London") || strings.Contains(title, "from the UK") {
		return true
	}
	low := strings.ToLower(href)
	return strings.Contains(low, "london") || strings.Contains(low, "from-the-uk")
}
