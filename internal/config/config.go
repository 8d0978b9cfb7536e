package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scoring holds every tunable coefficient of the desirability formula.
// Price and accom weights apply per £10.
type Scoring struct {
	PriceWeight     float64 `yaml:"price_weight" json:"price_weight"`
	AccomWeight     float64 `yaml:"accom_weight" json:"accom_weight"`
	NonstopBonus    float64 `yaml:"nonstop_bonus" json:"nonstop_bonus"`
	StopPenalty     float64 `yaml:"stop_penalty" json:"stop_penalty"`
	HourPenalty     float64 `yaml:"hour_penalty" json:"hour_penalty"`
	TransferPenalty float64 `yaml:"transfer_penalty" json:"transfer_penalty"`
	WalkBonus       float64 `yaml:"walk_bonus" json:"walk_bonus"`
	BaggageBonus    float64 `yaml:"baggage_bonus" json:"baggage_bonus"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Scoring Scoring `yaml:"scoring" json:"scoring"`

	Filters struct {
		MaxHours    float64 `yaml:"max_hours" json:"max_hours"`
		NonstopOnly bool    `yaml:"nonstop_only" json:"nonstop_only"`
		ResultCount int     `yaml:"result_count" json:"result_count"`
	} `yaml:"filters" json:"filters"`

	// Defaults are the values used when extraction misses. They are
	// configuration, not invariants.
	Defaults struct {
		Price        float64 `yaml:"price" json:"price"`
		AccomNightly float64 `yaml:"accom_nightly" json:"accom_nightly"`
		TransferMins int     `yaml:"transfer_mins" json:"transfer_mins"`
		Walkability  int     `yaml:"walkability" json:"walkability"`
	} `yaml:"defaults" json:"defaults"`

	// Travel is the window policy for generated booking links.
	Travel struct {
		LeadDays int `yaml:"lead_days" json:"lead_days"`
		Nights   int `yaml:"nights" json:"nights"`
	} `yaml:"travel" json:"travel"`

	Fetch struct {
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		CacheMinutes   int     `yaml:"cache_minutes" json:"cache_minutes"`
		MaxPerSource   int     `yaml:"max_per_source" json:"max_per_source"`
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
	} `yaml:"fetch" json:"fetch"`

	Sources struct {
		Fly4Free struct {
			Enabled bool   `yaml:"enabled" json:"enabled"`
			PageURL string `yaml:"page_url" json:"page_url"`
		} `yaml:"fly4free" json:"fly4free"`
		SecretFlying struct {
			Enabled bool   `yaml:"enabled" json:"enabled"`
			FeedURL string `yaml:"feed_url" json:"feed_url"`
		} `yaml:"secretflying" json:"secretflying"`
		Kiwi struct {
			Enabled        bool   `yaml:"enabled" json:"enabled"`
			KeyringAccount string `yaml:"keyring_account" json:"keyring_account"`
			MaxStopovers   int    `yaml:"max_stopovers" json:"max_stopovers"`
		} `yaml:"kiwi" json:"kiwi"`
	} `yaml:"sources" json:"sources"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) FetchTimeout() time.Duration {
	if c.Fetch.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	if c.Fetch.CacheMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Fetch.CacheMinutes) * time.Minute
}
