package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"dealhunt-engine/internal/config"
	"dealhunt-engine/internal/fetch"
	"dealhunt-engine/internal/fetch/fly4free"
	"dealhunt-engine/internal/fetch/kiwi"
	"dealhunt-engine/internal/fetch/secretflying"
	"dealhunt-engine/internal/fetch/util"
	"dealhunt-engine/internal/httpapi"
	"dealhunt-engine/internal/pipeline"
	"dealhunt-engine/internal/secrets"
)

func main() {
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("DEALHUNT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	once := flag.Bool("once", false, "run one pipeline pass, print JSON to stdout, exit")
	flag.Parse()

	// Data dir: env if provided (the UI shell can pass one), else local.
	dataDir := os.Getenv("DEALHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fatal(logger, "data dir", err)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		fatal(logger, "config bootstrap", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		fatal(logger, "config load", err)
	}
	if err := config.Validate(cfg); err != nil {
		fatal(logger, "config validate", err)
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	limiter := util.NewHostLimiter(cfg.Fetch.RequestsPerSec, 2)
	fetchers := buildFetchers(cfg, limiter, logger)
	cache := fetch.NewCache(cfg.CacheTTL())

	if *once {
		res := pipeline.Run(context.Background(), pipeline.Deps{
			Fetchers: fetchers,
			Cfg:      cfg,
			Log:      logger,
		})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
		return
	}

	mux := httpapi.NewMux(httpapi.Deps{
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		Fetchers:    fetchers,
		Cache:       cache,
		Log:         logger,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(logger, "listen", err)
	}
	logger.Info("engine listening", "addr", "http://"+addr, "config", userCfgPath)

	srv := &http.Server{
		Handler:           httpapi.Cors(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	fatal(logger, "serve", srv.Serve(ln))
}

func buildFetchers(cfg config.Config, limiter *util.HostLimiter, logger *slog.Logger) []fetch.Fetcher {
	var fs []fetch.Fetcher

	if cfg.Sources.Fly4Free.Enabled {
		fs = append(fs, fly4free.New(fly4free.Config{
			PageURL:  cfg.Sources.Fly4Free.PageURL,
			MaxItems: cfg.Fetch.MaxPerSource,
			Limiter:  limiter,
		}))
	}
	if cfg.Sources.SecretFlying.Enabled {
		fs = append(fs, secretflying.New(secretflying.Config{
			FeedURL:  cfg.Sources.SecretFlying.FeedURL,
			MaxItems: cfg.Fetch.MaxPerSource,
			Limiter:  limiter,
		}))
	}
	if cfg.Sources.Kiwi.Enabled {
		key := secrets.TequilaAPIKey(cfg.Sources.Kiwi.KeyringAccount)
		if key == "" {
			logger.Info("kiwi credential absent; source will contribute nothing")
		}
		fs = append(fs, kiwi.New(kiwi.Config{
			APIKey:       key,
			LeadDays:     cfg.Travel.LeadDays,
			NightsMin:    cfg.Travel.Nights,
			NightsMax:    cfg.Travel.Nights,
			MaxStopovers: cfg.Sources.Kiwi.MaxStopovers,
			MaxItems:     cfg.Fetch.MaxPerSource,
			Limiter:      limiter,
		}))
	}
	return fs
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
