package httpapi

import (
	"log/slog"
	"sync/atomic"

	"dealhunt-engine/internal/fetch"
)

type Deps struct {
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	Fetchers    []fetch.Fetcher
	Cache       *fetch.Cache
	Log         *slog.Logger
}
