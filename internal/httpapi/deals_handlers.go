package httpapi

import (
	"net/http"

	"dealhunt-engine/internal/config"
	"dealhunt-engine/internal/pipeline"
)

type DealsHandler struct {
	Deps
}

// List runs the pipeline against the (cached) aggregate and returns the
// ranked deals. An empty deals array with warnings is a valid answer, not an
// error; the presentation layer renders it as "no results, relax filters".
func (h DealsHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)

	res := pipeline.Run(r.Context(), pipeline.Deps{
		Fetchers: h.Fetchers,
		Cache:    h.Cache,
		Cfg:      cfg,
		Log:      h.Log,
	})
	writeJSON(w, res)
}
