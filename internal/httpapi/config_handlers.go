package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"dealhunt-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value
	UserCfgPath string
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.CfgVal.Load().(config.Config))
}

// Put replaces the whole config. The settings surface sends the full struct
// back, so no merge semantics are needed.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "bad config json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.SaveAtomic(h.UserCfgPath, cfg); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	h.CfgVal.Store(cfg)
	writeJSON(w, cfg)
}
