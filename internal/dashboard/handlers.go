package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/logo"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	brand.Stats
	Logos      int `json:"logos"`
	LoadErrors int `json:"load_errors"`
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	state := d.State()
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:      state.Stats(),
		Logos:      len(state.Logos()),
		LoadErrors: len(state.Errors()),
	})
}

func (d *Dashboard) handleLogos(w http.ResponseWriter, r *http.Request) {
	logos := d.State().Logos()
	if logos == nil {
		logos = []logo.Display{}
	}
	writeJSON(w, http.StatusOK, logos)
}

func (d *Dashboard) handleColorsText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(d.State().BrandColorsText()))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
