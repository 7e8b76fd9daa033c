package dashboard

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/brandkit/internal/brand"
	"github.com/ziadkadry99/brandkit/internal/logging"
)

// Dashboard serves the preview API over the current brand state and pushes
// reload notices to open pages.
type Dashboard struct {
	mu    sync.RWMutex
	state *brand.State
	hub   *Hub
	log   *zap.Logger
}

// New creates a Dashboard over state.
func New(state *brand.State, logger *zap.Logger) *Dashboard {
	log := logging.OrNop(logger)
	return &Dashboard{state: state, hub: NewHub(log), log: log}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/api/stats", d.handleStats)
	r.Get("/api/logos", d.handleLogos)
	r.Get("/api/colors.txt", d.handleColorsText)
	r.Get("/ws/reload", d.handleReload)
}

// State returns the state currently served.
func (d *Dashboard) State() *brand.State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// SetState swaps in a rebuilt state and tells connected pages to reload.
func (d *Dashboard) SetState(state *brand.State) {
	d.mu.Lock()
	d.state = state
	d.mu.Unlock()

	n := d.hub.Broadcast(ReloadMessage)
	d.log.Info("state replaced", zap.Int("notified", n))
}

// Close disconnects every live-reload client.
func (d *Dashboard) Close() { d.hub.Close() }
