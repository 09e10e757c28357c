package main

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// roomMetrics counts tick and input activity. Written from the tick and
// read pumps, read from the HTTP handler, so everything is atomic.
type roomMetrics struct {
	players        atomic.Int64
	tickCount      atomic.Int64
	totalTickNs    atomic.Int64
	inputsAccepted atomic.Int64
	inputsDropped  atomic.Int64
	inputsRejected atomic.Int64
}

func (m *roomMetrics) addTick(ns int64) {
	m.tickCount.Add(1)
	m.totalTickNs.Add(ns)
}

func (m *roomMetrics) incAccepted()  { m.inputsAccepted.Add(1) }
func (m *roomMetrics) incDiscarded() { m.inputsDropped.Add(1) }
func (m *roomMetrics) incRejected()  { m.inputsRejected.Add(1) }

func (m *roomMetrics) snapshot() map[string]any {
	ticks := m.tickCount.Load()
	total := m.totalTickNs.Load()
	var avgMs float64
	if ticks > 0 {
		avgMs = float64(total) / float64(ticks) / 1e6
	}
	return map[string]any{
		"players":         m.players.Load(),
		"tick_count":      ticks,
		"avg_tick_ms":     avgMs,
		"inputs_accepted": m.inputsAccepted.Load(),
		"inputs_dropped":  m.inputsDropped.Load(),
		"inputs_rejected": m.inputsRejected.Load(),
	}
}

func handleMetrics(r *room) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(r.metrics.snapshot())
	}
}
