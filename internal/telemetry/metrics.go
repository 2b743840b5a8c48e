// Package telemetry exposes Prometheus metrics for the simulation and the
// SSH server, served over an optional HTTP endpoint.
package telemetry

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality: the event label is a closed enum.
var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rocket_events_total",
		Help: "Simulation events by type",
	}, []string{"event"}) // Bounded: game_start, shot_fired, enemy_spawned, enemy_destroyed, rocket_destroyed

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rocket_tick_duration_seconds",
		Help:    "Time spent advancing the simulation per frame",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rocket_sessions_active",
		Help: "Currently connected play sessions",
	})

	gamesPlayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rocket_games_played_total",
		Help: "Completed runs",
	})
)

// RecordEvent increments the counter for a named simulation event.
func RecordEvent(event string) {
	eventsTotal.WithLabelValues(event).Inc()
}

// RecordTick records how long one simulation step took.
func RecordTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// SessionOpened increments the active session gauge.
func SessionOpened() {
	sessionsActive.Inc()
}

// SessionClosed decrements the active session gauge.
func SessionClosed() {
	sessionsActive.Dec()
}

// GamePlayed counts a completed run.
func GamePlayed() {
	gamesPlayed.Inc()
}

// StartServer serves /metrics and /healthz on addr in a background
// goroutine. Bind to localhost unless the deployment fronts it with
// something that restricts access.
func StartServer(addr string, logger *log.Logger) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
}
