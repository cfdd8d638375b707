package telemetry

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jask/navsync/internal/config"
	"github.com/jask/navsync/navigation"
)

// Metrics is a navigation.Observer recording handler events as prometheus
// metrics on a private registry. A disabled Metrics records nothing.
type Metrics struct {
	config config.MetricsConfig

	screensCreated      *prometheus.CounterVec
	transitions         *prometheus.CounterVec
	reverseSyncs        *prometheus.CounterVec
	presentationFailure *prometheus.CounterVec

	registry *prometheus.Registry
}

var _ navigation.Observer = (*Metrics)(nil)

func NewMetrics(cfg config.MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{config: cfg}, nil
	}
	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,
		screensCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "screens_created_total",
				Help:      "Screens built by a screen factory",
			},
			[]string{"kind"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Container transitions applied by sync handlers",
			},
			[]string{"kind", "op", "animated"},
		),
		reverseSyncs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reverse_syncs_total",
				Help:      "User-initiated navigation reported back to the store",
			},
			[]string{"kind"},
		),
		presentationFailure: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "presentation_failures_total",
				Help:      "Modal presentations that could not be completed",
			},
			[]string{"kind", "reason"},
		),
	}

	for _, c := range []prometheus.Collector{m.screensCreated, m.transitions, m.reverseSyncs, m.presentationFailure} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ScreenCreated(kind navigation.Kind) {
	if m.screensCreated == nil {
		return
	}
	m.screensCreated.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) Transition(kind navigation.Kind, op string, animated bool) {
	if m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(string(kind), op, strconv.FormatBool(animated)).Inc()
}

func (m *Metrics) ReverseSync(kind navigation.Kind) {
	if m.reverseSyncs == nil {
		return
	}
	m.reverseSyncs.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) PresentationFailed(kind navigation.Kind, err error) {
	if m.presentationFailure == nil {
		return
	}
	reason := "other"
	if errors.Is(err, navigation.ErrNotAttached) {
		reason = "not_attached"
	}
	m.presentationFailure.WithLabelValues(string(kind), reason).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Serve exposes /metrics on the configured address until ctx is done.
func (m *Metrics) Serve(ctx context.Context) error {
	if !m.config.Enabled {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              m.config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
