// Package metrics records observations as Prometheus series and pushes them to a
// Pushgateway once the run is over.
package metrics

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/vietddude/relaywatch/internal/core/domain"
)

// Config holds Pushgateway settings. An empty URL disables pushing.
type Config struct {
	Pushgateway string `yaml:"pushgateway"`
	Job         string `yaml:"job"`
}

// Metrics is a control.Sink backed by its own registry.
type Metrics struct {
	registry *prometheus.Registry

	// Observations counts observations per category, check and severity
	Observations *prometheus.CounterVec

	// Balance tracks the last seen balance of a configured denomination
	Balance *prometheus.GaugeVec

	// ClientExpiry tracks the seconds left before a client expires
	ClientExpiry *prometheus.GaugeVec

	// UnrelayedBacklog is 1 while a path has unrelayed packets
	UnrelayedBacklog *prometheus.GaugeVec

	// LastRun is the unix time the run finished
	LastRun prometheus.Gauge
}

// New creates a Metrics with a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Observations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relaywatch_observations_total",
				Help: "Total number of classified observations",
			},
			[]string{"category", "check", "severity"},
		),
		Balance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relaywatch_balance_amount",
				Help: "Relayer balance in the token's smallest unit",
			},
			[]string{"category", "chain", "denom"},
		),
		ClientExpiry: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relaywatch_client_expiry_seconds",
				Help: "Seconds until a light client expires",
			},
			[]string{"category", "path", "client", "chain"},
		),
		UnrelayedBacklog: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relaywatch_unrelayed_backlog",
				Help: "Whether a path has unrelayed packets",
			},
			[]string{"category", "path"},
		),
		LastRun: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "relaywatch_last_run_timestamp_seconds",
				Help: "Unix time of the last completed run",
			},
		),
	}
}

// Registry returns the registry the metrics are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Report implements control.Sink.
func (m *Metrics) Report(obs domain.Observation) {
	severity := "undetermined"
	if obs.Determined() {
		severity = obs.Severity.String()
	}
	m.Observations.WithLabelValues(obs.Category, obs.Kind.String(), severity).Inc()

	if !obs.Determined() {
		return
	}

	switch obs.Kind {
	case domain.CheckBalance:
		amount, _ := new(big.Float).SetInt(obs.Coin.Amount).Float64()
		m.Balance.WithLabelValues(obs.Category, obs.Chain, obs.Coin.Denom).Set(amount)
	case domain.CheckExpiration:
		m.ClientExpiry.WithLabelValues(obs.Category, obs.Path, obs.Client.ClientID, obs.Client.ChainID).Set(obs.Remaining.Seconds())
	case domain.CheckUnrelayed:
		backlog := 0.0
		if obs.Backlog {
			backlog = 1
		}
		m.UnrelayedBacklog.WithLabelValues(obs.Category, obs.Path).Set(backlog)
	}
}

// Push stamps the run time and replaces the job's metrics on the Pushgateway.
func (m *Metrics) Push(ctx context.Context, cfg Config, finished time.Time) error {
	if cfg.Pushgateway == "" {
		return nil
	}
	job := cfg.Job
	if job == "" {
		job = "relaywatch"
	}

	m.LastRun.Set(float64(finished.Unix()))

	if err := push.New(cfg.Pushgateway, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
