// Package telemetry counts what people do with the ledger and exposes it to Prometheus.
package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DaanHessen/smallheath/internal/persona"
)

// Metrics is registered on its own registry. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	personaSwitches *prometheus.CounterVec
	stealthToggles  *prometheus.CounterVec
	ledgerMutations *prometheus.CounterVec
	navigations     *prometheus.CounterVec
	totalBottles    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		personaSwitches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smallheath",
				Name:      "persona_switches_total",
				Help:      "Persona changes, by the persona switched to",
			},
			[]string{"persona"},
		),
		stealthToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smallheath",
				Name:      "stealth_toggles_total",
				Help:      "Stealth mode toggles, by resulting state",
			},
			[]string{"enabled"},
		),
		ledgerMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smallheath",
				Name:      "ledger_mutations_total",
				Help:      "Inventory changes, by operation",
			},
			[]string{"op"},
		),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "smallheath",
				Name:      "navigations_total",
				Help:      "Completed section navigations, by destination",
			},
			[]string{"section"},
		),
		totalBottles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smallheath",
			Name:      "inventory_bottles",
			Help:      "Bottles currently on the ledger",
		}),
	}
	m.registry.MustRegister(m.personaSwitches, m.stealthToggles, m.ledgerMutations, m.navigations, m.totalBottles)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) PersonaSwitched(p string) {
	if m == nil {
		return
	}
	m.personaSwitches.WithLabelValues(p).Inc()
}

func (m *Metrics) StealthToggled(on bool) {
	if m == nil {
		return
	}
	m.stealthToggles.WithLabelValues(strconv.FormatBool(on)).Inc()
}

// LedgerMutation counts op ("add", "update", "delete", "reset") and refreshes the bottle gauge.
func (m *Metrics) LedgerMutation(op string, bottles int) {
	if m == nil {
		return
	}
	m.ledgerMutations.WithLabelValues(op).Inc()
	m.totalBottles.Set(float64(bottles))
}

func (m *Metrics) SetBottles(n int) {
	if m == nil {
		return
	}
	m.totalBottles.Set(float64(n))
}

func (m *Metrics) Navigated(section string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(section).Inc()
}

// Watch subscribes to s and counts persona and stealth changes. Call the
// returned func to stop.
func (m *Metrics) Watch(s *persona.Store) func() {
	if m == nil {
		return func() {}
	}
	last := s.Snapshot()
	return s.Subscribe(func(snap persona.Snapshot) {
		if snap.Persona != last.Persona {
			m.PersonaSwitched(string(snap.Persona))
		}
		if snap.Stealth != last.Stealth {
			m.StealthToggled(snap.Stealth)
		}
		last = snap
	})
}
