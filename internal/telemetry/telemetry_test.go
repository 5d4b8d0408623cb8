package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/smallheath/internal/persona"
	"github.com/DaanHessen/smallheath/internal/store"
)

func TestWatchCountsChanges(t *testing.T) {
	ctx := context.Background()
	m := New()
	s := persona.Load(ctx, store.NewMemKV())
	stop := m.Watch(s)

	s.TogglePersona(ctx)
	s.TogglePersona(ctx)
	s.ToggleStealth(ctx)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.personaSwitches.WithLabelValues("luca")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.personaSwitches.WithLabelValues("thomas")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stealthToggles.WithLabelValues("true")))

	stop()
	s.ToggleStealth(ctx)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.stealthToggles.WithLabelValues("false")))
}

func TestLedgerAndNavigation(t *testing.T) {
	m := New()
	m.LedgerMutation("add", 130)
	m.LedgerMutation("add", 140)
	m.Navigated("map")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ledgerMutations.WithLabelValues("add")))
	assert.Equal(t, 140.0, testutil.ToFloat64(m.totalBottles))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.navigations.WithLabelValues("map")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PersonaSwitched("luca")
		m.StealthToggled(true)
		m.LedgerMutation("delete", 0)
		m.SetBottles(3)
		m.Navigated("home")
		m.Watch(persona.Load(context.Background(), store.NewMemKV()))()
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SetBottles(127)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "smallheath_inventory_bottles 127")
}
