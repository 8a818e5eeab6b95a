package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue gathers the registry and returns the value of the named
// counter for the given label pairs, or zero when no such series exists.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metric:
		for _, m := range family.GetMetric() {
			got := make(map[string]string, len(m.GetLabel()))
			for _, pair := range m.GetLabel() {
				got[pair.GetName()] = pair.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestExporter_RecordCounters(t *testing.T) {
	e := NewExporter(Config{})
	reg := e.Registry()

	t.Run("reminders scheduled by category", func(t *testing.T) {
		e.RecordReminderScheduled("base")
		e.RecordReminderScheduled("base")
		e.RecordReminderScheduled("adaptive")

		assert.Equal(t, 2.0, counterValue(t, reg, "hydromate_reminder_scheduled_total", map[string]string{"category": "base"}))
		assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_reminder_scheduled_total", map[string]string{"category": "adaptive"}))
	})

	t.Run("registration failures", func(t *testing.T) {
		e.RecordRegistrationFailure()
		e.RecordRegistrationFailure()

		assert.Equal(t, 2.0, counterValue(t, reg, "hydromate_reminder_registration_failures_total", nil))
	})

	t.Run("contextual sends by kind", func(t *testing.T) {
		e.RecordContextualSend("achievement")
		e.RecordContextualSend("streak")
		e.RecordContextualSend("streak")

		assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_reminder_contextual_sends_total", map[string]string{"kind": "achievement"}))
		assert.Equal(t, 2.0, counterValue(t, reg, "hydromate_reminder_contextual_sends_total", map[string]string{"kind": "streak"}))
	})

	t.Run("break counters by category", func(t *testing.T) {
		e.RecordBreakScheduled("water")
		e.RecordBreakSuggestion("eyes")
		e.RecordBreakCompleted("water")

		assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_breaks_scheduled_total", map[string]string{"category": "water"}))
		assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_breaks_suggestions_total", map[string]string{"category": "eyes"}))
		assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_breaks_completed_total", map[string]string{"category": "water"}))
	})
}

func TestExporter_NilReceiverIsNoop(t *testing.T) {
	var e *Exporter

	assert.NotPanics(t, func() {
		e.RecordReminderScheduled("base")
		e.RecordRegistrationFailure()
		e.RecordContextualSend("streak")
		e.RecordBreakScheduled("water")
		e.RecordBreakSuggestion("eyes")
		e.RecordBreakCompleted("water")
	})
}

func TestExporter_Handler(t *testing.T) {
	e := NewExporter(Config{})
	e.RecordReminderScheduled("base")
	e.RecordContextualSend("achievement")
	e.RecordBreakScheduled("water")

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	e.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "hydromate_reminder_scheduled_total")
	assert.Contains(t, body, "hydromate_reminder_contextual_sends_total")
	assert.Contains(t, body, "hydromate_breaks_scheduled_total")
}

func TestExporter_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewExporter(Config{Registry: reg})

	assert.Same(t, reg, e.Registry())

	e.RecordReminderScheduled("base")
	assert.Equal(t, 1.0, counterValue(t, reg, "hydromate_reminder_scheduled_total", map[string]string{"category": "base"}))
}
