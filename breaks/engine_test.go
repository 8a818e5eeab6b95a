package breaks

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/hydromate/content"
	"github.com/hrygo/hydromate/metrics"
	"github.com/hrygo/hydromate/trigger"
)

func newTestEngine(t *testing.T) (*Engine, *fakeKV, *trigger.MemoryScheduler) {
	t.Helper()
	kv := newFakeKV()
	triggers := trigger.NewMemoryScheduler()
	selector := content.NewSelector(content.Config{Rand: rand.New(rand.NewSource(1))})
	return NewEngine(kv, triggers, selector, nil), kv, triggers
}

func onlyWater(t *testing.T, e *Engine, interval int) {
	t.Helper()
	_, err := e.SaveSettings(context.Background(), SettingsPatch{
		EnabledCategories: []content.BreakCategory{content.BreakWater},
		IntervalMinutes:   map[content.BreakCategory]int{content.BreakWater: interval},
	})
	require.NoError(t, err)
}

func TestScheduleSession_WaterOffsets(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	onlyWater(t, e, 15)

	ids, err := e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	regs, err := triggers.List(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 3)

	offsets := make([]time.Duration, len(regs))
	for i, reg := range regs {
		assert.Equal(t, trigger.KindBreak, reg.Payload.Kind)
		assert.Equal(t, string(content.BreakWater), reg.Payload.Category)
		assert.Equal(t, trigger.SpecAfter, reg.Spec.Type)
		offsets[i] = reg.Spec.After
	}
	assert.Equal(t, []time.Duration{15 * time.Minute, 30 * time.Minute, 45 * time.Minute}, offsets)
}

func TestScheduleSession_ExcludesSessionBounds(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	onlyWater(t, e, 30)

	// An interval equal to the duration leaves no offset strictly inside.
	_, err := e.ScheduleSession(ctx, 30, content.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, 0, triggers.Len())
}

func TestScheduleSession_SecondStartLeavesNoOrphans(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	onlyWater(t, e, 15)

	first, err := e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := e.ScheduleSession(ctx, 90, content.LangEnglish)
	require.NoError(t, err)
	require.Len(t, second, 5)

	assert.Equal(t, 5, triggers.Len())
	for _, id := range first {
		assert.Contains(t, triggers.Cancelled, id, "orphan from first session")
	}
}

func TestScheduleSession_MultipleCategoriesInterleave(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)

	// Defaults: water/30, stretch/45, eyes/20 over 60 minutes →
	// water {30}, stretch {45}, eyes {20,40}.
	ids, err := e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	assert.Len(t, ids, 4)

	counts := make(map[string]int)
	regs, err := triggers.List(ctx)
	require.NoError(t, err)
	for _, reg := range regs {
		counts[reg.Payload.Category]++
	}
	assert.Equal(t, 1, counts[string(content.BreakWater)])
	assert.Equal(t, 1, counts[string(content.BreakStretch)])
	assert.Equal(t, 2, counts[string(content.BreakEyes)])
}

func TestScheduleSession_DisabledRegistersNothing(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	enabled := false
	_, err := e.SaveSettings(ctx, SettingsPatch{Enabled: &enabled})
	require.NoError(t, err)

	ids, err := e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	assert.Nil(t, ids)
	assert.Equal(t, 0, triggers.Len())
}

func TestScheduleSession_InvalidDuration(t *testing.T) {
	e, _, _ := newTestEngine(t)
	_, err := e.ScheduleSession(context.Background(), 0, content.LangEnglish)
	assert.Error(t, err)
}

func TestScheduleSession_LeavesOtherKindsAlone(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	onlyWater(t, e, 15)

	_, err := triggers.Schedule(ctx, trigger.Daily(9, 0), trigger.Payload{Kind: trigger.KindReminder})
	require.NoError(t, err)

	_, err = e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	_, err = e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)

	regs, err := triggers.List(ctx)
	require.NoError(t, err)
	reminders := 0
	for _, reg := range regs {
		if reg.Payload.Kind == trigger.KindReminder {
			reminders++
		}
	}
	assert.Equal(t, 1, reminders, "rescheduling breaks must not touch reminder triggers")
}

func TestSend_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)

	id, err := e.Send(ctx, content.BreakWater, content.LangEnglish, true)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, triggers.Len())

	entries := e.History().History(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, content.BreakWater, entries[0].Category)
	assert.True(t, entries[0].DuringFocus)
	assert.False(t, entries[0].Completed)
}

func TestSend_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	e, _, triggers := newTestEngine(t)
	enabled := false
	_, err := e.SaveSettings(ctx, SettingsPatch{Enabled: &enabled})
	require.NoError(t, err)

	id, err := e.Send(ctx, content.BreakWater, content.LangEnglish, false)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, 0, triggers.Len())
}

func TestSuggestedBreak_UsesStoredHistory(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	got := e.SuggestedBreak(ctx, 25, content.LangEnglish)
	require.NotNil(t, got)
	assert.Equal(t, content.BreakWater, got.Category)

	// A just-sent water break pushes the suggestion down the priority list.
	_, err := e.Send(ctx, content.BreakWater, content.LangEnglish, false)
	require.NoError(t, err)

	got = e.SuggestedBreak(ctx, 25, content.LangEnglish)
	require.NotNil(t, got)
	assert.Equal(t, content.BreakEyes, got.Category)
}

func TestCompleteBreak_FlowsThroughStats(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	id, err := e.Send(ctx, content.BreakWater, content.LangEnglish, false)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries := e.History().History(ctx)
	require.Len(t, entries, 1)
	require.NoError(t, e.CompleteBreak(ctx, entries[0].ID, 150))

	stats := e.TodayStats(ctx)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 150, stats.WaterLogged)
}

func breakCounterTotal(t *testing.T, exporter *metrics.Exporter, name string) float64 {
	t.Helper()
	families, err := exporter.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestEngine_ScheduleSession_RecordsScheduledBreaks(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)
	exporter := metrics.NewExporter(metrics.Config{})
	e.exporter = exporter
	onlyWater(t, e, 15)

	ids, err := e.ScheduleSession(ctx, 60, content.LangEnglish)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	assert.Equal(t, float64(len(ids)), breakCounterTotal(t, exporter, "hydromate_breaks_scheduled_total"))
}

func TestEngine_BreakLifecycle_RecordsSuggestionAndCompletion(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)
	exporter := metrics.NewExporter(metrics.Config{})
	e.exporter = exporter

	suggestion := e.SuggestedBreak(ctx, 45, content.LangEnglish)
	require.NotNil(t, suggestion)

	id, err := e.Send(ctx, suggestion.Category, content.LangEnglish, true)
	require.NoError(t, err)
	require.NoError(t, e.CompleteBreak(ctx, id, 0))

	assert.Equal(t, 1.0, breakCounterTotal(t, exporter, "hydromate_breaks_suggestions_total"))
	assert.Equal(t, 1.0, breakCounterTotal(t, exporter, "hydromate_breaks_completed_total"))
}
