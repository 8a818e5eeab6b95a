package breaks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/hydromate/content"
)

type fakeKV struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func TestHistoryStore_AppendNewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newFakeKV(), "test_history")

	first, err := h.Append(ctx, content.BreakWater, true)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := h.Append(ctx, content.BreakStretch, false)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries := h.History(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestHistoryStore_CapsAtLimit(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newFakeKV(), "test_history")

	var newest Entry
	for i := 0; i < historyLimit+5; i++ {
		var err error
		newest, err = h.Append(ctx, content.BreakWater, false)
		require.NoError(t, err)
	}

	entries := h.History(ctx)
	assert.Len(t, entries, historyLimit)
	assert.Equal(t, newest.ID, entries[0].ID, "newest entry survives the cap")
}

func TestHistoryStore_Complete(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newFakeKV(), "test_history")

	entry, err := h.Append(ctx, content.BreakWater, true)
	require.NoError(t, err)

	completed, err := h.Complete(ctx, entry.ID, 150)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.Equal(t, 150, completed.WaterLogged)

	entries := h.History(ctx)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)
	assert.Equal(t, 150, entries[0].WaterLogged)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		missing, err := h.Complete(ctx, "nope", 0)
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})
}

func TestHistoryStore_CorruptDataReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.data["test_history"] = []byte(`{definitely not a list`)
	h := NewHistoryStore(kv, "test_history")

	assert.Empty(t, h.History(ctx))
}

func TestHistoryStore_Today(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newFakeKV(), "test_history")

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	clock := base
	h.now = func() time.Time { return clock }

	// Yesterday's break must not count.
	clock = base.Add(-24 * time.Hour)
	_, err := h.Append(ctx, content.BreakWater, false)
	require.NoError(t, err)

	clock = base
	water, err := h.Append(ctx, content.BreakWater, true)
	require.NoError(t, err)
	_, err = h.Append(ctx, content.BreakStretch, true)
	require.NoError(t, err)
	_, err = h.Complete(ctx, water.ID, 200)
	require.NoError(t, err)

	stats := h.Today(ctx)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.ByCategory[content.BreakWater])
	assert.Equal(t, 1, stats.ByCategory[content.BreakStretch])
	assert.Equal(t, 200, stats.WaterLogged)
}

func TestMergeSettings_Breaks(t *testing.T) {
	defaults := DefaultSettings()

	t.Run("empty keeps defaults", func(t *testing.T) {
		merged, err := MergeSettings(nil, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, merged)
	})

	t.Run("partial overrides its fields", func(t *testing.T) {
		raw := []byte(fmt.Sprintf(`{"enabledCategories":["%s"],"intervalMinutes":{"water":20}}`, content.BreakWater))
		merged, err := MergeSettings(raw, defaults)
		require.NoError(t, err)

		assert.Equal(t, []content.BreakCategory{content.BreakWater}, merged.EnabledCategories)
		assert.Equal(t, 20, merged.Interval(content.BreakWater))
		assert.True(t, merged.Enabled)
		assert.Equal(t, 45, merged.Interval(content.BreakStretch))
	})

	t.Run("defaults map is not mutated", func(t *testing.T) {
		_, err := MergeSettings([]byte(`{"intervalMinutes":{"water":5}}`), defaults)
		require.NoError(t, err)
		assert.Equal(t, 30, defaults.Interval(content.BreakWater))
	})

	t.Run("corrupt returns error", func(t *testing.T) {
		_, err := MergeSettings([]byte(`{broken`), defaults)
		assert.Error(t, err)
	})
}

func TestSettings_Validate_Breaks(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.IntervalMinutes[content.BreakWater] = 0
	assert.Error(t, s.Validate())
}
