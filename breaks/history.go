package breaks

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/content"
)

// historyLimit caps the stored break history at the most recent entries,
// oldest evicted first.
const historyLimit = 100

// KV is the key-value storage capability the break engine depends on.
// Satisfied by *store.Store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Entry is one recorded break, created when a break reminder fires or is
// logged manually. Completed flips to true once the user acts on it; entries
// are never deleted individually, only evicted by the history cap.
type Entry struct {
	ID          string                `json:"id"`
	Category    content.BreakCategory `json:"category"`
	Timestamp   time.Time             `json:"timestamp"`
	DuringFocus bool                  `json:"duringFocus"`
	Completed   bool                  `json:"completed"`
	WaterLogged int                   `json:"waterLogged,omitempty"`
}

// TodayStats aggregates today's break activity from the capped history.
type TodayStats struct {
	Total       int                           `json:"total"`
	Completed   int                           `json:"completed"`
	ByCategory  map[content.BreakCategory]int `json:"byCategory"`
	WaterLogged int                           `json:"waterLogged"`
}

// HistoryStore persists break entries under a single key, newest first.
type HistoryStore struct {
	kv  KV
	key string
	now func() time.Time
}

// NewHistoryStore builds a history store over the given KV boundary.
func NewHistoryStore(kv KV, key string) *HistoryStore {
	return &HistoryStore{kv: kv, key: key, now: time.Now}
}

// History returns all stored entries, newest first. Absent or corrupt data
// yields an empty history, never an error; storage failures on read degrade
// the same way.
func (h *HistoryStore) History(ctx context.Context) []Entry {
	raw, err := h.kv.Get(ctx, h.key)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("break history corrupt, starting fresh", "key", h.key, "err", err)
		return nil
	}
	return entries
}

// Append records a new break at the head of the history and trims to the cap.
func (h *HistoryStore) Append(ctx context.Context, category content.BreakCategory, duringFocus bool) (Entry, error) {
	entry := Entry{
		ID:          uuid.NewString(),
		Category:    category,
		Timestamp:   h.now(),
		DuringFocus: duringFocus,
	}

	entries := append([]Entry{entry}, h.History(ctx)...)
	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	if err := h.save(ctx, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Complete marks the entry as acted upon, optionally recording logged water.
// Unknown IDs are a no-op and return a zero Entry.
func (h *HistoryStore) Complete(ctx context.Context, id string, waterLogged int) (Entry, error) {
	entries := h.History(ctx)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entries[i].Completed = true
		if waterLogged > 0 {
			entries[i].WaterLogged = waterLogged
		}
		if err := h.save(ctx, entries); err != nil {
			return Entry{}, err
		}
		return entries[i], nil
	}
	return Entry{}, nil
}

// Today aggregates statistics for entries stamped with today's date.
func (h *HistoryStore) Today(ctx context.Context) TodayStats {
	stats := TodayStats{ByCategory: map[content.BreakCategory]int{}}
	year, month, day := h.now().Date()
	for _, entry := range h.History(ctx) {
		y, m, d := entry.Timestamp.Date()
		if y != year || m != month || d != day {
			continue
		}
		stats.Total++
		stats.ByCategory[entry.Category]++
		if entry.Completed {
			stats.Completed++
		}
		stats.WaterLogged += entry.WaterLogged
	}
	return stats
}

func (h *HistoryStore) save(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "failed to marshal break history")
	}
	return h.kv.Set(ctx, h.key, raw)
}
