package reminder

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
)

const settingsKey = "notification_settings"

// KV is the key-value storage capability the engine depends on. Satisfied by
// *store.Store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// SettingsStore persists reminder settings behind the KV boundary, always
// merging over the defaults so callers never see a partial record.
type SettingsStore struct {
	kv KV
}

// NewSettingsStore builds a settings store over the given KV boundary.
func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Load returns the persisted settings merged over DefaultSettings. Absent,
// corrupt, or unreadable data falls back to the defaults with a warning;
// parse failures never propagate to callers.
func (s *SettingsStore) Load(ctx context.Context) Settings {
	raw, err := s.kv.Get(ctx, settingsKey)
	if err != nil {
		return DefaultSettings()
	}
	merged, err := MergeSettings(raw, DefaultSettings())
	if err != nil {
		slog.Warn("reminder settings corrupt, using defaults", "err", err)
		return DefaultSettings()
	}
	return merged
}

// Save applies a partial update over the current settings and persists the
// result. Write failures surface to the caller as retryable errors.
func (s *SettingsStore) Save(ctx context.Context, patch SettingsPatch) (Settings, error) {
	updated := patch.Apply(s.Load(ctx))
	if err := updated.Validate(); err != nil {
		return Settings{}, err
	}
	raw, err := json.Marshal(updated)
	if err != nil {
		return Settings{}, errors.Wrap(err, "failed to marshal reminder settings")
	}
	if err := s.kv.Set(ctx, settingsKey, raw); err != nil {
		return Settings{}, errors.Wrap(err, "failed to persist reminder settings")
	}
	return updated, nil
}
