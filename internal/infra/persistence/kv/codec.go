// Package kv implements the domain repositories on top of the key/value
// store. Every collection is JSON-encoded as one whole value under its
// own key; a missing or malformed value decodes to the empty default and
// is logged, never surfaced as a failure.
package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"gwdining/internal/domain/repository"

	"github.com/pkg/errors"
)

// loadJSON reads key and decodes it into out. It returns false when the
// key was absent or the value was corrupt; out is left untouched in that
// case so callers can keep their empty default.
func loadJSON(ctx context.Context, store repository.KVStore, logger *slog.Logger, key string, out any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "load %s", key)
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Corrupt persisted data is treated as absent, matching how the
		// original tolerated unreadable local storage.
		logger.Warn("Discarding corrupt stored value",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return false, nil
	}

	return true, nil
}

// saveJSON encodes value and rewrites key in full.
func saveJSON(ctx context.Context, store repository.KVStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := store.Set(ctx, key, string(raw)); err != nil {
		return errors.Wrapf(err, "save %s", key)
	}

	return nil
}
