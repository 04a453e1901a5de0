package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/util"
)

// LoadState reads the state blob stored under key. The bool is false when no
// row exists. A corrupt or tampered payload yields *DeserializationError.
func (d *Database) LoadState(ctx context.Context, key string) (models.AppState, bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var payload string
	var checksum sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT payload, checksum FROM app_state WHERE key = ?", key).Scan(&payload, &checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AppState{}, false, nil
	}
	if err != nil {
		return models.AppState{}, false, wrapErr(EntityState, "load", key, err)
	}
	if !util.VerifyChecksum([]byte(payload), checksum.String) {
		return models.AppState{}, false, &DeserializationError{Key: key, Err: ErrChecksumMismatch}
	}
	var state models.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return models.AppState{}, false, &DeserializationError{Key: key, Err: err}
	}
	return state, true, nil
}

// SaveState replaces the blob under key with state.
func (d *Database) SaveState(ctx context.Context, key string, state models.AppState) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	payload, err := json.Marshal(state)
	if err != nil {
		return wrapErr(EntityState, "encode", key, err)
	}
	_, err = d.DB.ExecContext(ctx, `
		INSERT INTO app_state (key, payload, checksum, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, checksum = excluded.checksum, updated_at = excluded.updated_at`,
		key, string(payload), util.Checksum(payload), time.Now().UTC().Format(time.RFC3339))
	return wrapErr(EntityState, "save", key, err)
}
