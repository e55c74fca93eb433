package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"habitquest/internal/database"
	"habitquest/internal/models"
)

// SnapshotName is the key the progression blob is stored under.
const SnapshotName = "progression"

// StateRepository persists the engine state as a single JSON blob in the
// snapshots table. It is the durable key-value gateway: Load returns the last
// saved state or nil on first run, Save overwrites it.
type StateRepository struct {
	db *database.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *database.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load returns the persisted state, or nil when none exists. A corrupt
// payload is logged and treated as no prior state, never propagated.
func (r *StateRepository) Load() (*models.PersistedState, error) {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM snapshots WHERE name = ?", SnapshotName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state models.PersistedState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		log.WithError(err).Warn("Persisted state is corrupt, starting fresh")
		return nil, nil
	}

	state.Normalize()
	return &state, nil
}

// Save overwrites the persisted state.
func (r *StateRepository) Save(state *models.PersistedState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	query := r.db.Dialect.UpsertSnapshotQuery()
	if _, err := r.db.Exec(query, SnapshotName, string(payload)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Raw returns the stored payload without decoding it, for backup export.
// Returns false when no snapshot exists.
func (r *StateRepository) Raw() (string, bool, error) {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM snapshots WHERE name = ?", SnapshotName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return payload, true, nil
}

// SaveRaw stores a payload verbatim, for backup import. The payload must be a
// valid state blob.
func (r *StateRepository) SaveRaw(payload string) error {
	var state models.PersistedState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return fmt.Errorf("payload is not a valid state blob: %w", err)
	}

	query := r.db.Dialect.UpsertSnapshotQuery()
	if _, err := r.db.Exec(query, SnapshotName, payload); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
