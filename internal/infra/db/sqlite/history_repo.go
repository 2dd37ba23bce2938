package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	domain "github.com/checkmycar/checkmycar/internal/domain/history"
)

// Storage keys, kept identical to the original web client's local storage so
// the persisted format stays recognizable.
const (
	keyHistory = "cmc_history"
	keyEmail   = "cmc_email"
	keyCar     = "cmc_car"
	keyAuthed  = "cmc_authed"
)

// HistoryRepository persists history and profile in the local kv table.
type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (r *HistoryRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// LoadHistory returns the stored entries, newest first. An absent or
// corrupted list reads as empty, matching the web client's behavior.
func (r *HistoryRepository) LoadHistory(ctx context.Context) ([]domain.Entry, error) {
	raw, err := r.get(ctx, keyHistory)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var entries []domain.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// SaveHistory rewrites the whole list under the history key.
func (r *HistoryRepository) SaveHistory(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return r.set(ctx, keyHistory, string(raw))
}

func (r *HistoryRepository) LoadProfile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	var err error
	if p.Email, err = r.get(ctx, keyEmail); err != nil {
		return domain.Profile{}, fmt.Errorf("read email: %w", err)
	}
	if p.CarModel, err = r.get(ctx, keyCar); err != nil {
		return domain.Profile{}, fmt.Errorf("read car model: %w", err)
	}
	authed, err := r.get(ctx, keyAuthed)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read authed flag: %w", err)
	}
	p.Authed = authed == "1"
	return p, nil
}

func (r *HistoryRepository) SaveProfile(ctx context.Context, p domain.Profile) error {
	if err := r.set(ctx, keyEmail, p.Email); err != nil {
		return fmt.Errorf("write email: %w", err)
	}
	if err := r.set(ctx, keyCar, p.CarModel); err != nil {
		return fmt.Errorf("write car model: %w", err)
	}
	authed := "0"
	if p.Authed {
		authed = "1"
	}
	if err := r.set(ctx, keyAuthed, authed); err != nil {
		return fmt.Errorf("write authed flag: %w", err)
	}
	return nil
}
