package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository persists category-keyed JSON settings blobs
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)
	Upsert(ctx context.Context, category string, data json.RawMessage) error
}

var _ SettingsRepository = &SettingsPostgres{}

// SettingsPostgres implements SettingsRepository using PostgreSQL
type SettingsPostgres struct {
	db *pgxpool.Pool
}

func NewSettingsPostgres(db *pgxpool.Pool) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

func (r *SettingsPostgres) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := r.db.Query(ctx, `SELECT category, data FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var category string
		var data []byte
		if err := rows.Scan(&category, &data); err != nil {
			return nil, fmt.Errorf("scan settings row: %w", err)
		}
		out[category] = json.RawMessage(data)
	}
	return out, rows.Err()
}

func (r *SettingsPostgres) Upsert(ctx context.Context, category string, data json.RawMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO settings (id, category, data, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (category) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		uuid.New(), category, []byte(data),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
