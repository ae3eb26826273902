package repository

import (
	"context"
	"encoding/json"

	"showoffs-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository handles database operations for site settings
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// List retrieves all stored setting rows
func (r *SettingsRepository) List(ctx context.Context) ([]*models.SiteSetting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM site_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.SiteSetting
	for rows.Next() {
		setting := &models.SiteSetting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}

// Upsert stores a setting value keyed by name, overwriting any previous value
func (r *SettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, key, value)
	return err
}
