package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tkexclusiv/catalog_api/internal/database"
	"github.com/tkexclusiv/catalog_api/internal/models"
)

// SettingRepository handles the site_settings key/value table.
type SettingRepository struct {
	db *sqlx.DB
}

func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// List returns all settings ordered for display.
func (r *SettingRepository) List(ctx context.Context) ([]models.SiteSetting, error) {
	settings := []models.SiteSetting{}
	err := r.db.SelectContext(ctx, &settings, `SELECT key, value, label, sort_order FROM site_settings ORDER BY sort_order, key`)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert writes every value in one transaction. Labels of existing keys are kept.
func (r *SettingRepository) Upsert(ctx context.Context, values map[string]string) error {
	q := r.db.Rebind(`
		INSERT INTO site_settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`)

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, q)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for key, value := range values {
			if _, err := stmt.ExecContext(ctx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}
