package repository

import (
	"context"
	"fmt"

	"showoffs-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository handles database operations for homepage sections
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: db}
}

// Create inserts a section at the end of the current ordering
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (name, slug, order_index, visible)
		VALUES ($1, $2, (SELECT COALESCE(MAX(order_index), -1) + 1 FROM sections), $3)
		RETURNING id, order_index, created_at`

	return r.db.QueryRow(ctx, query, section.Name, section.Slug, section.Visible).
		Scan(&section.ID, &section.OrderIndex, &section.CreatedAt)
}

// List retrieves sections ordered by position. When visibleOnly is set,
// hidden sections are excluded.
func (r *SectionRepository) List(ctx context.Context, visibleOnly bool) ([]*models.Section, error) {
	query := `
		SELECT id, name, slug, order_index, visible, created_at
		FROM sections`
	if visibleOnly {
		query += " WHERE visible = true"
	}
	query += " ORDER BY order_index ASC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		section := &models.Section{}
		err := rows.Scan(
			&section.ID,
			&section.Name,
			&section.Slug,
			&section.OrderIndex,
			&section.Visible,
			&section.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

// Reorder applies a bulk positional update inside a single transaction
// so a mid-sequence failure never leaves the ordering half-applied.
func (r *SectionRepository) Reorder(ctx context.Context, orders []models.SectionOrder) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE sections SET order_index = $2, visible = $3 WHERE id = $1`
	for _, o := range orders {
		if _, err := tx.Exec(ctx, query, o.ID, o.OrderIndex, o.Visible); err != nil {
			return fmt.Errorf("failed to reorder section %s: %w", o.ID, err)
		}
	}

	return tx.Commit(ctx)
}
