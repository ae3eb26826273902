package repository

import (
	"context"
	"errors"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoFields is returned when a partial update carries no fields.
var ErrNoFields = errors.New("no fields to update")

const workColumns = `id, section_id, title, slug, description, video_url, thumbnail_url,
		project_type, tools, tags, is_vertical, view_count, published, order_index,
		created_at, updated_at`

// WorkRepository handles database operations for portfolio works
type WorkRepository struct {
	db *pgxpool.Pool
}

// NewWorkRepository creates a new work repository
func NewWorkRepository(db *pgxpool.Pool) *WorkRepository {
	return &WorkRepository{db: db}
}

// Create creates a new work
func (r *WorkRepository) Create(ctx context.Context, work *models.Work) error {
	query := `
		INSERT INTO works (
			section_id, title, slug, description, video_url, thumbnail_url,
			project_type, tools, tags, is_vertical, published, order_index
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, view_count, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		work.SectionID,
		work.Title,
		work.Slug,
		work.Description,
		work.VideoURL,
		work.ThumbnailURL,
		work.ProjectType,
		work.Tools,
		work.Tags,
		work.IsVertical,
		work.Published,
		work.OrderIndex,
	).Scan(&work.ID, &work.ViewCount, &work.CreatedAt, &work.UpdatedAt)
}

func listWorksQuery(publishedOnly bool) string {
	query := `SELECT ` + workColumns + ` FROM works`
	if publishedOnly {
		query += " WHERE published = true"
	}
	return query + " ORDER BY order_index ASC"
}

// List retrieves works ordered by position. When publishedOnly is set,
// unpublished works are excluded.
func (r *WorkRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Work, error) {
	rows, err := r.db.Query(ctx, listWorksQuery(publishedOnly))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []*models.Work
	for rows.Next() {
		work := &models.Work{}
		if err := scanWork(rows, work); err != nil {
			return nil, err
		}
		works = append(works, work)
	}

	return works, rows.Err()
}

// GetBySlugAndCount retrieves a published work by slug and increments its
// view counter in the same statement.
func (r *WorkRepository) GetBySlugAndCount(ctx context.Context, slug string) (*models.Work, error) {
	query := `
		UPDATE works SET view_count = view_count + 1
		WHERE slug = $1 AND published = true
		RETURNING ` + workColumns

	work := &models.Work{}
	if err := scanWork(r.db.QueryRow(ctx, query, slug), work); err != nil {
		return nil, err
	}
	return work, nil
}

// Patch applies an allow-listed partial update
func (r *WorkRepository) Patch(ctx context.Context, id uuid.UUID, patch models.WorkPatch) error {
	cols, vals := patch.Fields()
	if len(cols) == 0 {
		return ErrNoFields
	}

	query := buildUpdateQuery("works", cols, true)
	args := append([]interface{}{id}, vals...)
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// Delete deletes a work
func (r *WorkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM works WHERE id = $1`, id)
	return err
}

func scanWork(row pgx.Row, work *models.Work) error {
	return row.Scan(
		&work.ID,
		&work.SectionID,
		&work.Title,
		&work.Slug,
		&work.Description,
		&work.VideoURL,
		&work.ThumbnailURL,
		&work.ProjectType,
		&work.Tools,
		&work.Tags,
		&work.IsVertical,
		&work.ViewCount,
		&work.Published,
		&work.OrderIndex,
		&work.CreatedAt,
		&work.UpdatedAt,
	)
}
