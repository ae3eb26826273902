package repository

import (
	"context"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewRepository handles database operations for client reviews
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (client_name, client_photo_url, rating, content, project_type, video_url, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		review.ClientName,
		review.ClientPhotoURL,
		review.Rating,
		review.Content,
		review.ProjectType,
		review.VideoURL,
		review.Approved,
	).Scan(&review.ID, &review.CreatedAt)
}

// List retrieves reviews newest first. When approvedOnly is set,
// unapproved reviews are excluded.
func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]*models.Review, error) {
	query := `
		SELECT id, client_name, client_photo_url, rating, content, project_type, video_url, approved, created_at
		FROM reviews`
	if approvedOnly {
		query += " WHERE approved = true"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(
			&review.ID,
			&review.ClientName,
			&review.ClientPhotoURL,
			&review.Rating,
			&review.Content,
			&review.ProjectType,
			&review.VideoURL,
			&review.Approved,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

// SetApproved toggles the public visibility flag
func (r *ReviewRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	_, err := r.db.Exec(ctx, `UPDATE reviews SET approved = $2 WHERE id = $1`, id, approved)
	return err
}

// Delete deletes a review
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}
