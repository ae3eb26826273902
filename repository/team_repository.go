package repository

import (
	"context"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeamRepository handles database operations for team members
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team member
func (r *TeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, position, bio, photo_url, social_links, published, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		member.Name,
		member.Position,
		member.Bio,
		member.PhotoURL,
		member.SocialLinks,
		member.Published,
		member.OrderIndex,
	).Scan(&member.ID, &member.CreatedAt)
}

// List retrieves team members ordered by position. When publishedOnly is
// set, unpublished members are excluded.
func (r *TeamRepository) List(ctx context.Context, publishedOnly bool) ([]*models.TeamMember, error) {
	query := `
		SELECT id, name, position, bio, photo_url, social_links, published, order_index, created_at
		FROM team_members`
	if publishedOnly {
		query += " WHERE published = true"
	}
	query += " ORDER BY order_index ASC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		member := &models.TeamMember{}
		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Position,
			&member.Bio,
			&member.PhotoURL,
			&member.SocialLinks,
			&member.Published,
			&member.OrderIndex,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Patch applies an allow-listed partial update
func (r *TeamRepository) Patch(ctx context.Context, id uuid.UUID, patch models.TeamMemberPatch) error {
	cols, vals := patch.Fields()
	if len(cols) == 0 {
		return ErrNoFields
	}

	query := buildUpdateQuery("team_members", cols, false)
	args := append([]interface{}{id}, vals...)
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// Delete deletes a team member
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}
