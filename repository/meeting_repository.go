package repository

import (
	"context"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MeetingRepository handles database operations for booking requests
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting request
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	query := `
		INSERT INTO meetings (
			client_name, client_email, client_phone, project_type, budget_range,
			preferred_date, preferred_time_slot, message, brief_file_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		meeting.ClientName,
		meeting.ClientEmail,
		meeting.ClientPhone,
		meeting.ProjectType,
		meeting.BudgetRange,
		meeting.PreferredDate,
		meeting.PreferredTimeSlot,
		meeting.Message,
		meeting.BriefFileURL,
		meeting.Status,
	).Scan(&meeting.ID, &meeting.CreatedAt, &meeting.UpdatedAt)
}

// List retrieves meetings newest first, optionally filtered by status
func (r *MeetingRepository) List(ctx context.Context, status *models.MeetingStatus) ([]*models.Meeting, error) {
	query := `
		SELECT id, client_name, client_email, client_phone, project_type, budget_range,
			preferred_date, preferred_time_slot, message, brief_file_url, status,
			created_at, updated_at
		FROM meetings`

	var args []interface{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		meeting := &models.Meeting{}
		err := rows.Scan(
			&meeting.ID,
			&meeting.ClientName,
			&meeting.ClientEmail,
			&meeting.ClientPhone,
			&meeting.ProjectType,
			&meeting.BudgetRange,
			&meeting.PreferredDate,
			&meeting.PreferredTimeSlot,
			&meeting.Message,
			&meeting.BriefFileURL,
			&meeting.Status,
			&meeting.CreatedAt,
			&meeting.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	return meetings, rows.Err()
}

// UpdateStatus moves a meeting to a new lifecycle status
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MeetingStatus) error {
	query := `UPDATE meetings SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, status)
	return err
}
