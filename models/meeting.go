package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle status of a booking request
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// ValidMeetingStatus reports whether s is a recognized status value.
func ValidMeetingStatus(s MeetingStatus) bool {
	switch s {
	case MeetingStatusPending, MeetingStatusConfirmed, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// Meeting represents a booking request submitted from the public site
type Meeting struct {
	ID                uuid.UUID     `json:"id"`
	ClientName        string        `json:"client_name"`
	ClientEmail       string        `json:"client_email"`
	ClientPhone       *string       `json:"client_phone"`
	ProjectType       string        `json:"project_type"`
	BudgetRange       *string       `json:"budget_range"`
	PreferredDate     *string       `json:"preferred_date"`
	PreferredTimeSlot *string       `json:"preferred_time_slot"`
	Message           *string       `json:"message"`
	BriefFileURL      *string       `json:"brief_file_url"`
	Status            MeetingStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
