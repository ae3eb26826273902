package models

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a client testimonial
type Review struct {
	ID             uuid.UUID `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientPhotoURL *string   `json:"client_photo_url"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	ProjectType    *string   `json:"project_type"`
	VideoURL       *string   `json:"video_url"`
	Approved       bool      `json:"approved"`
	CreatedAt      time.Time `json:"created_at"`
}
