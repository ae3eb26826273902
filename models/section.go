package models

import (
	"time"

	"github.com/google/uuid"
)

// Section represents a homepage section entity
type Section struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	OrderIndex int       `json:"order_index"`
	Visible    bool      `json:"visible"`
	CreatedAt  time.Time `json:"created_at"`
}

// SectionOrder is one element of a bulk reorder request
type SectionOrder struct {
	ID         uuid.UUID `json:"id"`
	OrderIndex int       `json:"order_index"`
	Visible    bool      `json:"visible"`
}
