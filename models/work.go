package models

import (
	"time"

	"github.com/google/uuid"
)

// Work represents a portfolio item
type Work struct {
	ID           uuid.UUID  `json:"id"`
	SectionID    *uuid.UUID `json:"section_id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description"`
	VideoURL     *string    `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	ProjectType  string     `json:"project_type"`
	Tools        []string   `json:"tools"`
	Tags         []string   `json:"tags"`
	IsVertical   bool       `json:"is_vertical"`
	ViewCount    int        `json:"view_count"`
	Published    bool       `json:"published"`
	OrderIndex   int        `json:"order_index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WorkPatch is a partial update for a work. Nil fields are left untouched.
type WorkPatch struct {
	SectionID    *uuid.UUID `json:"section_id"`
	Title        *string    `json:"title"`
	Slug         *string    `json:"slug"`
	Description  *string    `json:"description"`
	VideoURL     *string    `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	ProjectType  *string    `json:"project_type"`
	Tools        *[]string  `json:"tools"`
	Tags         *[]string  `json:"tags"`
	IsVertical   *bool      `json:"is_vertical"`
	Published    *bool      `json:"published"`
	OrderIndex   *int       `json:"order_index"`
}

// Fields returns the column names and values set on the patch, in a
// stable order suitable for building an UPDATE statement.
func (p WorkPatch) Fields() ([]string, []interface{}) {
	var cols []string
	var vals []interface{}
	add := func(col string, v interface{}) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.SectionID != nil {
		add("section_id", *p.SectionID)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.VideoURL != nil {
		add("video_url", *p.VideoURL)
	}
	if p.ThumbnailURL != nil {
		add("thumbnail_url", *p.ThumbnailURL)
	}
	if p.ProjectType != nil {
		add("project_type", *p.ProjectType)
	}
	if p.Tools != nil {
		add("tools", *p.Tools)
	}
	if p.Tags != nil {
		add("tags", *p.Tags)
	}
	if p.IsVertical != nil {
		add("is_vertical", *p.IsVertical)
	}
	if p.Published != nil {
		add("published", *p.Published)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	return cols, vals
}
