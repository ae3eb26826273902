package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SocialLinks maps a platform name (linkedin, twitter, email, ...) to a URL
// or handle. Stored as JSONB.
type SocialLinks map[string]string

// Value implements driver.Valuer for JSONB
func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(SocialLinks{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *SocialLinks) Scan(value interface{}) error {
	if value == nil {
		*s = make(SocialLinks)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*s = make(SocialLinks)
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// TeamMember represents a team member profile
type TeamMember struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Bio         *string     `json:"bio"`
	PhotoURL    *string     `json:"photo_url"`
	SocialLinks SocialLinks `json:"social_links"`
	Published   bool        `json:"published"`
	OrderIndex  int         `json:"order_index"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TeamMemberPatch is a partial update for a team member. Nil fields are
// left untouched.
type TeamMemberPatch struct {
	Name        *string      `json:"name"`
	Position    *string      `json:"position"`
	Bio         *string      `json:"bio"`
	PhotoURL    *string      `json:"photo_url"`
	SocialLinks *SocialLinks `json:"social_links"`
	Published   *bool        `json:"published"`
	OrderIndex  *int         `json:"order_index"`
}

// Fields returns the column names and values set on the patch.
func (p TeamMemberPatch) Fields() ([]string, []interface{}) {
	var cols []string
	var vals []interface{}
	add := func(col string, v interface{}) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Position != nil {
		add("position", *p.Position)
	}
	if p.Bio != nil {
		add("bio", *p.Bio)
	}
	if p.PhotoURL != nil {
		add("photo_url", *p.PhotoURL)
	}
	if p.SocialLinks != nil {
		add("social_links", *p.SocialLinks)
	}
	if p.Published != nil {
		add("published", *p.Published)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	return cols, vals
}
