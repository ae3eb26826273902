package models

import (
	"encoding/json"
	"time"
)

// SiteSetting is one stored key-value override row
type SiteSetting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SiteSettings is the merged, typed view of all site settings: stored
// overrides layered over compiled-in defaults. Unset keys resolve to
// their default, never to an absent field.
type SiteSettings struct {
	AgencyName      string            `json:"agencyName"`
	WebsiteURL      string            `json:"websiteUrl"`
	LogoURL         *string           `json:"logoUrl"`
	Email           string            `json:"email"`
	Whatsapp        string            `json:"whatsapp"`
	ContactPhone    string            `json:"contactPhone"`
	SEOTitle        string            `json:"seoTitle"`
	SEODescription  string            `json:"seoDescription"`
	DarkModeDefault bool              `json:"darkModeDefault"`
	HeroVideoURL    *string           `json:"heroVideoUrl"`
	HeroHeadline    string            `json:"heroHeadline"`
	HeroSubtext     string            `json:"heroSubtext"`
	SocialLinks     map[string]string `json:"socialLinks"`
}
