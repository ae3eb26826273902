package service

import (
	"context"
	"encoding/json"
	"fmt"

	"showoffs-backend/models"
	"showoffs-backend/repository"
)

// SettingKeys are the recognized site_settings keys. Reads pre-seed the
// response with every key so the admin UI never sees an absent key.
var SettingKeys = []string{
	"agencyName",
	"websiteUrl",
	"logoUrl",
	"email",
	"whatsapp",
	"contactPhone",
	"seoTitle",
	"seoDescription",
	"darkModeDefault",
	"heroVideoUrl",
	"heroHeadline",
	"heroSubtext",
	"ogImage",
	"favicon",
	"socialLinks",
}

// socialPlatforms are the link targets accepted inside socialLinks
var socialPlatforms = []string{"youtube", "facebook", "instagram", "twitter", "linkedin", "whatsapp"}

// DefaultSettings returns the compiled-in defaults used when a key has
// never been written.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		AgencyName:      "ShowOffs Media",
		WebsiteURL:      "",
		LogoURL:         nil,
		Email:           "hello@showoffsmedia.com",
		Whatsapp:        "",
		ContactPhone:    "",
		SEOTitle:        "ShowOffs Media — We Make Brands Stand Out",
		SEODescription:  "Premium video production, Reels, Shorts & motion graphics.",
		DarkModeDefault: true,
		HeroVideoURL:    nil,
		HeroHeadline:    "We Make Brands Stand Out",
		HeroSubtext:     "Premium video production, Reels, Shorts & motion graphics that get seen.",
		SocialLinks:     map[string]string{},
	}
}

// MergeSettings layers stored rows over the compiled-in defaults and
// returns the typed settings object served to the public site.
func MergeSettings(rows []*models.SiteSetting) models.SiteSettings {
	settings := DefaultSettings()

	byKey := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		byKey[row.Key] = row.Value
	}

	assignString := func(key string, dst *string) {
		if raw, ok := byKey[key]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				*dst = s
			}
		}
	}
	assignNullableString := func(key string, dst **string) {
		if raw, ok := byKey[key]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				*dst = &s
			}
		}
	}

	assignString("agencyName", &settings.AgencyName)
	assignString("websiteUrl", &settings.WebsiteURL)
	assignNullableString("logoUrl", &settings.LogoURL)
	assignString("email", &settings.Email)
	assignString("whatsapp", &settings.Whatsapp)
	assignString("contactPhone", &settings.ContactPhone)
	assignString("seoTitle", &settings.SEOTitle)
	assignString("seoDescription", &settings.SEODescription)
	assignNullableString("heroVideoUrl", &settings.HeroVideoURL)
	assignString("heroHeadline", &settings.HeroHeadline)
	assignString("heroSubtext", &settings.HeroSubtext)

	if raw, ok := byKey["darkModeDefault"]; ok {
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			settings.DarkModeDefault = b
		}
	}
	if raw, ok := byKey["socialLinks"]; ok {
		var links map[string]interface{}
		if err := json.Unmarshal(raw, &links); err == nil {
			settings.SocialLinks = filterSocialLinks(links)
		}
	}

	return settings
}

// AdminSettingsView returns the raw key/value map served to the admin
// dashboard: every recognized key present, unset keys null.
func AdminSettingsView(rows []*models.SiteSetting) map[string]interface{} {
	view := make(map[string]interface{}, len(SettingKeys))
	for _, key := range SettingKeys {
		view[key] = nil
	}
	for _, row := range rows {
		var v interface{}
		if err := json.Unmarshal(row.Value, &v); err == nil {
			view[row.Key] = v
		}
	}
	return view
}

// NormalizeValue coerces a submitted setting value into its canonical
// stored form: nil becomes the type-appropriate empty value, booleans are
// kept for boolean keys, socialLinks is validated as a plain map of known
// platforms, and anything else is stored as a string.
func NormalizeValue(key string, value interface{}) interface{} {
	switch key {
	case "darkModeDefault":
		b, _ := value.(bool)
		return b
	case "socialLinks":
		links, _ := value.(map[string]interface{})
		return filterSocialLinks(links)
	default:
		if value == nil {
			return ""
		}
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", value)
	}
}

func filterSocialLinks(in map[string]interface{}) map[string]string {
	out := make(map[string]string)
	for _, platform := range socialPlatforms {
		if s, ok := in[platform].(string); ok {
			out[platform] = s
		}
	}
	return out
}

// SettingsService reads and writes site settings
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// SettingsServiceOption is a functional option for SettingsService
type SettingsServiceOption func(*SettingsService)

// WithSettingsRepository sets the settings repository
func WithSettingsRepository(repo *repository.SettingsRepository) SettingsServiceOption {
	return func(s *SettingsService) {
		s.settingsRepo = repo
	}
}

// NewSettingsService creates a new settings service
func NewSettingsService(opts ...SettingsServiceOption) *SettingsService {
	s := &SettingsService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PublicSettings returns the merged typed settings
func (s *SettingsService) PublicSettings(ctx context.Context) (models.SiteSettings, error) {
	if s.settingsRepo == nil {
		return DefaultSettings(), nil
	}
	rows, err := s.settingsRepo.List(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return MergeSettings(rows), nil
}

// AdminSettings returns the raw key/value map for the dashboard
func (s *SettingsService) AdminSettings(ctx context.Context) (map[string]interface{}, error) {
	rows, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return AdminSettingsView(rows), nil
}

// SaveSettings normalizes and upserts each submitted key
func (s *SettingsService) SaveSettings(ctx context.Context, values map[string]interface{}) error {
	for key, value := range values {
		normalized := NormalizeValue(key, value)
		raw, err := json.Marshal(normalized)
		if err != nil {
			return fmt.Errorf("failed to encode setting %s: %w", key, err)
		}
		if err := s.settingsRepo.Upsert(ctx, key, raw); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}
