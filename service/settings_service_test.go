package service

import (
	"encoding/json"
	"testing"

	"showoffs-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingRow(key, rawValue string) *models.SiteSetting {
	return &models.SiteSetting{Key: key, Value: json.RawMessage(rawValue)}
}

func TestMergeSettingsDefaults(t *testing.T) {
	settings := MergeSettings(nil)

	assert.Equal(t, "ShowOffs Media", settings.AgencyName)
	assert.Equal(t, "hello@showoffsmedia.com", settings.Email)
	assert.True(t, settings.DarkModeDefault)
	assert.Nil(t, settings.HeroVideoURL)
	assert.Nil(t, settings.LogoURL)
	assert.NotNil(t, settings.SocialLinks)
	assert.Empty(t, settings.SocialLinks)
}

func TestMergeSettingsOverrides(t *testing.T) {
	rows := []*models.SiteSetting{
		settingRow("agencyName", `"Studio North"`),
		settingRow("heroVideoUrl", `"https://cdn.example.com/hero.mp4"`),
		settingRow("darkModeDefault", `false`),
		settingRow("socialLinks", `{"youtube":"https://youtube.com/@north","myspace":"https://myspace.com/north"}`),
	}

	settings := MergeSettings(rows)

	assert.Equal(t, "Studio North", settings.AgencyName)
	require.NotNil(t, settings.HeroVideoURL)
	assert.Equal(t, "https://cdn.example.com/hero.mp4", *settings.HeroVideoURL)
	assert.False(t, settings.DarkModeDefault)
	// unknown platforms are dropped
	assert.Equal(t, map[string]string{"youtube": "https://youtube.com/@north"}, settings.SocialLinks)
	// untouched keys keep their defaults
	assert.Equal(t, "hello@showoffsmedia.com", settings.Email)
}

func TestMergeSettingsIgnoresMalformedValues(t *testing.T) {
	rows := []*models.SiteSetting{
		settingRow("agencyName", `12345`),
		settingRow("darkModeDefault", `"yes"`),
	}

	settings := MergeSettings(rows)

	assert.Equal(t, "ShowOffs Media", settings.AgencyName)
	assert.True(t, settings.DarkModeDefault)
}

func TestAdminSettingsViewSeedsAllKeys(t *testing.T) {
	view := AdminSettingsView([]*models.SiteSetting{
		settingRow("agencyName", `"Studio North"`),
	})

	for _, key := range SettingKeys {
		_, ok := view[key]
		assert.True(t, ok, "key %s missing from admin view", key)
	}
	assert.Equal(t, "Studio North", view["agencyName"])
	assert.Nil(t, view["heroVideoUrl"])
	assert.Nil(t, view["logoUrl"])
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "", NormalizeValue("agencyName", nil))
	assert.Equal(t, "Studio North", NormalizeValue("agencyName", "Studio North"))
	assert.Equal(t, "42", NormalizeValue("agencyName", float64(42)))

	assert.Equal(t, true, NormalizeValue("darkModeDefault", true))
	assert.Equal(t, false, NormalizeValue("darkModeDefault", nil))
	assert.Equal(t, false, NormalizeValue("darkModeDefault", "true"))

	links := NormalizeValue("socialLinks", map[string]interface{}{
		"youtube": "https://youtube.com/@north",
		"myspace": "dropped",
		"twitter": 7,
	})
	assert.Equal(t, map[string]string{"youtube": "https://youtube.com/@north"}, links)

	assert.Equal(t, map[string]string{}, NormalizeValue("socialLinks", nil))
	assert.Equal(t, map[string]string{}, NormalizeValue("socialLinks", "not a map"))
}
