package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Brand Reel 2024!", "brand-reel-2024"},
		{"already a slug", "brand-reel", "brand-reel"},
		{"mixed case", "ShowOffs Media", "showoffs-media"},
		{"multiple spaces", "Big   Launch  Video", "big-launch-video"},
		{"surrounding whitespace", "  Hero Cut  ", "hero-cut"},
		{"punctuation stripped", "Client's \"Best\" Ad, Vol. 2", "clients-best-ad-vol-2"},
		{"non-ascii stripped", "Café Promo", "caf-promo"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
