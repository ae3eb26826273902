package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func TestWorkPatchFieldsEmpty(t *testing.T) {
	cols, vals := WorkPatch{}.Fields()
	assert.Empty(t, cols)
	assert.Empty(t, vals)
}

func TestWorkPatchFields(t *testing.T) {
	patch := WorkPatch{
		Title:      strPtr("New Title"),
		Published:  boolPtr(false),
		OrderIndex: intPtr(3),
	}

	cols, vals := patch.Fields()

	assert.Equal(t, []string{"title", "published", "order_index"}, cols)
	assert.Equal(t, []interface{}{"New Title", false, 3}, vals)
}

func TestWorkPatchFieldsKeepsExplicitZeroValues(t *testing.T) {
	patch := WorkPatch{
		Description: strPtr(""),
		Tags:        &[]string{},
	}

	cols, vals := patch.Fields()

	assert.Equal(t, []string{"description", "tags"}, cols)
	assert.Equal(t, "", vals[0])
	assert.Equal(t, []string{}, vals[1])
}

func TestTeamMemberPatchFields(t *testing.T) {
	links := SocialLinks{"linkedin": "https://linkedin.com/in/alex"}
	patch := TeamMemberPatch{
		Position:    strPtr("Editor"),
		SocialLinks: &links,
	}

	cols, vals := patch.Fields()

	assert.Equal(t, []string{"position", "social_links"}, cols)
	assert.Equal(t, "Editor", vals[0])
	assert.Equal(t, links, vals[1])
}
