package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdateQuery(t *testing.T) {
	query := buildUpdateQuery("works", []string{"title", "published"}, true)
	assert.Equal(t, "UPDATE works SET title = $2, published = $3, updated_at = NOW() WHERE id = $1", query)
}

func TestBuildUpdateQueryWithoutUpdatedAt(t *testing.T) {
	query := buildUpdateQuery("team_members", []string{"bio"}, false)
	assert.Equal(t, "UPDATE team_members SET bio = $2 WHERE id = $1", query)
}
