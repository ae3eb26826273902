package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListWorksQueryFiltersPublished(t *testing.T) {
	all := listWorksQuery(false)
	published := listWorksQuery(true)

	assert.NotContains(t, all, "WHERE")
	assert.Contains(t, published, "WHERE published = true")
	assert.Contains(t, all, "ORDER BY order_index ASC")
	assert.Contains(t, published, "ORDER BY order_index ASC")
}
