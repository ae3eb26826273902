package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"showoffs-backend/models"
	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingReviewStore struct {
	created []*models.Review
}

func (s *capturingReviewStore) Create(ctx context.Context, review *models.Review) error {
	review.ID = uuid.New()
	s.created = append(s.created, review)
	return nil
}

func TestSubmitReviewRejectsMissingContent(t *testing.T) {
	store := &capturingReviewStore{}
	h := NewReviewHandler(nil, service.NewSubmissionService(service.WithReviewStore(store)))
	r := gin.New()
	r.POST("/api/reviews", h.Submit)

	w := postJSON(t, r, "/api/reviews", gin.H{"client_name": "Ada", "rating": 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content is required")
	assert.Empty(t, store.created)
}

func TestSubmitReviewClampsRatingAndStartsUnapproved(t *testing.T) {
	store := &capturingReviewStore{}
	h := NewReviewHandler(nil, service.NewSubmissionService(service.WithReviewStore(store)))
	r := gin.New()
	r.POST("/api/reviews", h.Submit)

	w := postJSON(t, r, "/api/reviews", gin.H{
		"client_name": "  Ada Lovelace  ",
		"rating":      9,
		"content":     "Fantastic edit, fast turnaround.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.created, 1)

	review := store.created[0]
	assert.Equal(t, "Ada Lovelace", review.ClientName)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.Approved)

	var resp struct {
		Success bool      `json:"success"`
		ID      uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, review.ID, resp.ID)
}

func TestPublicReviewListWithoutDatabaseReturns503(t *testing.T) {
	h := NewReviewHandler(nil, service.NewSubmissionService())
	r := gin.New()
	r.GET("/api/reviews", h.PublicList)

	w := getRequest(t, r, "/api/reviews")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}
