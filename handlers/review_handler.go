package handlers

import (
	"errors"
	"net/http"
	"strings"

	"showoffs-backend/models"
	"showoffs-backend/repository"
	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler handles HTTP requests for client reviews
type ReviewHandler struct {
	reviewRepo  *repository.ReviewRepository
	submissions *service.SubmissionService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewRepo *repository.ReviewRepository, submissions *service.SubmissionService) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo:  reviewRepo,
		submissions: submissions,
	}
}

// List handles GET /api/admin/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewRepo.List(c.Request.Context(), false)
	if err != nil {
		internalError(c, "list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewRequest is the admin create request body
type CreateReviewRequest struct {
	ClientName  string   `json:"client_name"`
	Rating      *float64 `json:"rating"`
	Content     string   `json:"content"`
	ProjectType string   `json:"project_type"`
}

// Create handles POST /api/admin/reviews. Admin-entered reviews start
// unapproved like public ones; the rating is clamped, not rejected.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ClientName == "" || req.Rating == nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_name, rating, content required"})
		return
	}

	review := &models.Review{
		ClientName: strings.TrimSpace(req.ClientName),
		Rating:     service.ClampRating(*req.Rating),
		Content:    strings.TrimSpace(req.Content),
		Approved:   false,
	}
	if pt := strings.TrimSpace(req.ProjectType); pt != "" {
		review.ProjectType = &pt
	}

	if err := h.reviewRepo.Create(c.Request.Context(), review); err != nil {
		internalError(c, "create review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": review.ID})
}

// ApproveReviewRequest is the approval toggle request body
type ApproveReviewRequest struct {
	ID       uuid.UUID `json:"id"`
	Approved bool      `json:"approved"`
}

// SetApproved handles PATCH /api/admin/reviews
func (h *ReviewHandler) SetApproved(c *gin.Context) {
	var req ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	if err := h.reviewRepo.SetApproved(c.Request.Context(), req.ID, req.Approved); err != nil {
		internalError(c, "approve review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete handles DELETE /api/admin/reviews?id=
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDQuery(c)
	if !ok {
		return
	}
	if err := h.reviewRepo.Delete(c.Request.Context(), id); err != nil {
		internalError(c, "delete review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PublicList handles GET /api/reviews (approved only)
func (h *ReviewHandler) PublicList(c *gin.Context) {
	if h.reviewRepo == nil {
		dbUnconfigured(c)
		return
	}
	reviews, err := h.reviewRepo.List(c.Request.Context(), true)
	if err != nil {
		internalError(c, "list approved reviews", err)
		return
	}
	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// SubmitReviewRequest is the public submission body
type SubmitReviewRequest struct {
	ClientName  string  `json:"client_name"`
	Rating      float64 `json:"rating"`
	Content     string  `json:"content"`
	ProjectType string  `json:"project_type"`
}

// Submit handles POST /api/reviews (public, unauthenticated)
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.submissions.SubmitReview(c.Request.Context(), service.SubmitReviewRequest{
		ClientName:  req.ClientName,
		Rating:      req.Rating,
		Content:     req.Content,
		ProjectType: req.ProjectType,
	})

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	if err != nil {
		internalError(c, "submit review", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": review.ID})
}
