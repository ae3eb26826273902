package handlers

import (
	"errors"
	"net/http"

	"showoffs-backend/models"
	"showoffs-backend/repository"
	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WorkHandler handles HTTP requests for portfolio works
type WorkHandler struct {
	workRepo *repository.WorkRepository
}

// NewWorkHandler creates a new work handler
func NewWorkHandler(workRepo *repository.WorkRepository) *WorkHandler {
	return &WorkHandler{workRepo: workRepo}
}

// List handles GET /api/admin/works
func (h *WorkHandler) List(c *gin.Context) {
	publishedOnly := c.Query("published") == "true"
	works, err := h.workRepo.List(c.Request.Context(), publishedOnly)
	if err != nil {
		internalError(c, "list works", err)
		return
	}
	if works == nil {
		works = []*models.Work{}
	}
	c.JSON(http.StatusOK, works)
}

// CreateWorkRequest is the create request body
type CreateWorkRequest struct {
	SectionID    *uuid.UUID `json:"section_id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description"`
	VideoURL     *string    `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	ProjectType  string     `json:"project_type"`
	Tools        []string   `json:"tools"`
	Tags         []string   `json:"tags"`
	IsVertical   bool       `json:"is_vertical"`
	Published    *bool      `json:"published"`
	OrderIndex   int        `json:"order_index"`
}

// Create handles POST /api/admin/works
func (h *WorkHandler) Create(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.ProjectType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, project_type required"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = service.Slugify(req.Title)
	} else {
		slug = service.Slugify(slug)
	}

	work := &models.Work{
		SectionID:    req.SectionID,
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		ProjectType:  req.ProjectType,
		Tools:        req.Tools,
		Tags:         req.Tags,
		IsVertical:   req.IsVertical,
		Published:    req.Published == nil || *req.Published,
		OrderIndex:   req.OrderIndex,
	}
	if work.Tools == nil {
		work.Tools = []string{}
	}
	if work.Tags == nil {
		work.Tags = []string{}
	}

	if err := h.workRepo.Create(c.Request.Context(), work); err != nil {
		internalError(c, "create work", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": work.ID})
}

// PatchWorkRequest is the partial update request body
type PatchWorkRequest struct {
	ID uuid.UUID `json:"id"`
	models.WorkPatch
}

// Patch handles PATCH /api/admin/works
func (h *WorkHandler) Patch(c *gin.Context) {
	var req PatchWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	err := h.workRepo.Patch(c.Request.Context(), req.ID, req.WorkPatch)
	if errors.Is(err, repository.ErrNoFields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates"})
		return
	}
	if err != nil {
		internalError(c, "update work", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete handles DELETE /api/admin/works?id=
func (h *WorkHandler) Delete(c *gin.Context) {
	id, ok := parseIDQuery(c)
	if !ok {
		return
	}
	if err := h.workRepo.Delete(c.Request.Context(), id); err != nil {
		internalError(c, "delete work", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PublicList handles GET /api/works (published only)
func (h *WorkHandler) PublicList(c *gin.Context) {
	if h.workRepo == nil {
		dbUnconfigured(c)
		return
	}
	works, err := h.workRepo.List(c.Request.Context(), true)
	if err != nil {
		internalError(c, "list published works", err)
		return
	}
	if works == nil {
		works = []*models.Work{}
	}
	c.JSON(http.StatusOK, works)
}

// PublicGet handles GET /api/works/:slug and counts the view
func (h *WorkHandler) PublicGet(c *gin.Context) {
	if h.workRepo == nil {
		dbUnconfigured(c)
		return
	}
	slug := c.Param("slug")
	work, err := h.workRepo.GetBySlugAndCount(c.Request.Context(), slug)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
		return
	}
	if err != nil {
		internalError(c, "get work", err)
		return
	}
	c.JSON(http.StatusOK, work)
}
