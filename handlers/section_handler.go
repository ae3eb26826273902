package handlers

import (
	"net/http"
	"strings"

	"showoffs-backend/models"
	"showoffs-backend/repository"
	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
)

// SectionHandler handles HTTP requests for homepage sections
type SectionHandler struct {
	sectionRepo *repository.SectionRepository
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionRepo *repository.SectionRepository) *SectionHandler {
	return &SectionHandler{sectionRepo: sectionRepo}
}

// List handles GET /api/admin/sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionRepo.List(c.Request.Context(), false)
	if err != nil {
		internalError(c, "list sections", err)
		return
	}
	if sections == nil {
		sections = []*models.Section{}
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSectionRequest is the create request body
type CreateSectionRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Create handles POST /api/admin/sections. New sections append to the
// end of the ordering and start visible.
func (h *SectionHandler) Create(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	slug := service.Slugify(req.Slug)
	if slug == "" {
		slug = service.Slugify(name)
	}

	section := &models.Section{
		Name:    name,
		Slug:    slug,
		Visible: true,
	}
	if err := h.sectionRepo.Create(c.Request.Context(), section); err != nil {
		internalError(c, "create section", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": section.ID})
}

// ReorderSectionsRequest is the bulk reorder request body
type ReorderSectionsRequest struct {
	Sections []models.SectionOrder `json:"sections"`
}

// Reorder handles PUT /api/admin/sections
func (h *SectionHandler) Reorder(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Sections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sections array required"})
		return
	}

	if err := h.sectionRepo.Reorder(c.Request.Context(), req.Sections); err != nil {
		internalError(c, "reorder sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PublicList handles GET /api/sections (visible only)
func (h *SectionHandler) PublicList(c *gin.Context) {
	if h.sectionRepo == nil {
		dbUnconfigured(c)
		return
	}
	sections, err := h.sectionRepo.List(c.Request.Context(), true)
	if err != nil {
		internalError(c, "list visible sections", err)
		return
	}
	if sections == nil {
		sections = []*models.Section{}
	}
	c.JSON(http.StatusOK, sections)
}
