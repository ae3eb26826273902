package handlers

import (
	"errors"
	"net/http"

	"showoffs-backend/models"
	"showoffs-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team members
type TeamHandler struct {
	teamRepo *repository.TeamRepository
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamRepo *repository.TeamRepository) *TeamHandler {
	return &TeamHandler{teamRepo: teamRepo}
}

// List handles GET /api/admin/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamRepo.List(c.Request.Context(), false)
	if err != nil {
		internalError(c, "list team members", err)
		return
	}
	if members == nil {
		members = []*models.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}

// CreateTeamMemberRequest is the create request body
type CreateTeamMemberRequest struct {
	Name        string             `json:"name"`
	Position    string             `json:"position"`
	Bio         *string            `json:"bio"`
	PhotoURL    *string            `json:"photo_url"`
	SocialLinks models.SocialLinks `json:"social_links"`
	Published   *bool              `json:"published"`
	OrderIndex  int                `json:"order_index"`
}

// Create handles POST /api/admin/team
func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, position required"})
		return
	}

	member := &models.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
		SocialLinks: req.SocialLinks,
		Published:   req.Published == nil || *req.Published,
		OrderIndex:  req.OrderIndex,
	}
	if member.SocialLinks == nil {
		member.SocialLinks = models.SocialLinks{}
	}

	if err := h.teamRepo.Create(c.Request.Context(), member); err != nil {
		internalError(c, "create team member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": member.ID})
}

// PatchTeamMemberRequest is the partial update request body
type PatchTeamMemberRequest struct {
	ID uuid.UUID `json:"id"`
	models.TeamMemberPatch
}

// Patch handles PATCH /api/admin/team
func (h *TeamHandler) Patch(c *gin.Context) {
	var req PatchTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	err := h.teamRepo.Patch(c.Request.Context(), req.ID, req.TeamMemberPatch)
	if errors.Is(err, repository.ErrNoFields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates"})
		return
	}
	if err != nil {
		internalError(c, "update team member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete handles DELETE /api/admin/team?id=
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDQuery(c)
	if !ok {
		return
	}
	if err := h.teamRepo.Delete(c.Request.Context(), id); err != nil {
		internalError(c, "delete team member", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PublicList handles GET /api/team (published only)
func (h *TeamHandler) PublicList(c *gin.Context) {
	if h.teamRepo == nil {
		dbUnconfigured(c)
		return
	}
	members, err := h.teamRepo.List(c.Request.Context(), true)
	if err != nil {
		internalError(c, "list published team members", err)
		return
	}
	if members == nil {
		members = []*models.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}
