package handlers

import (
	"errors"
	"net/http"

	"showoffs-backend/models"
	"showoffs-backend/repository"
	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for booking requests
type MeetingHandler struct {
	meetingRepo *repository.MeetingRepository
	submissions *service.SubmissionService
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingRepo *repository.MeetingRepository, submissions *service.SubmissionService) *MeetingHandler {
	return &MeetingHandler{
		meetingRepo: meetingRepo,
		submissions: submissions,
	}
}

// List handles GET /api/admin/meetings?status=
func (h *MeetingHandler) List(c *gin.Context) {
	var status *models.MeetingStatus
	if s := c.Query("status"); s != "" {
		ms := models.MeetingStatus(s)
		status = &ms
	}

	meetings, err := h.meetingRepo.List(c.Request.Context(), status)
	if err != nil {
		internalError(c, "list meetings", err)
		return
	}
	if meetings == nil {
		meetings = []*models.Meeting{}
	}
	c.JSON(http.StatusOK, meetings)
}

// UpdateMeetingRequest is the status transition request body
type UpdateMeetingRequest struct {
	ID     uuid.UUID            `json:"id"`
	Status models.MeetingStatus `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/meetings
func (h *MeetingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}
	if !models.ValidMeetingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: pending, confirmed, completed, cancelled"})
		return
	}

	if err := h.meetingRepo.UpdateStatus(c.Request.Context(), req.ID, req.Status); err != nil {
		internalError(c, "update meeting status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SubmitMeetingRequest is the public booking body
type SubmitMeetingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ProjectType   string `json:"projectType"`
	BudgetRange   string `json:"budgetRange"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
	BriefFileURL  string `json:"briefFileUrl"`
}

// Submit handles POST /api/meetings (public, unauthenticated)
func (h *MeetingHandler) Submit(c *gin.Context) {
	var req SubmitMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.submissions.SubmitMeeting(c.Request.Context(), service.SubmitMeetingRequest{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ProjectType:   req.ProjectType,
		BudgetRange:   req.BudgetRange,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		BriefFileURL:  req.BriefFileURL,
	})

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	if err != nil {
		internalError(c, "submit meeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
