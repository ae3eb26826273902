package handlers

import (
	"net/http"

	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for site settings
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// AdminGet handles GET /api/admin/settings: raw values, every recognized
// key present (null when unset).
func (h *SettingsHandler) AdminGet(c *gin.Context) {
	view, err := h.settings.AdminSettings(c.Request.Context())
	if err != nil {
		internalError(c, "read settings", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AdminPut handles PUT /api/admin/settings: upserts each submitted key
// after normalization.
func (h *SettingsHandler) AdminPut(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.SaveSettings(c.Request.Context(), body); err != nil {
		internalError(c, "save settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PublicGet handles GET /api/settings: typed settings merged over the
// compiled-in defaults.
func (h *SettingsHandler) PublicGet(c *gin.Context) {
	settings, err := h.settings.PublicSettings(c.Request.Context())
	if err != nil {
		internalError(c, "read settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
