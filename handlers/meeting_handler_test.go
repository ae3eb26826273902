package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"showoffs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitMeetingRejectsMissingFields(t *testing.T) {
	h := NewMeetingHandler(nil, service.NewSubmissionService())
	r := gin.New()
	r.POST("/api/meetings", h.Submit)

	w := postJSON(t, r, "/api/meetings", gin.H{"name": "Ada", "email": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestSubmitMeetingWithoutDatabaseStillSucceeds(t *testing.T) {
	h := NewMeetingHandler(nil, service.NewSubmissionService())
	r := gin.New()
	r.POST("/api/meetings", h.Submit)

	w := postJSON(t, r, "/api/meetings", gin.H{
		"name":        "Ada Lovelace",
		"email":       "ada@example.com",
		"projectType": "commercial",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.ID, "demo-")
}

func TestUpdateMeetingStatusRejectsUnknownStatus(t *testing.T) {
	h := NewMeetingHandler(nil, nil)
	r := gin.New()
	r.PATCH("/api/admin/meetings", h.UpdateStatus)

	payload, err := json.Marshal(gin.H{
		"id":     "b3b4f0a2-8f9c-4a52-a2d7-3f2f5a3c9e11",
		"status": "archived",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/meetings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status must be one of")
}
