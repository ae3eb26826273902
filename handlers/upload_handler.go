package handlers

import (
	"log"
	"net/http"

	"showoffs-backend/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles HTTP requests for file uploads
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload handles POST /api/admin/upload (multipart: file, folder)
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	folder := c.PostForm("folder")

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.GenerateKey(folder, fileHeader.Filename)
	url, err := h.storage.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		log.Printf("Upload failed for %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "path": key})
}
