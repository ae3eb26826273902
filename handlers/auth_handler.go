package handlers

import (
	"log"
	"net/http"

	"showoffs-backend/auth"
	"showoffs-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles admin login and password changes
type AuthHandler struct {
	adminUsers   *repository.AdminUserRepository // nil when no database is configured
	jwtSecret    string
	demoEmail    string
	demoPassword string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminUsers *repository.AdminUserRepository, jwtSecret, demoEmail, demoPassword string) *AuthHandler {
	return &AuthHandler{
		adminUsers:   adminUsers,
		jwtSecret:    jwtSecret,
		demoEmail:    demoEmail,
		demoPassword: demoPassword,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	// Demo credentials work without any backend configured
	if req.Email == h.demoEmail && req.Password == h.demoPassword {
		c.JSON(http.StatusOK, gin.H{"token": auth.DemoAdminToken})
		return
	}

	if h.adminUsers == nil || h.jwtSecret == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := h.adminUsers.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, user)
	if err != nil {
		log.Printf("Failed to issue session token for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ChangePasswordRequest is the change-password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles POST /api/admin/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if identity.IsDemo() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Demo session cannot change passwords"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_password and new_password required"})
		return
	}
	if len(req.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_password must be at least 8 characters"})
		return
	}

	user, err := h.adminUsers.GetByEmail(c.Request.Context(), identity.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.adminUsers.UpdatePassword(c.Request.Context(), user.ID, string(hashed)); err != nil {
		log.Printf("Failed to update password for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseIDQuery reads a required uuid id from the query string
func parseIDQuery(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// internalError logs the underlying failure and returns a generic 500
func internalError(c *gin.Context, op string, err error) {
	log.Printf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

// dbUnconfigured rejects a public read when the server runs without a
// database (demo mode).
func dbUnconfigured(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured. Add env vars to persist data."})
}
