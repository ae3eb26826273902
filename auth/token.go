package auth

import (
	"fmt"
	"time"

	"showoffs-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

// Demo tokens accepted in place of a real session. They let the dashboard
// run against an unconfigured backend.
const (
	DemoToken      = "demo-token"
	DemoAdminToken = "demo-admin-token"
)

// Identity is the resolved caller of an admin request
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IsDemo reports whether the identity came from a demo token
func (i Identity) IsDemo() bool {
	return i.ID == "demo"
}

// IssueToken signs a 24h HS256 session token for an admin account
func IssueToken(secret string, user *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken resolves an identity from a bearer token: a valid session
// JWT or one of the demo tokens. Returns nil when the token is invalid.
func VerifyToken(secret, tokenString string) *Identity {
	if tokenString == "" {
		return nil
	}

	if secret != "" {
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				id, _ := claims["sub"].(string)
				email, _ := claims["email"].(string)
				return &Identity{ID: id, Email: email}
			}
		}
	}

	if tokenString == DemoToken || tokenString == DemoAdminToken {
		return &Identity{ID: "demo", Email: "demo@local"}
	}
	return nil
}
