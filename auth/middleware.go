package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const identityKey = "admin_identity"

// RequireAdmin guards admin routes: the caller must present a valid
// bearer token, and a database must be configured. The two checks fail
// with 401 and 503 respectively; on success the resolved identity is set
// into the request context.
func RequireAdmin(db *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		identity := VerifyToken(secret, token)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not configured. Add env vars to persist data."})
			c.Abort()
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// IdentityFrom returns the admin identity resolved by RequireAdmin
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
