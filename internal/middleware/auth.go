package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/pkg/jwt"
	"github.com/msadmin/core/internal/pkg/response"
)

const contextKeyUser = "auth_user"

// Auth returns a middleware that enforces a valid session token.
func Auth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := signer.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(contextKeyUser, claims.User())
		c.Next()
	}
}

// OptionalAuth sets the identity if a valid token is present, but does
// not block the request.
func OptionalAuth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := signer.Parse(token); err == nil {
				c.Set(contextKeyUser, claims.User())
			}
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated identity from context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// IsAuthenticated reports whether the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := CurrentUser(c)
	return ok
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
