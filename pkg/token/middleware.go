package token

import (
	"strings"

	"social-platform/internal/apperr"
	"social-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey is the gin context key for the caller's user id.
	ContextUserIDKey = "user_id"
	// ContextIsAdminKey is the gin context key for the caller's role.
	ContextIsAdminKey = "is_admin"
)

// AuthMiddleware extracts Authorization: Bearer <token>, validates it
// and stores the caller's id and role in the gin context.
func (s *Service) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.FromError(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := s.Validate(tokenString)
		if err != nil {
			response.FromError(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.FromError(c, apperr.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextIsAdminKey, claims.Admin)
		c.Next()
	}
}

// AdminMiddleware rejects callers without the admin role. It must run
// after AuthMiddleware.
func (s *Service) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.FromError(c, apperr.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id, 0 if unset.
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	if v, exists := c.Get(ContextIsAdminKey); exists {
		if admin, ok := v.(bool); ok {
			return admin
		}
	}
	return false
}
