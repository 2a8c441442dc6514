package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
)

// SessionKey is the gin context key holding the caller's session.Session
const SessionKey = "session"

// SessionResolver turns a bearer token into a session
type SessionResolver interface {
	SessionFromToken(token string) (session.Session, error)
}

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		sess, err := resolver.SessionFromToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session set by AuthMiddleware
func GetSession(c *gin.Context) (session.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := value.(session.Session)
	return sess, ok
}

// RequireAdmin rejects sessions that do not belong to an admin
func RequireAdmin() gin.HandlerFunc {
	return requireKind(session.KindAdmin, "Admin access required")
}

// RequireCustomer rejects sessions that do not belong to a customer
func RequireCustomer() gin.HandlerFunc {
	return requireKind(session.KindCustomer, "Customer access required")
}

func requireKind(kind session.Kind, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if sess.Kind != kind {
			response.Forbidden(c, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission creates a middleware that requires a specific permission
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		if !sess.Can(permission) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
