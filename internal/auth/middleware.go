package auth

import (
	"net/http"
	"strings"

	"leave-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const authClaimsKey = "auth_claims"

// AuthMiddleware provides JWT authentication and role checks
type AuthMiddleware struct {
	service   *AuthService
	adminRole string
	staffRole string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, adminRole, staffRole string) *AuthMiddleware {
	return &AuthMiddleware{service: service, adminRole: adminRole, staffRole: staffRole}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("handle", claims.Handle)
		c.Set(authClaimsKey, claims)

		actor := claims.Handle
		if actor == "" {
			actor = claims.UserID
		}
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), actor))

		c.Next()
	}
}

// RequireLeaveAccess admits human users holding the staff or admin role
func (m *AuthMiddleware) RequireLeaveAccess() gin.HandlerFunc {
	return m.requireRoles("You must have '"+m.staffRole+"' or '"+m.adminRole+"' role to access this resource",
		m.staffRole, m.adminRole)
}

// RequireAdmin admits human users holding the admin role
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireRoles("Only administrators can manage Wipro holidays", m.adminRole)
}

func (m *AuthMiddleware) requireRoles(forbidden string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if claims.IsMachine {
			c.JSON(http.StatusForbidden, gin.H{"error": "M2M tokens are not allowed for this service"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": forbidden})
		c.Abort()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetActor returns the handle of the authenticated user, falling back to the user id
func GetActor(c *gin.Context) string {
	if handle, ok := c.Get("handle"); ok {
		if h, ok := handle.(string); ok && h != "" {
			return h
		}
	}
	id, _ := GetUserID(c)
	return id
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
