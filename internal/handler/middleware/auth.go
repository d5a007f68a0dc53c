package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"enrollhub/internal/domain/staff"
	"enrollhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

var roleHierarchy = map[staff.Role]int{
	staff.RoleOperator: 1,
	staff.RoleAdmin:    2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

func hasMinimumRole(staffRole, minRole staff.Role) bool {
	staffLevel, staffExists := roleHierarchy[staffRole]
	minLevel, minExists := roleHierarchy[minRole]
	return staffExists && minExists && staffLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStaffRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := staffID.(uuid.UUID)
	return id, ok
}

func GetStaffRole(c *gin.Context) (staff.Role, bool) {
	staffRole, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}

	role, ok := staffRole.(staff.Role)
	return role, ok
}
