package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/HasanAboShally/dayma/internal/core/services"
	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where the middleware stores the authenticated account id.
const ContextUserIDKey = "userID"

// AuthMiddleware guards the sync routes: it validates the bearer token and
// stores the account id under ContextUserIDKey for the handlers. A token
// whose account has since been deleted is rejected, so wiping an account
// also revokes its outstanding tokens.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := bearerToken(c)
		if errMsg != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			return
		}

		userID, err := tokenService.ValidateToken(token)
		if err != nil {
			msg := "invalid or expired token"
			if errors.Is(err, domain.ErrUserNotFound) {
				msg = "account no longer exists"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header. The scheme
// comparison is case-insensitive per RFC 7235.
func bearerToken(c *gin.Context) (token, errMsg string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", "authorization header required"
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", "invalid authorization header format"
	}

	return fields[1], ""
}

// GetUserID reads the account id a passing AuthMiddleware stored on the context.
func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
