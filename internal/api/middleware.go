package api

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextPrincipalKey = "principal"
)

// AuthMiddleware resolves the caller once per request. The token is read from
// the Authorization header ("Bearer <token>") or, failing that, from the
// session cookie set by Login.
func AuthMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c, cookieName)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		principal, err := authService.ParseToken(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}

func bearerToken(c *gin.Context, cookieName string) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookieName == "" {
		return "", false
	}
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RoleMiddleware creates middleware to check if user has the required role(s).
// Must run AFTER AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalFromContext(c)
		if !ok {
			// AuthMiddleware did not run for this route
			abortWithError(c, http.StatusInternalServerError, "User principal not found in context")
			return
		}

		if !slices.Contains(allowedRoles, principal.Role) {
			abortWithError(c, http.StatusForbidden, "Access denied: role '"+string(principal.Role)+"' does not have permission")
			return
		}

		c.Next()
	}
}

func principalFromContext(c *gin.Context) (domain.Principal, bool) {
	raw, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := raw.(domain.Principal)
	return principal, ok
}

// mustPrincipal fetches the principal for handlers behind AuthMiddleware and
// aborts the request when it is missing.
func mustPrincipal(c *gin.Context) (domain.Principal, bool) {
	principal, ok := principalFromContext(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Authentication required")
	}
	return principal, ok
}

// RequestLogger logs one line per request once the handler chain finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := log.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if principal, ok := principalFromContext(c); ok {
			fields["userId"] = principal.UserID.Hex()
		}
		entry := log.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Warn("request failed")
		case c.Request.URL.Path == "/ping":
			entry.Trace("request")
		default:
			entry.Debug("request")
		}
	}
}
