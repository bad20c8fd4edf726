package devserver

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/auth"
	"github.com/dmitrijs2005/sitrack/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	usernameContextKey = "username"
	roleContextKey     = "role"
)

func identity(c *gin.Context) (username, role string) {
	return c.GetString(usernameContextKey), c.GetString(roleContextKey)
}

// RequireAuth accepts requests carrying a valid bearer token and stores its
// username and role in the context.
func RequireAuth(cfg auth.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			fail(c, http.StatusUnauthorized, "Token tidak ditemukan")
			return
		}

		claims, err := auth.VerifyToken(token, cfg)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Token tidak valid")
			return
		}

		c.Set(usernameContextKey, claims.Username)
		c.Set(roleContextKey, claims.Role)
		c.Next()
	}
}

// RequireRole lets through only the listed roles. It must run after
// RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, role := identity(c); !slices.Contains(roles, role) {
			fail(c, http.StatusForbidden, "Akses ditolak")
			return
		}
		c.Next()
	}
}

func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
			"duration", time.Since(started),
		)
	}
}
