package handlers

import (
	"net/http"
	"strings"
	"time"

	"task_manager/internal/session"

	"github.com/gin-gonic/gin"
)

// ctxUserKey is the gin context key holding the authenticated username.
const ctxUserKey = "username"

const noticeLoginRequired = "Please log in to continue"

// userIdentity authenticates API calls with a Bearer token.
func (h *Handler) userIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	username, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserKey, username)
	c.Next()
}

// requireLogin guards pages that need a session user.
func (h *Handler) requireLogin(c *gin.Context) {
	sess, err := session.Current(c)
	if err != nil {
		h.redirectWithFlash(c, "/login", noticeLoginRequired)
		c.Abort()
		return
	}
	c.Set(ctxUserKey, sess.User)
	c.Next()
}

// requestLogger writes one structured line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
