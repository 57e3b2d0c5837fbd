package handlers

import (
	"errors"
	"net/http"

	"task_manager/internal/service"
	"task_manager/internal/session"

	"github.com/gin-gonic/gin"
)

const noticeServerError = "Something went wrong, please try again"

// html renders a page with the layout fields every template expects.
func (h *Handler) html(c *gin.Context, name, title string, data gin.H) {
	h.htmlStatus(c, http.StatusOK, name, title, data)
}

func (h *Handler) htmlStatus(c *gin.Context, code int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	// flashes are popped before the body is written so the cookie update lands
	flashes := session.Flashes(c)
	if extra, ok := data["notice"].(string); ok && extra != "" {
		flashes = append(flashes, extra)
	}
	data["flashes"] = flashes
	if sess, err := session.Current(c); err == nil {
		data["user"] = sess.User
	}
	c.HTML(code, name, data)
}

// redirectWithFlash queues msg and sends a 302 to location.
func (h *Handler) redirectWithFlash(c *gin.Context, location, msg string) {
	if err := session.AddFlash(c, msg); err != nil {
		h.log.Errorw("session_save_failed", "err", err)
	}
	c.Redirect(http.StatusFound, location)
}

// formFailure turns a service error into a notice and sends the user back to location.
func (h *Handler) formFailure(c *gin.Context, location, event string, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		h.redirectWithFlash(c, location, invalidInputNotice(err))
		return
	}
	h.log.Errorw(event, "err", err, "path", c.Request.URL.Path)
	h.redirectWithFlash(c, location, noticeServerError)
}

func invalidInputNotice(err error) string {
	return "Please fill in all required fields (" + err.Error() + ")"
}

// Centralized error logging and response for the JSON API.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// apiError maps domain errors to status codes; anything unknown is a logged 500.
func (h *Handler) apiError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err)
	}
}
