package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both sign-up and sign-in.
type authCredentials struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("api_bad_request_body", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      authCredentials  true  "credentials"
// @Success      200    {object}  map[string]string  "username"
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	sess, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		h.apiError(c, "auth_sign_up_error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": sess.User})
}

// @Summary      Obtain an API token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      authCredentials  true  "credentials"
// @Success      200    {object}  map[string]string  "token"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
		h.apiError(c, "auth_sign_in_error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
