package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"task_manager/internal/service"
	"task_manager/internal/session"

	"github.com/gin-gonic/gin"
)

// Notices shown after auth form submissions.
const (
	noticeUsernameTaken   = "Username already exists"
	noticeRegistered      = "Registration successful!"
	noticeWelcomePrefix   = "Welcome "
	noticeBadCredentials  = "Incorrect username or password"
	noticeLoggedOut       = "You have been logged out"
	noticeMissingFieldsPw = "Please enter a username and password"
)

// credentialsForm is the body of the register and login forms.
type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func profilePath(username string) string {
	return "/profile/" + url.PathEscape(username)
}

func (h *Handler) registerPage(c *gin.Context) {
	h.html(c, "register.html", "Register", nil)
}

func (h *Handler) register(c *gin.Context) {
	var form credentialsForm
	_ = c.ShouldBind(&form)

	sess, err := h.services.Register(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		h.redirectWithFlash(c, "/register", noticeUsernameTaken)
		return
	case errors.Is(err, service.ErrInvalidInput):
		h.redirectWithFlash(c, "/register", noticeMissingFieldsPw)
		return
	case err != nil:
		h.formFailure(c, "/register", "register_failed", err)
		return
	}

	if err := session.Save(c, sess); err != nil {
		h.formFailure(c, "/register", "session_save_failed", err)
		return
	}
	h.log.Infow("user_registered", "username", sess.User)
	h.redirectWithFlash(c, profilePath(sess.User), noticeRegistered)
}

func (h *Handler) loginPage(c *gin.Context) {
	h.html(c, "login.html", "Log In", nil)
}

func (h *Handler) login(c *gin.Context) {
	var form credentialsForm
	_ = c.ShouldBind(&form)

	sess, err := h.services.Login(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.log.Infow("login_failed", "username", form.Username)
		h.redirectWithFlash(c, "/login", noticeBadCredentials)
		return
	}
	if err != nil {
		h.formFailure(c, "/login", "login_error", err)
		return
	}

	if err := session.Save(c, sess); err != nil {
		h.formFailure(c, "/login", "session_save_failed", err)
		return
	}
	// the greeting echoes the name as typed
	h.redirectWithFlash(c, profilePath(sess.User), noticeWelcomePrefix+strings.TrimSpace(form.Username))
}

func (h *Handler) logout(c *gin.Context) {
	if err := session.AddFlash(c, noticeLoggedOut); err != nil {
		h.log.Errorw("session_save_failed", "err", err)
	}
	if err := session.Logout(c); err != nil {
		h.log.Errorw("session_clear_failed", "err", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// profile always shows the session user; the path segment is not trusted.
func (h *Handler) profile(c *gin.Context) {
	sess, err := session.Current(c)
	if err != nil {
		h.redirectWithFlash(c, "/login", noticeLoginRequired)
		return
	}

	u, err := h.services.Profile(c.Request.Context(), sess.User)
	if err != nil {
		h.formFailure(c, "/login", "profile_lookup_failed", err)
		return
	}
	if u == nil {
		// account vanished under a live cookie
		_ = session.Logout(c)
		h.redirectWithFlash(c, "/login", noticeLoginRequired)
		return
	}

	h.html(c, "profile.html", "Profile", gin.H{"username": u.Username})
}
