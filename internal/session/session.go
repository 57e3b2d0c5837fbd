package session

import (
	"errors"
	"net/http"

	"task_manager/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// CookieName is the name of the signed session cookie.
const CookieName = "task_manager"

const userKey = "user"

// ErrMissingSession is returned when no user is logged in.
var ErrMissingSession = errors.New("no active session")

// NewStore builds a cookie store signed with secret. maxAge is in seconds.
func NewStore(secret string, maxAge int) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Middleware attaches the session to every request.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(CookieName, store)
}

// Save marks sess.User as logged in. An empty session is refused.
func Save(c *gin.Context, sess models.Session) error {
	if sess.IsZero() {
		return ErrMissingSession
	}
	s := sessions.Default(c)
	s.Set(userKey, sess.User)
	return s.Save()
}

// Current returns the logged in user or ErrMissingSession.
func Current(c *gin.Context) (models.Session, error) {
	s := sessions.Default(c)
	if user, ok := s.Get(userKey).(string); ok && user != "" {
		return models.Session{User: user}, nil
	}
	return models.Session{}, ErrMissingSession
}

// Logout drops the user but keeps pending flashes so the next page can show them.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userKey)
	return s.Save()
}

// AddFlash queues a one-shot notice for the next rendered page.
func AddFlash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// Flashes pops all queued notices. It must run before the response body is written.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
