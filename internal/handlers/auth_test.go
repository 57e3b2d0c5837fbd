package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task_manager/internal/models"
	"task_manager/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_SignUpAndSignIn(t *testing.T) {
	s, auth, _, _ := newMockService()
	auth.registerSess = models.Session{User: "u"}
	auth.genToken = "tok123"
	r := newTestRouter(s)

	// sign-up success
	w := postJSON(r, "/auth/sign-up", `{"username":"U","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["username"] != "u" {
		t.Fatalf("expected username=u, got %v", m["username"])
	}

	// sign-in success
	w = postJSON(r, "/auth/sign-in", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if auth.lastGenUser != "u" {
		t.Fatalf("GenerateToken got user %q", auth.lastGenUser)
	}

	// sign-in invalid body → 400
	w = postJSON(r, "/auth/sign-in", `{"username":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_SignUpErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"taken", service.ErrUsernameTaken, http.StatusConflict},
		{"invalid", service.ErrInvalidInput, http.StatusBadRequest},
		{"store down", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, auth, _, _ := newMockService()
			auth.registerErr = tc.err
			r := newTestRouter(s)

			w := postJSON(r, "/auth/sign-up", `{"username":"u","password":"p"}`)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_SignUpMissingField(t *testing.T) {
	s, auth, _, _ := newMockService()
	r := newTestRouter(s)

	w := postJSON(r, "/auth/sign-up", `{"username":"u"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if auth.registerCalls != 0 {
		t.Fatalf("Register should not be called on a bad body")
	}
}

func TestAuthHandlers_SignInWrongPassword(t *testing.T) {
	s, auth, _, _ := newMockService()
	auth.genTokenErr = service.ErrInvalidCredentials
	r := newTestRouter(s)

	w := postJSON(r, "/auth/sign-in", `{"username":"u","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "invalid credentials" {
		t.Fatalf("unexpected error message %q", out.Error)
	}
}

func TestHealth(t *testing.T) {
	s, _, _, _ := newMockService()
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"ok"`)) {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}
