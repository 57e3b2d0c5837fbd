package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"task_manager/internal/models"
	"task_manager/internal/service"
	"task_manager/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerSess models.Session
	registerErr  error
	loginSess    models.Session
	loginErr     error
	profileUser  *models.User
	profileErr   error
	genToken     string
	genTokenErr  error
	parseUser    string
	parseErr     error

	registerCalls  int
	lastLoginUser  string
	lastGenUser    string
	lastParseToken string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (models.Session, error) {
	m.registerCalls++
	return m.registerSess, m.registerErr
}
func (m *mockAuth) Login(_ context.Context, username, password string) (models.Session, error) {
	m.lastLoginUser = username
	return m.loginSess, m.loginErr
}
func (m *mockAuth) Profile(_ context.Context, username string) (*models.User, error) {
	return m.profileUser, m.profileErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUser = username
	return m.genToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUser, m.parseErr
}

type mockTasks struct {
	tasks     []models.Task
	listErr   error
	createID  string
	createErr error
	task      *models.Task
	getErr    error
	updateErr error
	deleteErr error

	calls      int
	lastInput  service.TaskInput
	lastAuthor string
	lastID     string
	deleted    []string
}

func (m *mockTasks) List(context.Context) ([]models.Task, error) {
	return m.tasks, m.listErr
}
func (m *mockTasks) Create(_ context.Context, in service.TaskInput, createdBy string) (string, error) {
	m.calls++
	m.lastInput, m.lastAuthor = in, createdBy
	return m.createID, m.createErr
}
func (m *mockTasks) Get(_ context.Context, id string) (*models.Task, error) {
	m.lastID = id
	return m.task, m.getErr
}
func (m *mockTasks) Update(_ context.Context, id string, in service.TaskInput, editedBy string) error {
	m.calls++
	m.lastID, m.lastInput, m.lastAuthor = id, in, editedBy
	return m.updateErr
}
func (m *mockTasks) Delete(_ context.Context, id string) error {
	m.calls++
	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

type mockCategories struct {
	categories []models.Category
	listErr    error
	createID   string
	createErr  error
	category   *models.Category
	getErr     error
	updateErr  error

	calls    int
	lastID   string
	lastName string
}

func (m *mockCategories) List(context.Context) ([]models.Category, error) {
	return m.categories, m.listErr
}
func (m *mockCategories) Create(_ context.Context, name string) (string, error) {
	m.calls++
	m.lastName = name
	return m.createID, m.createErr
}
func (m *mockCategories) Get(_ context.Context, id string) (*models.Category, error) {
	m.lastID = id
	return m.category, m.getErr
}
func (m *mockCategories) Update(_ context.Context, id, name string) error {
	m.calls++
	m.lastID, m.lastName = id, name
	return m.updateErr
}

// ---- Shared Test Helpers ----

func newMockService() (*service.Service, *mockAuth, *mockTasks, *mockCategories) {
	auth, tasks, cats := &mockAuth{}, &mockTasks{}, &mockCategories{}
	return &service.Service{Authorization: auth, Tasks: tasks, Categories: cats}, auth, tasks, cats
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, session.NewStore("test-secret", 3600))
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// browser replays the session cookie between requests like a real client.
type browser struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, r *gin.Engine) *browser {
	return &browser{t: t, r: r, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(http.MethodPost, path, form)
}

// loginAs signs the browser in through the login form.
func (b *browser) loginAs(auth *mockAuth, user string) {
	b.t.Helper()
	auth.loginSess = models.Session{User: user}
	w := b.post("/login", url.Values{"username": {user}, "password": {"pw"}})
	if w.Code != http.StatusFound {
		b.t.Fatalf("login status=%d body=%s", w.Code, w.Body.String())
	}
	// drain the welcome notice
	b.get("/get_tasks")
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (body=%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}
