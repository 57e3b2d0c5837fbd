package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"task_manager/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	s, _, _, _ := newMockService()
	h := NewHandler(s, nil, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws/tasks", 1 * time.Second},
		{"interval_string_valid", "/ws/tasks?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws/tasks?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws/tasks?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws/tasks?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws/tasks?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws/tasks?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws/tasks?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws/tasks?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func dialTasks(t *testing.T, r http.Handler, query url.Values) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/tasks"
	u.RawQuery = query.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func TestWebSocket_TaskStream_InitialAndPeriodic(t *testing.T) {
	s, _, tasks, _ := newMockService()
	tasks.tasks = []models.Task{
		{ID: "t1", CategoryName: "Home", TaskName: "Dishes", IsUrgent: true, CreatedBy: "alice"},
	}

	// full router: the feed must survive the gzip and session middleware
	conn := dialTasks(t, newTestRouter(s), url.Values{"interval_ms": {"20"}})

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "tasks" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got []models.Task
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal tasks: %v", err)
	}
	if len(got) != 1 || got[0].TaskName != "Dishes" || !got[0].IsUrgent {
		t.Fatalf("unexpected tasks: %+v", got)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "tasks" {
		t.Fatalf("expected type=tasks, got %+v", env)
	}
}

func TestWebSocket_EmptyListIsArray(t *testing.T) {
	s, _, _, _ := newMockService()
	conn := dialTasks(t, newTestRouter(s), nil)

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty array, got %s", env.Data)
	}
}

func TestWebSocket_InitialListError_Closes(t *testing.T) {
	s, _, tasks, _ := newMockService()
	tasks.listErr = errors.New("boom")

	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/ws/tasks", h.wsConnect)
	conn := dialTasks(t, r, nil)

	// The server should close immediately after failing the initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
