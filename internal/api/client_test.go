package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/talentpipe/talentpipe/internal/auth"
	"github.com/talentpipe/talentpipe/internal/store"
	"github.com/talentpipe/talentpipe/pkg/models"
)

// loggedInManager builds a session manager holding a valid cached session.
func loggedInManager(t *testing.T) (*auth.Manager, *store.Store) {
	t.Helper()
	st, err := store.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.SaveSession(&store.SavedSession{
		AccessToken: "valid-token",
		UserID:      "user-1",
		Email:       "ana@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	m, err := auth.NewManager("http://127.0.0.1:0", "anon", http.DefaultClient, st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, st
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]interface{}{})
	}))
	defer srv.Close()

	sessions, _ := loggedInManager(t)
	c := NewClient(srv.URL, srv.Client(), sessions)

	if _, err := c.ListCandidates(context.Background()); err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if gotAuth != "Bearer valid-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sessions, st := loggedInManager(t)
	c := NewClient(srv.URL, srv.Client(), sessions)

	_, err := c.ListCandidates(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if sessions.CurrentSession() != nil {
		t.Error("session must be cleared after a 401")
	}
	if saved, _ := st.GetSession(); saved != nil {
		t.Error("cached session must be cleared after a 401")
	}
}

func TestForbiddenKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":"insufficient role"}`)
	}))
	defer srv.Close()

	sessions, _ := loggedInManager(t)
	c := NewClient(srv.URL, srv.Client(), sessions)

	_, err := c.ListCandidates(context.Background())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if sessions.CurrentSession() == nil {
		t.Error("a 403 must not invalidate the session")
	}
}

func TestBackendErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"email already registered"}`)
	}))
	defer srv.Close()

	sessions, _ := loggedInManager(t)
	c := NewClient(srv.URL, srv.Client(), sessions)

	_, err := c.CreateCandidate(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "email already registered"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not carry backend message %q", err, want)
	}
}

func TestStageMoveRequestShape(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/applications/7/stage" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		fmt.Fprint(w, `{"application":{"id":7,"stage":5,"status":"in_progress"}}`)
	}))
	defer srv.Close()

	sessions, _ := loggedInManager(t)
	c := NewClient(srv.URL, srv.Client(), sessions)

	moved, err := c.MoveStage(context.Background(), 7, &models.StageMove{Action: "specific", TargetStage: 5})
	if err != nil {
		t.Fatalf("MoveStage: %v", err)
	}
	if moved.Stage != 5 {
		t.Errorf("moved.Stage = %d, expected 5", moved.Stage)
	}
	if got["action"] != "specific" || got["target_stage"] != float64(5) {
		t.Errorf("unexpected request body: %v", got)
	}
}
