package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/talentpipe/talentpipe/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// makeJWT builds an unsigned-but-parseable token with the given exp claim.
func makeJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]interface{}{"exp": exp.Unix(), "sub": "user-1"})
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestSignInCachesSessionAndNotifies(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	var gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAPIKey = r.Header.Get("apikey")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  makeJWT(t, exp),
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"user": map[string]interface{}{
				"id":            "user-1",
				"email":         "ana@example.com",
				"user_metadata": map[string]string{"name": "Ana"},
			},
		})
	}))
	defer srv.Close()

	st := testStore(t)
	m, err := NewManager(srv.URL, "anon-key", srv.Client(), st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	var notified *Session
	m.OnChange(func(s *Session) { notified = s })

	sess, err := m.SignIn(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey header = %q", gotAPIKey)
	}
	if sess.User.Email != "ana@example.com" || sess.User.Name != "Ana" {
		t.Errorf("unexpected user: %+v", sess.User)
	}
	if sess.ExpiresAt.Unix() != exp.Unix() {
		t.Errorf("expiry not taken from JWT: got %v want %v", sess.ExpiresAt, exp)
	}
	if notified == nil || notified.AccessToken != sess.AccessToken {
		t.Error("listener not notified synchronously with the new session")
	}

	// Session restored by a fresh manager from the same store
	m2, err := NewManager(srv.URL, "anon-key", srv.Client(), st)
	if err != nil {
		t.Fatalf("NewManager(restore): %v", err)
	}
	if cur := m2.CurrentSession(); cur == nil || cur.User.ID != "user-1" {
		t.Errorf("session not restored from store: %+v", cur)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`)
	}))
	defer srv.Close()

	m, err := NewManager(srv.URL, "anon-key", srv.Client(), testStore(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	_, err = m.SignIn(context.Background(), "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "invalid email or password" {
		t.Errorf("error not mapped to friendly text: %v", err)
	}
	if m.CurrentSession() != nil {
		t.Error("session should stay nil after failed sign-in")
	}
}

func TestSignOutClearsLocalStateEvenWhenRevokeFails(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/logout" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": makeJWT(t, exp),
			"expires_in":   3600,
			"user":         map[string]interface{}{"id": "user-1", "email": "ana@example.com"},
		})
	}))
	defer srv.Close()

	st := testStore(t)
	m, err := NewManager(srv.URL, "anon-key", srv.Client(), st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := m.SignIn(context.Background(), "ana@example.com", "secret"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var signedOut bool
	m.OnChange(func(s *Session) {
		if s == nil {
			signedOut = true
		}
	})

	_ = m.SignOut(context.Background())

	if m.CurrentSession() != nil {
		t.Error("session must be cleared locally even when revoke fails")
	}
	if !signedOut {
		t.Error("listener not notified of sign-out")
	}
	if saved, _ := st.GetSession(); saved != nil {
		t.Error("cached session not cleared from store")
	}
}

func TestClientInfoHeaderSentAndStable(t *testing.T) {
	var gotClientInfo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientInfo = r.Header.Get("X-Client-Info")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error_description":"Invalid login credentials"}`)
	}))
	defer srv.Close()

	st := testStore(t)
	m, err := NewManager(srv.URL, "anon-key", srv.Client(), st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.DeviceID() == "" {
		t.Fatal("no device id generated")
	}

	m.SignIn(context.Background(), "ana@example.com", "wrong")
	if gotClientInfo != "talentpipe/"+m.DeviceID() {
		t.Errorf("X-Client-Info = %q, want device id %q", gotClientInfo, m.DeviceID())
	}

	// Same install keeps the same id
	m2, err := NewManager(srv.URL, "anon-key", srv.Client(), st)
	if err != nil {
		t.Fatalf("NewManager(restore): %v", err)
	}
	if m2.DeviceID() != m.DeviceID() {
		t.Errorf("device id not stable across managers: %q vs %q", m2.DeviceID(), m.DeviceID())
	}
}

func TestExpiredSessionNotReturned(t *testing.T) {
	st := testStore(t)
	if err := st.SaveSession(&store.SavedSession{
		AccessToken: "stale",
		UserID:      "user-1",
		Email:       "ana@example.com",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	m, err := NewManager("http://127.0.0.1:0", "anon-key", http.DefaultClient, st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.CurrentSession() != nil {
		t.Error("expired cached session must not be reported as current")
	}
}
