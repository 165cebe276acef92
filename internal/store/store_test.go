package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a temporary test store
func createTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir := t.TempDir()
	s, err := OpenPath(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferenceRoundTrip(t *testing.T) {
	s := createTestStore(t)

	if err := s.SetPreference("remember_email", "ana@example.com"); err != nil {
		t.Fatalf("failed to set preference: %v", err)
	}

	got, err := s.GetPreference("remember_email")
	if err != nil {
		t.Fatalf("failed to get preference: %v", err)
	}
	if got != "ana@example.com" {
		t.Errorf("GetPreference = %q, expected %q", got, "ana@example.com")
	}

	// Overwrite wins
	if err := s.SetPreference("remember_email", "bruno@example.com"); err != nil {
		t.Fatalf("failed to overwrite preference: %v", err)
	}
	got, _ = s.GetPreference("remember_email")
	if got != "bruno@example.com" {
		t.Errorf("GetPreference after overwrite = %q", got)
	}
}

func TestGetPreferenceMissing(t *testing.T) {
	s := createTestStore(t)

	got, err := s.GetPreference("never_set")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty value for missing preference, got %q", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := createTestStore(t)

	// No session yet
	sess, err := s.GetSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess != nil {
		t.Fatal("expected nil session before save")
	}

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	saved := &SavedSession{
		AccessToken:  "token-abc",
		RefreshToken: "refresh-xyz",
		UserID:       "user-1",
		Email:        "ana@example.com",
		Name:         "Ana",
		ExpiresAt:    expires,
	}
	if err := s.SaveSession(saved); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	sess, err = s.GetSession()
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session after save")
	}
	if sess.AccessToken != "token-abc" || sess.Email != "ana@example.com" {
		t.Errorf("session data doesn't match: %+v", sess)
	}

	// Saving again replaces, never duplicates
	saved.AccessToken = "token-def"
	if err := s.SaveSession(saved); err != nil {
		t.Fatalf("failed to replace session: %v", err)
	}
	sess, _ = s.GetSession()
	if sess.AccessToken != "token-def" {
		t.Errorf("expected replaced token, got %q", sess.AccessToken)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	sess, _ = s.GetSession()
	if sess != nil {
		t.Error("expected nil session after clear")
	}
}
