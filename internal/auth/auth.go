package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/talentpipe/talentpipe/internal/store"
)

// User is the authenticated account as the auth provider reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is the live auth state: token pair plus the user it belongs to.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         User
	ExpiresAt    time.Time
}

// Expired reports whether the access token is past its expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Listener receives every session change. A nil session means signed out.
type Listener func(*Session)

// Manager wraps the external auth provider's session/sign-in/sign-out calls
// and keeps the cached session in the local store. There is exactly one
// Manager per process, created at startup and injected everywhere else.
type Manager struct {
	baseURL    string
	anonKey    string
	deviceID   string
	httpClient *http.Client
	store      *store.Store

	mu        sync.Mutex
	current   *Session
	listeners []Listener
}

// NewManager creates the session manager and restores any cached session.
func NewManager(authURL, anonKey string, httpClient *http.Client, st *store.Store) (*Manager, error) {
	m := &Manager{
		baseURL:    strings.TrimRight(authURL, "/"),
		anonKey:    anonKey,
		httpClient: httpClient,
		store:      st,
	}

	saved, err := st.GetSession()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if saved != nil {
		m.current = &Session{
			AccessToken:  saved.AccessToken,
			RefreshToken: saved.RefreshToken,
			User:         User{ID: saved.UserID, Email: saved.Email, Name: saved.Name},
			ExpiresAt:    saved.ExpiresAt,
		}
	}

	// One stable device id per install, sent to the provider as client info.
	deviceID, err := st.GetPreference("device_id")
	if err != nil || deviceID == "" {
		deviceID = uuid.NewString()
		_ = st.SetPreference("device_id", deviceID)
	}
	m.deviceID = deviceID

	return m, nil
}

// DeviceID returns the stable per-install identifier attached to every auth
// provider request.
func (m *Manager) DeviceID() string {
	return m.deviceID
}

// OnChange registers a listener invoked synchronously on every session
// change, before the triggering call returns.
func (m *Manager) OnChange(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// CurrentSession returns the active session, or nil when signed out or the
// cached token has expired.
func (m *Manager) CurrentSession() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.Expired() {
		return nil
	}
	return m.current
}

// tokenResponse is the provider's password-grant / signup response body.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Name string `json:"name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// SignIn authenticates with email and password and caches the session.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := m.post(ctx, "/auth/v1/token?grant_type=password", body, &resp); err != nil {
		return nil, err
	}
	return m.adopt(&resp)
}

// SignUp registers a new account. Depending on provider settings the session
// may require email confirmation before sign-in succeeds.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) error {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name},
	}
	return m.post(ctx, "/auth/v1/signup", body, nil)
}

// ResetPassword asks the provider to send a recovery email.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	return m.post(ctx, "/auth/v1/recover", map[string]string{"email": email}, nil)
}

// SignOut revokes the session server-side and always clears local state,
// even when the revoke call fails.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	token := ""
	if m.current != nil {
		token = m.current.AccessToken
	}
	m.mu.Unlock()

	var revokeErr error
	if token != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/auth/v1/logout", nil)
		if err == nil {
			req.Header.Set("apikey", m.anonKey)
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("X-Client-Info", "talentpipe/"+m.deviceID)
			resp, err := m.httpClient.Do(req)
			if err != nil {
				revokeErr = err
			} else {
				resp.Body.Close()
			}
		}
	}

	m.Invalidate()
	return revokeErr
}

// Invalidate drops the session locally and notifies listeners. Used on
// sign-out and whenever the backend answers 401.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.current = nil
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	_ = m.store.ClearSession()
	for _, fn := range listeners {
		fn(nil)
	}
}

// adopt installs a fresh token response as the current session.
func (m *Manager) adopt(resp *tokenResponse) (*Session, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("auth provider returned no access token")
	}

	sess := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User: User{
			ID:    resp.User.ID,
			Email: resp.User.Email,
			Name:  resp.User.UserMetadata.Name,
		},
		ExpiresAt: tokenExpiry(resp.AccessToken, resp.ExpiresIn),
	}

	if err := m.store.SaveSession(&store.SavedSession{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		UserID:       sess.User.ID,
		Email:        sess.User.Email,
		Name:         sess.User.Name,
		ExpiresAt:    sess.ExpiresAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}

	m.mu.Lock()
	m.current = sess
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
	return sess, nil
}

// tokenExpiry reads the exp claim from the access token without verifying
// the signature; verification is the backend's job. Falls back to the
// expires_in hint.
func tokenExpiry(token string, expiresIn int) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if expiresIn > 0 {
		return time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	return time.Time{}
}

// post sends a JSON request to the auth provider and decodes the response.
func (m *Manager) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", m.anonKey)
	req.Header.Set("X-Client-Info", "talentpipe/"+m.deviceID)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s", friendlyAuthError(data, resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unexpected auth response: %w", err)
		}
	}
	return nil
}

// friendlyAuthError maps known provider messages to user-readable text and
// falls back to the raw message.
func friendlyAuthError(body []byte, status int) string {
	var parsed struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
	}
	_ = json.Unmarshal(body, &parsed)

	msg := parsed.ErrorDescription
	if msg == "" {
		msg = parsed.Msg
	}
	if msg == "" {
		msg = parsed.Error
	}

	switch {
	case strings.Contains(msg, "Invalid login credentials"):
		return "invalid email or password"
	case strings.Contains(msg, "Email not confirmed"):
		return "email not confirmed yet, check your inbox for the confirmation link"
	case strings.Contains(msg, "User already registered"):
		return "an account with this email already exists"
	case msg != "":
		return msg
	default:
		return fmt.Sprintf("auth provider error (status %d)", status)
	}
}
