package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the local SQLite store for the small bits of state that outlive a
// run: UI preferences and the cached auth session. Every record the backend
// owns is fetched fresh and never persisted here.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at the default location.
func Open() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".talentpipe")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create talentpipe directory: %w", err)
	}

	return OpenPath(filepath.Join(dir, "talentpipe.db"))
}

// OpenPath opens the store at an explicit path.
func OpenPath(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// runMigrations creates all necessary tables
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK(id = 1),
		access_token TEXT NOT NULL,
		refresh_token TEXT,
		user_id TEXT NOT NULL,
		email TEXT NOT NULL,
		name TEXT,
		expires_at DATETIME NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(schema)
	return err
}

// SetPreference stores a small UI preference value.
func (s *Store) SetPreference(key, value string) error {
	query := `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`
	_, err := s.db.Exec(query, key, value, time.Now())
	return err
}

// GetPreference returns a preference value, or "" when unset.
func (s *Store) GetPreference(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key=?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SavedSession is the persisted form of an auth session.
type SavedSession struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	Name         string
	ExpiresAt    time.Time
}

// SaveSession replaces the cached session. There is at most one.
func (s *Store) SaveSession(sess *SavedSession) error {
	query := `INSERT INTO session (id, access_token, refresh_token, user_id, email, name, expires_at, saved_at)
			  VALUES (1, ?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET
				access_token=excluded.access_token,
				refresh_token=excluded.refresh_token,
				user_id=excluded.user_id,
				email=excluded.email,
				name=excluded.name,
				expires_at=excluded.expires_at,
				saved_at=excluded.saved_at`
	_, err := s.db.Exec(query, sess.AccessToken, sess.RefreshToken, sess.UserID,
		sess.Email, sess.Name, sess.ExpiresAt, time.Now())
	return err
}

// GetSession returns the cached session, or nil when none is stored.
func (s *Store) GetSession() (*SavedSession, error) {
	query := `SELECT access_token, refresh_token, user_id, email, name, expires_at FROM session WHERE id=1`
	sess := &SavedSession{}
	var refresh, name sql.NullString
	err := s.db.QueryRow(query).Scan(&sess.AccessToken, &refresh, &sess.UserID,
		&sess.Email, &name, &sess.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess.RefreshToken = refresh.String
	sess.Name = name.String
	return sess, nil
}

// ClearSession removes the cached session.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id=1`)
	return err
}
