// Package sqlite provides durable key-value workspace storage backed by
// SQLite. Two keys are stored: the document list (a JSON array of
// document records) and the active document id.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Storage keys.
const (
	keyDocuments = "workspace.documents"
	keyActive    = "workspace.active"
)

// Ensure Store implements the interface.
var _ driven.WorkspaceStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.WorkspaceStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a workspace store at the specified data directory.
// If dataDir is empty, defaults to ~/.inkwell/data/workspace.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".inkwell", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "workspace.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// documentRecord is the persisted JSON form of a document. Timestamps
// are unix milliseconds.
type documentRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// LoadDocuments reads and decodes the persisted document list.
func (s *Store) LoadDocuments() ([]domain.Document, error) {
	raw, err := s.get(keyDocuments)
	if err != nil {
		return nil, err
	}

	var records []documentRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding document list: %w", err)
	}

	docs := make([]domain.Document, len(records))
	for i, rec := range records {
		docs[i] = domain.Document{
			ID:        rec.ID,
			Title:     rec.Title,
			Content:   rec.Content,
			CreatedAt: time.UnixMilli(rec.CreatedAt).UTC(),
			UpdatedAt: time.UnixMilli(rec.UpdatedAt).UTC(),
		}
	}
	return docs, nil
}

// SaveDocuments re-serialises the full document list.
func (s *Store) SaveDocuments(docs []domain.Document) error {
	records := make([]documentRecord, len(docs))
	for i, doc := range docs {
		records[i] = documentRecord{
			ID:        doc.ID,
			Title:     doc.Title,
			Content:   doc.Content,
			CreatedAt: doc.CreatedAt.UnixMilli(),
			UpdatedAt: doc.UpdatedAt.UnixMilli(),
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding document list: %w", err)
	}
	return s.set(keyDocuments, string(data))
}

// LoadActiveID reads the persisted active document id.
func (s *Store) LoadActiveID() (string, error) {
	return s.get(keyActive)
}

// SaveActiveID persists the active document id.
func (s *Store) SaveActiveID(id string) error {
	return s.set(keyActive, id)
}

// get reads one key, mapping a missing row to domain.ErrNoWorkspace.
func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNoWorkspace
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// set upserts one key.
func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
