// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of completed generations in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Jack999Lab/content-api/pkg/types"
)

const dbFile = "content.db"

// Store manages the generation history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at dataDir/content.db,
// creating the schema when it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL,
		keywords TEXT,
		tone TEXT,
		word_count INTEGER,
		seo_score INTEGER,
		uniqueness_score REAL,
		content TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_generations_created_at
		ON generations(created_at)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one completed generation and returns its row ID.
func (s *Store) Record(ctx context.Context, result types.GenerationResult) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations
			(id, topic, keywords, tone, word_count, seo_score, uniqueness_score, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, result.Topic, result.Keywords, string(result.Tone),
		result.WordCount, result.SEOScore, result.UniquenessScore,
		result.Content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting generation: %w", err)
	}
	return id, nil
}

// Recent returns up to limit history entries, newest first. A limit of 0
// uses the configured default. Content bodies are not loaded.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, keywords, tone, word_count, seo_score, uniqueness_score, created_at
		 FROM generations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var tone, createdAt string
		if err := rows.Scan(&e.ID, &e.Topic, &e.Keywords, &tone,
			&e.WordCount, &e.SEOScore, &e.UniquenessScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning generation row: %w", err)
		}
		e.Tone = types.Tone(tone)
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Content returns the stored content body for one generation.
func (s *Store) Content(ctx context.Context, id string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM generations WHERE id = ?`, id).Scan(&content)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("generation %s not found", id)
	}
	if err != nil {
		return "", fmt.Errorf("querying content: %w", err)
	}
	return content, nil
}
