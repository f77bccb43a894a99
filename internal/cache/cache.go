package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"ainews/internal/classify"
	"ainews/internal/news"
)

// Store persists the last successful aggregation run in a local sqlite
// file. The entry is replaced wholesale inside one transaction, so readers
// never observe a partial write. Freshness is the caller's decision; the
// store only reports what it has and when it was fetched.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			position    INTEGER PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			link        TEXT NOT NULL,
			source      TEXT NOT NULL,
			image_url   TEXT NOT NULL,
			category    TEXT NOT NULL,
			published   DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save overwrites the cached entry with a fresh aggregation run.
func (s *Store) Save(entry news.CacheEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing articles: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO articles (position, title, description, link, source, image_url, category, published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range entry.Articles {
		_, err := stmt.Exec(i, a.Title, a.Description, a.Link, a.Source, a.ImageURL, string(a.Category), a.PublishedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting article %d: %w", i, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO meta (key, value) VALUES ('fetched_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, entry.FetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording fetch time: %w", err)
	}

	return tx.Commit()
}

// Load returns the cached entry. Anything malformed — missing timestamp,
// unreadable rows, an unknown category — is treated as a miss so the caller
// simply refetches.
func (s *Store) Load() (news.CacheEntry, bool) {
	var entry news.CacheEntry

	var raw string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'fetched_at'`).Scan(&raw)
	if err != nil {
		return entry, false
	}
	fetchedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return entry, false
	}

	rows, err := s.db.Query(`
		SELECT title, description, link, source, image_url, category, published
		FROM articles ORDER BY position
	`)
	if err != nil {
		return entry, false
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var a news.Article
		var cat, published string
		if err := rows.Scan(&a.Title, &a.Description, &a.Link, &a.Source, &a.ImageURL, &cat, &published); err != nil {
			return entry, false
		}
		a.Category = classify.Category(cat)
		if !a.Category.Valid() {
			return entry, false
		}
		a.PublishedAt, err = time.Parse(time.RFC3339, published)
		if err != nil {
			return entry, false
		}
		articles = append(articles, a)
	}
	if rows.Err() != nil {
		return entry, false
	}

	entry.Articles = articles
	entry.FetchedAt = fetchedAt
	return entry, true
}

// Clear drops the cached entry entirely.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM meta`); err != nil {
		return err
	}
	return tx.Commit()
}

// Stats reports the cached article count, fetch time and file size.
func (s *Store) Stats(dbPath string) (count int, fetchedAt time.Time, size int64, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, time.Time{}, 0, fmt.Errorf("counting articles: %w", err)
	}

	var raw string
	if scanErr := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'fetched_at'`).Scan(&raw); scanErr == nil {
		fetchedAt, _ = time.Parse(time.RFC3339, raw)
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		return count, fetchedAt, 0, fmt.Errorf("reading cache file: %w", err)
	}
	return count, fetchedAt, info.Size(), nil
}
