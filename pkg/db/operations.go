package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
)

// InsertURL inserts a URL and returns its ID. Duplicate URLs return the
// existing row's ID.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}

	result, err := db.Exec(`
		INSERT INTO urls (url, scheme, domain, path)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING
	`, rawURL, parsed.Scheme, parsed.Hostname(), parsed.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected > 0 {
		return result.LastInsertId()
	}

	return db.GetURLID(rawURL)
}

// GetURLID returns the ID for a previously inserted URL.
func (db *DB) GetURLID(rawURL string) (int64, error) {
	var urlID int64
	err := db.QueryRow("SELECT url_id FROM urls WHERE url = ?", rawURL).Scan(&urlID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("URL not found: %s", rawURL)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up URL: %w", err)
	}
	return urlID, nil
}

// ClassificationRecord is one classification outcome to persist.
type ClassificationRecord struct {
	ContentType       string
	ContentConfidence float64
	ContentMethod     string
	PageType          string
	PageConfidence    float64
	PageMethod        string
	Indicators        []string
	Language          string
	CostUSD           float64
	ElapsedSeconds    float64
}

// RecordClassification appends a classification to the URL's history and
// returns the new row's ID.
func (db *DB) RecordClassification(urlID int64, rec ClassificationRecord) (int64, error) {
	indicators, err := json.Marshal(rec.Indicators)
	if err != nil {
		return 0, fmt.Errorf("failed to encode indicators: %w", err)
	}

	language := rec.Language
	if language == "" {
		language = "und"
	}

	result, err := db.Exec(`
		INSERT INTO classifications (
			url_id, content_type, content_confidence, content_method,
			page_type, page_confidence, page_method,
			indicators, language, cost_usd, elapsed_seconds
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, urlID, rec.ContentType, rec.ContentConfidence, rec.ContentMethod,
		rec.PageType, rec.PageConfidence, rec.PageMethod,
		string(indicators), language, rec.CostUSD, rec.ElapsedSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to record classification: %w", err)
	}

	return result.LastInsertId()
}

// HistoryEntry is one row of classification history joined with its URL.
type HistoryEntry struct {
	ClassificationID  int64    `json:"classification_id"`
	URL               string   `json:"url"`
	ContentType       string   `json:"content_type"`
	ContentConfidence float64  `json:"content_confidence"`
	ContentMethod     string   `json:"content_method"`
	PageType          string   `json:"page_type"`
	PageConfidence    float64  `json:"page_confidence"`
	PageMethod        string   `json:"page_method"`
	Indicators        []string `json:"indicators"`
	Language          string   `json:"language"`
	CostUSD           float64  `json:"cost_usd"`
	ElapsedSeconds    float64  `json:"elapsed_seconds"`
	CreatedAt         string   `json:"created_at"`
}

const historySelect = `
	SELECT c.classification_id, u.url,
	       c.content_type, c.content_confidence, c.content_method,
	       c.page_type, c.page_confidence, c.page_method,
	       c.indicators, c.language, c.cost_usd, c.elapsed_seconds,
	       c.created_at
	FROM classifications c
	JOIN urls u ON u.url_id = c.url_id
`

// ListHistory returns the most recent classifications across all URLs.
func (db *DB) ListHistory(limit int) ([]HistoryEntry, error) {
	rows, err := db.Query(historySelect+`
		ORDER BY c.classification_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

// HistoryForURL returns the most recent classifications of one URL.
func (db *DB) HistoryForURL(rawURL string, limit int) ([]HistoryEntry, error) {
	rows, err := db.Query(historySelect+`
		WHERE u.url = ?
		ORDER BY c.classification_id DESC
		LIMIT ?
	`, rawURL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var indicators string
		err := rows.Scan(
			&entry.ClassificationID, &entry.URL,
			&entry.ContentType, &entry.ContentConfidence, &entry.ContentMethod,
			&entry.PageType, &entry.PageConfidence, &entry.PageMethod,
			&indicators, &entry.Language, &entry.CostUSD, &entry.ElapsedSeconds,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(indicators), &entry.Indicators); err != nil {
			entry.Indicators = nil
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
