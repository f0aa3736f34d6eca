package db

// schema holds the full database schema. Every statement is idempotent so
// InitSchema can run against an existing database.
const schema = `
CREATE TABLE IF NOT EXISTS urls (
    url_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    url         TEXT NOT NULL UNIQUE,
    scheme      TEXT NOT NULL DEFAULT '',
    domain      TEXT NOT NULL DEFAULT '',
    path        TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_urls_domain ON urls(domain);

CREATE TABLE IF NOT EXISTS classifications (
    classification_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    url_id              INTEGER NOT NULL REFERENCES urls(url_id) ON DELETE CASCADE,
    content_type        TEXT NOT NULL,
    content_confidence  REAL NOT NULL,
    content_method      TEXT NOT NULL,
    page_type           TEXT NOT NULL DEFAULT '',
    page_confidence     REAL NOT NULL DEFAULT 0,
    page_method         TEXT NOT NULL DEFAULT '',
    indicators          TEXT NOT NULL DEFAULT '[]',
    language            TEXT NOT NULL DEFAULT 'und',
    cost_usd            REAL NOT NULL DEFAULT 0,
    elapsed_seconds     REAL NOT NULL DEFAULT 0,
    created_at          TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_classifications_url ON classifications(url_id);
CREATE INDEX IF NOT EXISTS idx_classifications_created ON classifications(created_at);
`
