package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS diaries (
  id INTEGER PRIMARY KEY,
  member_id TEXT NOT NULL,
  contents TEXT NOT NULL,
  emotion_code INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'EXIST',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS diary_summaries (
  id INTEGER PRIMARY KEY,
  diary_id INTEGER NOT NULL,
  contents TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (diary_id) REFERENCES diaries(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS documents (
  id INTEGER PRIMARY KEY,
  source_id TEXT NOT NULL,
  file_name TEXT NOT NULL,
  store_type TEXT NOT NULL,
  chunk_index INTEGER NOT NULL,
  content TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_store_type ON documents(store_type);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: member/day lookups scan by (member_id, created_at)
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_diaries_member_created ON diaries(member_id, created_at)`); err != nil {
		return fmt.Errorf("create idx_diaries_member_created: %w", err)
	}

	// Migration 2: one summary per diary; the upsert path relies on it
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_diary_summaries_diary_id ON diary_summaries(diary_id)`); err != nil {
		return fmt.Errorf("create idx_diary_summaries_diary_id: %w", err)
	}

	// Migration 3: track when a summary was last regenerated
	if err := addColumnIfMissing(db, "diary_summaries", "updated_at", `ALTER TABLE diary_summaries ADD COLUMN updated_at TEXT`); err != nil {
		return err
	}

	// Migration 4: embeddings for uploaded document chunks (little-endian float32)
	if err := addColumnIfMissing(db, "documents", "embedding", `ALTER TABLE documents ADD COLUMN embedding BLOB`); err != nil {
		return err
	}

	return nil
}

func addColumnIfMissing(db *sql.DB, table, column, ddl string) error {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check %s.%s column: %w", table, column, err)
	}

	if count == 0 {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("add %s.%s column: %w", table, column, err)
		}
	}
	return nil
}
