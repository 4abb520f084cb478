package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wiselydiary/backend/internal/db"
	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/snowflake"
)

// NewTestDB opens a migrated SQLite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// SeedDiary inserts d directly and returns its ID. Zero fields get defaults.
func SeedDiary(t *testing.T, database *sql.DB, d model.Diary) int64 {
	t.Helper()

	if d.ID == 0 {
		d.ID = snowflake.NextID()
	}
	if d.Status == "" {
		d.Status = model.DiaryStatusExist
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	_, err := database.Exec(
		`INSERT INTO diaries (id, member_id, contents, emotion_code, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.MemberID, d.Contents, d.EmotionCode, string(d.Status), d.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000Z"),
	)
	require.NoError(t, err)
	return d.ID
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, database.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n))
	return n
}
