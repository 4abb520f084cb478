package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/snowflake"
)

type DiarySummaryRepository interface {
	// GetByDiaryID returns nil without error when the diary has no summary.
	GetByDiaryID(ctx context.Context, diaryID int64) (*model.DiarySummary, error)
	// Save inserts when summary.ID is zero and updates the existing row otherwise.
	Save(ctx context.Context, summary model.DiarySummary) (model.DiarySummary, error)
}

type diarySummaryRepository struct {
	db dbtx
}

func NewDiarySummaryRepository(db dbtx) DiarySummaryRepository {
	return &diarySummaryRepository{db: db}
}

func (r *diarySummaryRepository) GetByDiaryID(ctx context.Context, diaryID int64) (*model.DiarySummary, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, diary_id, contents, created_at, updated_at FROM diary_summaries WHERE diary_id = ?`,
		diaryID,
	)

	var s model.DiarySummary
	var createdAt string
	var updatedAt sql.NullString
	err := row.Scan(&s.ID, &s.DiaryID, &s.Contents, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = parseTime(createdAt)
	s.UpdatedAt = s.CreatedAt
	if updatedAt.Valid {
		s.UpdatedAt, _ = parseTime(updatedAt.String)
	}
	return &s, nil
}

func (r *diarySummaryRepository) Save(ctx context.Context, summary model.DiarySummary) (model.DiarySummary, error) {
	now := time.Now()

	if summary.ID == 0 {
		summary.ID = snowflake.NextID()
		summary.CreatedAt = now
		summary.UpdatedAt = now
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO diary_summaries (id, diary_id, contents, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			summary.ID, summary.DiaryID, summary.Contents, formatTime(now), formatTime(now),
		)
		if err != nil {
			return model.DiarySummary{}, err
		}
		return summary, nil
	}

	res, err := r.db.ExecContext(
		ctx,
		`UPDATE diary_summaries SET contents = ?, updated_at = ? WHERE id = ?`,
		summary.Contents, formatTime(now), summary.ID,
	)
	if err != nil {
		return model.DiarySummary{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.DiarySummary{}, err
	}
	if affected == 0 {
		return model.DiarySummary{}, sql.ErrNoRows
	}
	summary.UpdatedAt = now
	return summary, nil
}
