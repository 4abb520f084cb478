package repository

import (
	"context"
	"time"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/snowflake"
)

type DiaryRepository interface {
	GetByID(ctx context.Context, id int64) (model.Diary, error)
	// FindByMemberAndRange returns the earliest diary of memberID created in [start, end).
	FindByMemberAndRange(ctx context.Context, memberID string, start, end time.Time) (model.Diary, error)
	ListByMemberAndRange(ctx context.Context, memberID string, start, end time.Time, status model.DiaryStatus) ([]model.Diary, error)
	Create(ctx context.Context, diary model.Diary) (model.Diary, error)
}

type diaryRepository struct {
	db dbtx
}

func NewDiaryRepository(db dbtx) DiaryRepository {
	return &diaryRepository{db: db}
}

const diaryColumns = `id, member_id, contents, emotion_code, status, created_at`

func (r *diaryRepository) GetByID(ctx context.Context, id int64) (model.Diary, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+diaryColumns+` FROM diaries WHERE id = ?`, id)
	return scanDiary(row)
}

func (r *diaryRepository) FindByMemberAndRange(ctx context.Context, memberID string, start, end time.Time) (model.Diary, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+diaryColumns+` FROM diaries
		 WHERE member_id = ? AND created_at >= ? AND created_at < ?
		 ORDER BY created_at ASC, id ASC
		 LIMIT 1`,
		memberID, formatTime(start), formatTime(end),
	)
	return scanDiary(row)
}

func (r *diaryRepository) ListByMemberAndRange(ctx context.Context, memberID string, start, end time.Time, status model.DiaryStatus) ([]model.Diary, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+diaryColumns+` FROM diaries
		 WHERE member_id = ? AND created_at >= ? AND created_at < ? AND status = ?
		 ORDER BY created_at ASC, id ASC`,
		memberID, formatTime(start), formatTime(end), string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []model.Diary
	for rows.Next() {
		d, err := scanDiary(rows)
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}

func (r *diaryRepository) Create(ctx context.Context, diary model.Diary) (model.Diary, error) {
	diary.ID = snowflake.NextID()
	if diary.CreatedAt.IsZero() {
		diary.CreatedAt = time.Now()
	}
	if diary.Status == "" {
		diary.Status = model.DiaryStatusExist
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO diaries (id, member_id, contents, emotion_code, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		diary.ID,
		diary.MemberID,
		diary.Contents,
		diary.EmotionCode,
		string(diary.Status),
		formatTime(diary.CreatedAt),
	)
	if err != nil {
		return model.Diary{}, err
	}
	return diary, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDiary(s scanner) (model.Diary, error) {
	var d model.Diary
	var status, createdAt string
	if err := s.Scan(&d.ID, &d.MemberID, &d.Contents, &d.EmotionCode, &status, &createdAt); err != nil {
		return model.Diary{}, err
	}
	d.Status = model.DiaryStatus(status)
	d.CreatedAt, _ = parseTime(createdAt)
	return d, nil
}
