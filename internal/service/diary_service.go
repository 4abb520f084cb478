package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/metrics"
	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/repository"
	"wiselydiary/backend/internal/service/ai"
)

// DiaryNotFoundMessage is returned as diary contents when a member has no diary on the requested day.
const DiaryNotFoundMessage = "해당 날짜의 일기를 찾을 수 없습니다."

const dateLayout = "2006-01-02"

// DiaryDetail is the contents of one member's diary for a day.
type DiaryDetail struct {
	DiaryContents string `json:"diaryContents"`
}

// SummaryDetail is a stored summary with its sentences decoded when the model returned valid JSON.
type SummaryDetail struct {
	DiaryID   int64     `json:"diaryId"`
	Contents  string    `json:"contents"`
	Sentences []string  `json:"sentences"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DiaryService interface {
	// SummarizeDiary generates a summary for the diary and upserts it in one transaction.
	SummarizeDiary(ctx context.Context, diaryID int64) (string, error)
	// GetDiaryContents returns the member's diary for date (YYYY-MM-DD), or DiaryNotFoundMessage.
	GetDiaryContents(ctx context.Context, memberID, date string) (DiaryDetail, error)
	// GenerateDiaryEntry forwards prompt to the LLM with the freeform model and temperature.
	GenerateDiaryEntry(ctx context.Context, prompt string) (string, error)
	SaveDiaryEntry(ctx context.Context, content, memberID string, emotionCode int) (model.Diary, error)
	// ListDiaries returns the member's live diaries for the inclusive date range.
	ListDiaries(ctx context.Context, memberID, from, to string) ([]model.Diary, error)
	GetSummary(ctx context.Context, diaryID int64) (SummaryDetail, error)
	// GenerateLetter writes a letter of comfort for the diary, grounded on uploaded letter samples.
	GenerateLetter(ctx context.Context, diaryID int64) (string, error)
}

// DiaryOptions configures time zone handling and the freeform generation parameters.
type DiaryOptions struct {
	Location            *time.Location
	FreeformModel       string
	FreeformTemperature float64
}

type diaryService struct {
	txm       repository.TxManager
	diaries   repository.DiaryRepository
	summaries repository.DiarySummaryRepository
	rag       RAGService
	gateway   ai.Gateway
	opts      DiaryOptions
	group     singleflight.Group
	now       func() time.Time
}

func NewDiaryService(
	txm repository.TxManager,
	diaries repository.DiaryRepository,
	summaries repository.DiarySummaryRepository,
	rag RAGService,
	gateway ai.Gateway,
	opts DiaryOptions,
) DiaryService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &diaryService{
		txm:       txm,
		diaries:   diaries,
		summaries: summaries,
		rag:       rag,
		gateway:   gateway,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *diaryService) SummarizeDiary(ctx context.Context, diaryID int64) (string, error) {
	// Concurrent requests for one diary share a single LLM call and upsert. The shared
	// work is detached from the first caller so a disconnect does not fail the others;
	// the outbound client timeout bounds it.
	ch := s.group.DoChan(strconv.FormatInt(diaryID, 10), func() (any, error) {
		return s.summarize(context.WithoutCancel(ctx), diaryID)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			logger.Debug("diary summary shared", "module", "service", "action", "summarize", "resource", "diary", "result", "ok", "diary_id", diaryID)
		}
		return res.Val.(string), nil
	}
}

func (s *diaryService) summarize(ctx context.Context, diaryID int64) (string, error) {
	logger.Info("diary summarize started", "module", "service", "action", "summarize", "resource", "diary", "result", "started", "diary_id", diaryID)

	diary, err := s.diaries.GetByID(ctx, diaryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn("diary not found", "module", "service", "action", "summarize", "resource", "diary", "result", "failed", "diary_id", diaryID)
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get diary: %w", err)
	}

	summary, err := s.rag.GenerateResponse(ctx, ai.DiarySummaryQuery, diary.Contents, ai.RequestSummary)
	if err != nil {
		logger.Error("diary summarize failed", "module", "service", "action", "summarize", "resource", "diary", "result", "failed", "diary_id", diaryID, "error", err)
		return "", fmt.Errorf("generate summary: %w", err)
	}

	op, err := s.saveSummary(ctx, diaryID, summary)
	if err != nil {
		return "", err
	}

	metrics.SummariesSaved.WithLabelValues(op).Inc()
	logger.Info("diary summarize completed", "module", "service", "action", "summarize", "resource", "diary", "result", "ok", "diary_id", diaryID, "op", op)
	return summary, nil
}

// saveSummary upserts the summary in its own write transaction, begun after the LLM
// call so no snapshot is held while waiting on the provider.
func (s *diaryService) saveSummary(ctx context.Context, diaryID int64, summary string) (string, error) {
	tx, err := s.txm.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	// No-op once committed.
	defer func() { _ = tx.Rollback() }()

	// The diary may have been removed while the LLM was answering.
	if _, err := tx.Diaries().GetByID(ctx, diaryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get diary: %w", err)
	}

	existing, err := tx.Summaries().GetByDiaryID(ctx, diaryID)
	if err != nil {
		return "", fmt.Errorf("get summary: %w", err)
	}

	op := "insert"
	if existing != nil {
		op = "update"
		_, err = tx.Summaries().Save(ctx, existing.WithContents(summary))
	} else {
		_, err = tx.Summaries().Save(ctx, model.DiarySummary{DiaryID: diaryID, Contents: summary})
	}
	if err != nil {
		return "", fmt.Errorf("save summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return op, nil
}

func (s *diaryService) GetDiaryContents(ctx context.Context, memberID, date string) (DiaryDetail, error) {
	start, err := s.parseDate(date)
	if err != nil {
		return DiaryDetail{}, err
	}
	end := start.AddDate(0, 0, 1)

	diary, err := s.diaries.FindByMemberAndRange(ctx, memberID, start, end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DiaryDetail{DiaryContents: DiaryNotFoundMessage}, nil
		}
		return DiaryDetail{}, fmt.Errorf("find diary: %w", err)
	}
	return DiaryDetail{DiaryContents: diary.Contents}, nil
}

func (s *diaryService) GenerateDiaryEntry(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrInvalid
	}

	temperature := s.opts.FreeformTemperature
	text, err := s.gateway.Complete(ctx, ai.Request{
		Type:        ai.RequestFreeform,
		Prompt:      prompt,
		Model:       s.opts.FreeformModel,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate diary entry: %w", llmError(err))
	}
	return text, nil
}

func (s *diaryService) SaveDiaryEntry(ctx context.Context, content, memberID string, emotionCode int) (model.Diary, error) {
	diary, err := s.diaries.Create(ctx, model.Diary{
		MemberID:    memberID,
		Contents:    content,
		EmotionCode: emotionCode,
		Status:      model.DiaryStatusExist,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return model.Diary{}, fmt.Errorf("create diary: %w", err)
	}
	logger.Info("diary saved", "module", "service", "action", "create", "resource", "diary", "result", "ok", "diary_id", diary.ID, "member_id", memberID)
	return diary, nil
}

func (s *diaryService) ListDiaries(ctx context.Context, memberID, from, to string) ([]model.Diary, error) {
	start, err := s.parseDate(from)
	if err != nil {
		return nil, err
	}
	last, err := s.parseDate(to)
	if err != nil {
		return nil, err
	}
	if last.Before(start) {
		return nil, ErrInvalid
	}

	diaries, err := s.diaries.ListByMemberAndRange(ctx, memberID, start, last.AddDate(0, 0, 1), model.DiaryStatusExist)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	if diaries == nil {
		diaries = []model.Diary{}
	}
	return diaries, nil
}

func (s *diaryService) GetSummary(ctx context.Context, diaryID int64) (SummaryDetail, error) {
	summary, err := s.summaries.GetByDiaryID(ctx, diaryID)
	if err != nil {
		return SummaryDetail{}, fmt.Errorf("get summary: %w", err)
	}
	if summary == nil {
		return SummaryDetail{}, ErrNotFound
	}
	return SummaryDetail{
		DiaryID:   summary.DiaryID,
		Contents:  summary.Contents,
		Sentences: summarySentences(summary.Contents),
		UpdatedAt: summary.UpdatedAt,
	}, nil
}

func (s *diaryService) GenerateLetter(ctx context.Context, diaryID int64) (string, error) {
	diary, err := s.diaries.GetByID(ctx, diaryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get diary: %w", err)
	}

	letter, err := s.rag.GenerateResponse(ctx, ai.LetterQuery, ai.LetterContext(diary.Contents, diary.EmotionCode), ai.RequestLetter)
	if err != nil {
		return "", fmt.Errorf("generate letter: %w", err)
	}
	return letter, nil
}

func (s *diaryService) parseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), s.opts.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalid)
	}
	return t, nil
}

// summarySentences decodes {"response": [...]} from the stored model text.
// Models sometimes wrap the object in a markdown code fence; that is stripped first.
// It returns nil when the contents are not in that shape.
func summarySentences(contents string) []string {
	text := strings.TrimSpace(contents)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var payload struct {
		Response []string `json:"response"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil
	}
	return payload.Response
}
