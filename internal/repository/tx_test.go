package repository_test

import (
	"context"
	"testing"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/repository"
	"wiselydiary/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestTxManager_CommitPersists(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	diaryID := testutil.SeedDiary(t, db, model.Diary{MemberID: "u1", Contents: "text"})

	tx, err := repository.NewTxManager(db).Begin(ctx)
	require.NoError(t, err)

	_, err = tx.Diaries().GetByID(ctx, diaryID)
	require.NoError(t, err)
	_, err = tx.Summaries().Save(ctx, model.DiarySummary{DiaryID: diaryID, Contents: "s"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback(), "rollback after commit is a no-op")

	require.Equal(t, 1, testutil.CountRows(t, db, "diary_summaries"))
}

func TestTxManager_RollbackDiscards(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	diaryID := testutil.SeedDiary(t, db, model.Diary{MemberID: "u1", Contents: "text"})

	tx, err := repository.NewTxManager(db).Begin(ctx)
	require.NoError(t, err)

	_, err = tx.Summaries().Save(ctx, model.DiarySummary{DiaryID: diaryID, Contents: "s"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Equal(t, 0, testutil.CountRows(t, db, "diary_summaries"))
}
