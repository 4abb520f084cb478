package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/repository"
	"wiselydiary/backend/internal/repository/mock"
	"wiselydiary/backend/internal/repository/testutil"
	"wiselydiary/backend/internal/service"
)

func TestVectorStoreService_AddDocumentFromText(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewDocumentRepository(db)
	svc := service.NewVectorStoreService(docs, nil)
	ctx := context.Background()

	content := strings.Repeat("가", 900) + "\n\n" + strings.Repeat("나", 900)
	result, err := svc.AddDocumentFromText(ctx, content, "letters.txt", "LETTER")
	require.NoError(t, err)
	require.Equal(t, "Document added successfully: letters.txt (2 chunks)", result)

	stored, err := docs.ListByStoreType(ctx, model.StoreTypeLetter)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, stored[0].SourceID, stored[1].SourceID)
	require.Equal(t, 0, stored[0].ChunkIndex)
	require.Equal(t, 1, stored[1].ChunkIndex)
	require.Empty(t, stored[0].Embedding)
}

func TestVectorStoreService_AddDocumentFromText_Invalid(t *testing.T) {
	svc := service.NewVectorStoreService(repository.NewDocumentRepository(testutil.NewTestDB(t)), nil)
	ctx := context.Background()

	_, err := svc.AddDocumentFromText(ctx, "text", "a.txt", "video")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.AddDocumentFromText(ctx, " \n\n ", "a.txt", "letter")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestVectorStoreService_AddDocumentFromText_StoreFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mock.NewMockDocumentRepository(ctrl)
	docs.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
	docs.EXPECT().DeleteBySourceID(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	svc := service.NewVectorStoreService(docs, nil)
	_, err := svc.AddDocumentFromText(context.Background(), "hello", "a.txt", "image")
	require.Error(t, err)
	require.Contains(t, err.Error(), "store document")
}

func TestVectorStoreService_Similar_RanksByCosine(t *testing.T) {
	db := testutil.NewTestDB(t)
	emb := &embedderStub{vectors: map[string][]float32{
		"sunny":          {1, 0, 0},
		"rainy":          {0, 1, 0},
		"a rainy letter": {0, 0.9, 0.1},
	}}
	svc := service.NewVectorStoreService(repository.NewDocumentRepository(db), emb)
	ctx := context.Background()

	_, err := svc.AddDocumentFromText(ctx, "sunny\n\nrainy", "tiny.txt", "letter")
	require.NoError(t, err)

	// Chunks pack both paragraphs into one; store a second upload to have two candidates.
	_, err = svc.AddDocumentFromText(ctx, "rainy", "rain.txt", "letter")
	require.NoError(t, err)

	got, err := svc.Similar(ctx, model.StoreTypeLetter, "a rainy letter", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "rainy", got[0].Content)
	require.Equal(t, "rain.txt", got[0].FileName)
}

func TestVectorStoreService_Similar_WithoutEmbeddings(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewVectorStoreService(repository.NewDocumentRepository(db), nil)
	ctx := context.Background()

	got, err := svc.Similar(ctx, model.StoreTypeLetter, "x", 3)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = svc.AddDocumentFromText(ctx, "one", "1.txt", "letter")
	require.NoError(t, err)
	_, err = svc.AddDocumentFromText(ctx, "two", "2.txt", "letter")
	require.NoError(t, err)
	_, err = svc.AddDocumentFromText(ctx, "picture", "3.txt", "image")
	require.NoError(t, err)

	got, err = svc.Similar(ctx, model.StoreTypeLetter, "x", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, d := range got {
		require.Equal(t, model.StoreTypeLetter, d.StoreType)
	}

	got, err = svc.Similar(ctx, model.StoreTypeLetter, "x", 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestVectorStoreService_EmbeddingFailureStoresPlainChunks(t *testing.T) {
	db := testutil.NewTestDB(t)
	emb := &embedderStub{err: errors.New("quota")}
	docs := repository.NewDocumentRepository(db)
	svc := service.NewVectorStoreService(docs, emb)
	ctx := context.Background()

	_, err := svc.AddDocumentFromText(ctx, "hello", "a.txt", "letter")
	require.NoError(t, err)

	stored, err := docs.ListByStoreType(ctx, model.StoreTypeLetter)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Empty(t, stored[0].Embedding)
}

func TestVectorStoreService_DeleteDocument(t *testing.T) {
	db := testutil.NewTestDB(t)
	docs := repository.NewDocumentRepository(db)
	svc := service.NewVectorStoreService(docs, nil)
	ctx := context.Background()

	_, err := svc.AddDocumentFromText(ctx, "hello", "a.txt", "letter")
	require.NoError(t, err)
	stored, err := docs.ListByStoreType(ctx, model.StoreTypeLetter)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.NoError(t, svc.DeleteDocument(ctx, stored[0].SourceID))
	require.Equal(t, 0, testutil.CountRows(t, db, "documents"))

	require.ErrorIs(t, svc.DeleteDocument(ctx, stored[0].SourceID), service.ErrNotFound)
	require.ErrorIs(t, svc.DeleteDocument(ctx, "not-a-uuid"), service.ErrInvalid)
}

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, service.CosineSimilarityForTest([]float32{1, 2}, []float32{2, 4}), 1e-9)
	require.InDelta(t, 0.0, service.CosineSimilarityForTest([]float32{1, 0}, []float32{0, 1}), 1e-9)
	require.Equal(t, -1.0, service.CosineSimilarityForTest([]float32{1}, []float32{1, 0}))
	require.Equal(t, -1.0, service.CosineSimilarityForTest([]float32{0, 0}, []float32{1, 0}))
	require.Equal(t, -1.0, service.CosineSimilarityForTest(nil, nil))
}
