package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/metrics"
	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/repository"
	"wiselydiary/backend/internal/service/ai"
)

// VectorStoreService stores uploaded reference documents as chunks and finds passages similar to a text.
type VectorStoreService interface {
	// AddDocumentFromText chunks content and stores it under storeType.
	AddDocumentFromText(ctx context.Context, content, fileName, storeType string) (string, error)
	// Similar returns up to k chunks of storeType, most similar to text first.
	// Without embeddings, chunks are returned in upload order.
	Similar(ctx context.Context, storeType, text string, k int) ([]model.Document, error)
	// DeleteDocument removes every chunk of one upload.
	DeleteDocument(ctx context.Context, sourceID string) error
}

type vectorStoreService struct {
	documents repository.DocumentRepository
	embedder  ai.Embedder
	extractor *documentExtractor
}

// NewVectorStoreService creates the document store. embedder may be nil.
func NewVectorStoreService(documents repository.DocumentRepository, embedder ai.Embedder) VectorStoreService {
	return &vectorStoreService{
		documents: documents,
		embedder:  embedder,
		extractor: newDocumentExtractor(),
	}
}

func (s *vectorStoreService) AddDocumentFromText(ctx context.Context, content, fileName, storeType string) (string, error) {
	storeType, ok := model.NormalizeStoreType(storeType)
	if !ok {
		return "", fmt.Errorf("%w: store type", ErrInvalid)
	}

	text := s.extractor.Extract(content, fileName)
	chunks := chunkText(text, MaxChunkRunes)
	if len(chunks) == 0 {
		return "", fmt.Errorf("%w: document is empty", ErrInvalid)
	}

	embeddings := s.embed(ctx, chunks)

	sourceID := uuid.NewString()
	docs := make([]model.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = model.Document{
			SourceID:   sourceID,
			FileName:   fileName,
			StoreType:  storeType,
			ChunkIndex: i,
			Content:    c,
		}
		if embeddings != nil {
			docs[i].Embedding = embeddings[i]
		}
	}

	if _, err := s.documents.CreateBatch(ctx, docs); err != nil {
		// Drop whatever part of the batch made it in.
		if _, cleanupErr := s.documents.DeleteBySourceID(context.WithoutCancel(ctx), sourceID); cleanupErr != nil {
			logger.Warn("document cleanup failed", "module", "service", "action", "delete", "resource", "document", "result", "failed", "source_id", sourceID, "error", cleanupErr)
		}
		return "", fmt.Errorf("store document: %w", err)
	}

	metrics.DocumentChunks.WithLabelValues(storeType).Add(float64(len(docs)))
	logger.Info("document stored", "module", "service", "action", "create", "resource", "document", "result", "ok", "source_id", sourceID, "file_name", fileName, "store_type", storeType, "chunks", len(docs), "embedded", embeddings != nil)
	return fmt.Sprintf("Document added successfully: %s (%d chunks)", fileName, len(docs)), nil
}

// embed returns nil when no embedder is configured or the call fails; chunks are then stored without vectors.
func (s *vectorStoreService) embed(ctx context.Context, chunks []string) [][]float32 {
	if s.embedder == nil {
		return nil
	}
	vecs, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		logger.Warn("document embedding failed", "module", "service", "action", "create", "resource", "document", "result", "failed", "chunks", len(chunks), "error", err)
		return nil
	}
	if len(vecs) != len(chunks) {
		return nil
	}
	return vecs
}

type scoredDocument struct {
	doc   model.Document
	score float64
}

func (s *vectorStoreService) Similar(ctx context.Context, storeType, text string, k int) ([]model.Document, error) {
	if k <= 0 {
		return nil, nil
	}

	docs, err := s.documents.ListByStoreType(ctx, storeType)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	query := s.queryVector(ctx, text, docs)
	if query == nil {
		return docs[:min(k, len(docs))], nil
	}

	scored := make([]scoredDocument, len(docs))
	for i, d := range docs {
		scored[i] = scoredDocument{doc: d, score: cosineSimilarity(query, d.Embedding)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]model.Document, 0, min(k, len(scored)))
	for _, sd := range scored[:min(k, len(scored))] {
		out = append(out, sd.doc)
	}
	return out, nil
}

// queryVector embeds text only when at least one stored chunk has an embedding.
func (s *vectorStoreService) queryVector(ctx context.Context, text string, docs []model.Document) []float32 {
	if s.embedder == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	hasEmbedding := false
	for _, d := range docs {
		if len(d.Embedding) > 0 {
			hasEmbedding = true
			break
		}
	}
	if !hasEmbedding {
		return nil
	}

	vecs, err := s.embedder.Embed(ctx, []string{text})
	if err != nil || len(vecs) != 1 {
		logger.Warn("query embedding failed", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "error", err)
		return nil
	}
	return vecs[0]
}

func (s *vectorStoreService) DeleteDocument(ctx context.Context, sourceID string) error {
	if _, err := uuid.Parse(sourceID); err != nil {
		return ErrInvalid
	}
	n, err := s.documents.DeleteBySourceID(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	logger.Info("document deleted", "module", "service", "action", "delete", "resource", "document", "result", "ok", "source_id", sourceID, "chunks", n)
	return nil
}

// cosineSimilarity returns -1 for vectors of different length or zero norm so they rank last.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return -1
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return -1
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
