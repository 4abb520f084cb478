package service

import (
	"context"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/service/ai"
)

// DefaultReferenceLimit is how many stored passages a letter prompt may cite.
const DefaultReferenceLimit = 3

// RAGService builds a prompt from a query and context and asks the LLM gateway to answer it.
type RAGService interface {
	GenerateResponse(ctx context.Context, query, contextText string, requestType ai.RequestType) (string, error)
}

type ragService struct {
	gateway        ai.Gateway
	store          VectorStoreService
	referenceLimit int
}

// NewRAGService creates a RAG service. store may be nil, in which case prompts carry no references.
func NewRAGService(gateway ai.Gateway, store VectorStoreService, referenceLimit int) RAGService {
	if referenceLimit <= 0 {
		referenceLimit = DefaultReferenceLimit
	}
	return &ragService{gateway: gateway, store: store, referenceLimit: referenceLimit}
}

func (s *ragService) GenerateResponse(ctx context.Context, query, contextText string, requestType ai.RequestType) (string, error) {
	references := s.references(ctx, contextText, requestType)
	prompt := ai.BuildRAGPrompt(query, contextText, references)

	text, err := s.gateway.Complete(ctx, ai.Request{Type: requestType, Prompt: prompt})
	if err != nil {
		return "", llmError(err)
	}
	return text, nil
}

// Only letters are grounded on uploaded samples; summaries use the diary text alone.
func (s *ragService) references(ctx context.Context, contextText string, requestType ai.RequestType) []string {
	if s.store == nil || requestType != ai.RequestLetter {
		return nil
	}

	docs, err := s.store.Similar(ctx, model.StoreTypeLetter, contextText, s.referenceLimit)
	if err != nil {
		logger.Warn("rag reference lookup failed", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "type", requestType, "error", err)
		return nil
	}

	refs := make([]string, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, d.Content)
	}
	return refs
}
