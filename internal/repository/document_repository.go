package repository

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/snowflake"
)

type DocumentRepository interface {
	// CreateBatch stores the chunks of one upload and returns them with IDs assigned.
	CreateBatch(ctx context.Context, docs []model.Document) ([]model.Document, error)
	ListByStoreType(ctx context.Context, storeType string) ([]model.Document, error)
	DeleteBySourceID(ctx context.Context, sourceID string) (int64, error)
}

type documentRepository struct {
	db dbtx
}

func NewDocumentRepository(db dbtx) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) CreateBatch(ctx context.Context, docs []model.Document) ([]model.Document, error) {
	now := time.Now()
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		d.ID = snowflake.NextID()
		d.CreatedAt = now
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO documents (id, source_id, file_name, store_type, chunk_index, content, embedding, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.SourceID, d.FileName, d.StoreType, d.ChunkIndex, d.Content, encodeEmbedding(d.Embedding), formatTime(now),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *documentRepository) ListByStoreType(ctx context.Context, storeType string) ([]model.Document, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, source_id, file_name, store_type, chunk_index, content, embedding, created_at
		 FROM documents WHERE store_type = ?
		 ORDER BY created_at ASC, chunk_index ASC`,
		storeType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		var embedding []byte
		var createdAt string
		if err := rows.Scan(&d.ID, &d.SourceID, &d.FileName, &d.StoreType, &d.ChunkIndex, &d.Content, &embedding, &createdAt); err != nil {
			return nil, err
		}
		d.Embedding = decodeEmbedding(embedding)
		d.CreatedAt, _ = parseTime(createdAt)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) DeleteBySourceID(ctx context.Context, sourceID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE source_id = ?`, sourceID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func encodeEmbedding(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeEmbedding(b []byte) []float32 {
	if len(b) < 4 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
