package model

import (
	"strings"
	"time"
)

const (
	StoreTypeLetter = "letter"
	StoreTypeImage  = "image"
)

// StoreTypes lists the accepted upload store types.
var StoreTypes = []string{StoreTypeLetter, StoreTypeImage}

// NormalizeStoreType lowercases s and reports whether it is an accepted store type.
func NormalizeStoreType(s string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, t := range StoreTypes {
		if normalized == t {
			return normalized, true
		}
	}
	return "", false
}

// Document is one chunk of an uploaded reference text.
type Document struct {
	ID         int64
	SourceID   string
	FileName   string
	StoreType  string
	ChunkIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}
