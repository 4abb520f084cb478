package service

import (
	"errors"
	"fmt"

	"wiselydiary/backend/internal/service/ai"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
	// ErrUpstream wraps every failed LLM call, including malformed responses.
	ErrUpstream = errors.New("upstream failure")
)

const (
	DocumentUploadErrorCode    = 40001
	DocumentUploadErrorMessage = "문서 업로드 중 오류가 발생했습니다."
)

// DocumentUploadError is returned when an uploaded document cannot be read.
type DocumentUploadError struct {
	Code    int
	Message string
	Err     error
}

// NewDocumentUploadError wraps a read failure with the fixed upload error code and message.
func NewDocumentUploadError(err error) *DocumentUploadError {
	return &DocumentUploadError{
		Code:    DocumentUploadErrorCode,
		Message: DocumentUploadErrorMessage,
		Err:     err,
	}
}

func (e *DocumentUploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document upload failed (%d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("document upload failed (%d)", e.Code)
}

func (e *DocumentUploadError) Unwrap() error {
	return e.Err
}

// llmError marks gateway failures as ErrUpstream while keeping the original cause reachable.
func llmError(err error) error {
	if errors.Is(err, ai.ErrUpstream) || errors.Is(err, ai.ErrMalformedResponse) {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return err
}
