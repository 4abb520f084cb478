package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wiselydiary/backend/internal/handler"
	"wiselydiary/backend/internal/service"
	servicemock "wiselydiary/backend/internal/service/mock"
)

func TestRAGHandler_Upload_NormalizesStoreType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockVectorStoreService(ctrl)
	svc.EXPECT().AddDocumentFromText(gomock.Any(), "편지 예시", "letter.txt", "letter").
		Return("Document added successfully: letter.txt (1 chunks)", nil)

	e := newTestServer(handler.NewRAGHandler(svc, 0).RegisterRoutes)
	body, ct := multipartBody(t, map[string]string{"storeType": "LETTER"}, "letter.txt", "편지 예시")

	rec := doRequest(e, http.MethodPost, "/api/rag/upload", body, ct)
	requireStatus(t, rec, http.StatusOK)
	require.Equal(t, "Document added successfully: letter.txt (1 chunks)", rec.Body.String())
}

func TestRAGHandler_Upload_InvalidStoreTypeBeforeFileRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockVectorStoreService(ctrl)
	svc.EXPECT().AddDocumentFromText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	e := newTestServer(handler.NewRAGHandler(svc, 0).RegisterRoutes)

	// No file part at all: the store type must be rejected first.
	body, ct := multipartBody(t, map[string]string{"storeType": "video"}, "", "")
	rec := doRequest(e, http.MethodPost, "/api/rag/upload", body, ct)
	requireStatus(t, rec, http.StatusBadRequest)

	got := decodeJSON(t, rec)
	require.EqualValues(t, 400, got["code"])
	require.Equal(t, "Invalid store type. Valid types are: letter, image", got["message"])
}

func TestRAGHandler_Upload_MissingFileIsUploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockVectorStoreService(ctrl)

	e := newTestServer(handler.NewRAGHandler(svc, 0).RegisterRoutes)
	body, ct := multipartBody(t, map[string]string{"storeType": "image"}, "", "")

	rec := doRequest(e, http.MethodPost, "/api/rag/upload", body, ct)
	requireStatus(t, rec, http.StatusBadRequest)

	got := decodeJSON(t, rec)
	require.EqualValues(t, service.DocumentUploadErrorCode, got["code"])
	require.Equal(t, service.DocumentUploadErrorMessage, got["message"])
}

func TestRAGHandler_Upload_TooLargeIsUploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockVectorStoreService(ctrl)

	e := newTestServer(handler.NewRAGHandler(svc, 4).RegisterRoutes)
	body, ct := multipartBody(t, map[string]string{"storeType": "letter"}, "big.txt", "0123456789")

	rec := doRequest(e, http.MethodPost, "/api/rag/upload", body, ct)
	requireStatus(t, rec, http.StatusBadRequest)
	require.EqualValues(t, service.DocumentUploadErrorCode, decodeJSON(t, rec)["code"])
}

func TestRAGHandler_Upload_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "empty document", err: service.ErrInvalid, status: http.StatusBadRequest},
		{name: "store failure", err: errors.New("disk full"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := servicemock.NewMockVectorStoreService(ctrl)
			svc.EXPECT().AddDocumentFromText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", tt.err)

			e := newTestServer(handler.NewRAGHandler(svc, 0).RegisterRoutes)
			body, ct := multipartBody(t, map[string]string{"storeType": "image"}, "a.txt", "x")
			rec := doRequest(e, http.MethodPost, "/api/rag/upload", body, ct)
			requireStatus(t, rec, tt.status)
		})
	}
}

func TestRAGHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockVectorStoreService(ctrl)
	svc.EXPECT().DeleteDocument(gomock.Any(), "abc").Return(service.ErrNotFound)
	svc.EXPECT().DeleteDocument(gomock.Any(), "def").Return(nil)

	e := newTestServer(handler.NewRAGHandler(svc, 0).RegisterRoutes)
	requireStatus(t, doRequest(e, http.MethodDelete, "/api/rag/documents/abc", nil, ""), http.StatusNotFound)
	requireStatus(t, doRequest(e, http.MethodDelete, "/api/rag/documents/def", nil, ""), http.StatusNoContent)
}
