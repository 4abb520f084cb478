package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/service"
)

const invalidStoreTypeMessage = "Invalid store type. Valid types are: letter, image"

type RAGHandler struct {
	service       service.VectorStoreService
	maxUploadSize int64
}

// NewRAGHandler creates the upload handler. Files larger than maxUploadSize bytes are rejected; zero disables the check.
func NewRAGHandler(service service.VectorStoreService, maxUploadSize int64) *RAGHandler {
	return &RAGHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *RAGHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/rag/upload", h.Upload)
	g.DELETE("/rag/documents/:sourceId", h.Delete)
}

// Upload adds a reference document to the vector store.
// @Summary Upload a reference document
// @Description Stores a UTF-8 text or HTML file as letter or image reference material
// @Tags rag
// @Accept multipart/form-data
// @Produce plain
// @Param file formData file true "Document"
// @Param storeType formData string true "Store type (letter or image)"
// @Success 200 {string} string "Document added successfully: <file> (<n> chunks)"
// @Failure 400 {object} codeMessageResponse
// @Router /rag/upload [post]
func (h *RAGHandler) Upload(c echo.Context) error {
	storeType, ok := model.NormalizeStoreType(c.FormValue("storeType"))
	if !ok {
		return c.JSON(http.StatusBadRequest, codeMessageResponse{Code: http.StatusBadRequest, Message: invalidStoreTypeMessage})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return writeServiceError(c, service.NewDocumentUploadError(err))
	}

	content, err := h.readFile(file)
	if err != nil {
		return writeServiceError(c, service.NewDocumentUploadError(err))
	}

	result, err := h.service.AddDocumentFromText(c.Request().Context(), content, file.Filename, storeType)
	if err != nil {
		return writeServiceError(c, err)
	}
	logger.Info("document uploaded", "module", "handler", "action", "upload", "resource", "document", "result", "ok", "file_name", file.Filename, "store_type", storeType, "size", file.Size)
	return c.String(http.StatusOK, result)
}

// Delete removes every chunk of an uploaded document.
// @Summary Delete a reference document
// @Tags rag
// @Param sourceId path string true "Source ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rag/documents/{sourceId} [delete]
func (h *RAGHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteDocument(c.Request().Context(), c.Param("sourceId")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// readFile returns the upload as UTF-8 text; invalid sequences become U+FFFD.
func (h *RAGHandler) readFile(file *multipart.FileHeader) (string, error) {
	if h.maxUploadSize > 0 && file.Size > h.maxUploadSize {
		return "", fmt.Errorf("file %q is %d bytes, limit %d", file.Filename, file.Size, h.maxUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
