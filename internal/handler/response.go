package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// codeMessageResponse is the error body of the upload endpoint.
type codeMessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeServiceError(c echo.Context, err error) error {
	var uploadErr *service.DocumentUploadError
	switch {
	case errors.As(err, &uploadErr):
		logger.Warn("document upload failed", "module", "handler", "action", "upload", "resource", "document", "result", "failed", "error", err)
		return c.JSON(http.StatusBadRequest, codeMessageResponse{Code: uploadErr.Code, Message: uploadErr.Message})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrUpstream):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "language model request failed"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
