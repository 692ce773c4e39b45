package ingestion

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	httperr "github.com/bigsister-lab/bigsister/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgInvalidID      = "Event id must be a positive integer"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// AppendMessageHandler handles POST /v1/messages.
func (s *Service) AppendMessageHandler(c *gin.Context) {
	var evt v1.MessageEvent
	if ierr := s.parseBody(c, &evt); ierr != nil {
		writeError(c, ierr)
		return
	}

	res, err := s.AppendMessage(c.Request.Context(), &evt)
	if err != nil {
		writeError(c, appendError(err, res))
		return
	}
	c.JSON(resultStatus(res), res)
}

// AppendModlogHandler handles POST /v1/modlogs.
func (s *Service) AppendModlogHandler(c *gin.Context) {
	var evt v1.ModlogEvent
	if ierr := s.parseBody(c, &evt); ierr != nil {
		writeError(c, ierr)
		return
	}

	res, err := s.AppendModlog(c.Request.Context(), &evt)
	if err != nil {
		writeError(c, appendError(err, res))
		return
	}
	c.JSON(resultStatus(res), res)
}

// GetMessageHandler handles GET /v1/messages/:id.
func (s *Service) GetMessageHandler(c *gin.Context) {
	id, ierr := parseID(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}
	evt, err := s.GetMessage(c.Request.Context(), id)
	if err != nil {
		writeError(c, lookupError(err, id))
		return
	}
	c.JSON(http.StatusOK, evt)
}

// GetModlogHandler handles GET /v1/modlogs/:id.
func (s *Service) GetModlogHandler(c *gin.Context) {
	id, ierr := parseID(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}
	evt, err := s.GetModlog(c.Request.Context(), id)
	if err != nil {
		writeError(c, lookupError(err, id))
		return
	}
	c.JSON(http.StatusOK, evt)
}

// parseBody reads the raw request body under the size limit and binds it into dst.
func (s *Service) parseBody(c *gin.Context, dst interface{}) *ingestionError {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return nil
}

func parseID(c *gin.Context) (int64, *ingestionError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    msgInvalidID,
		}
	}
	return id, nil
}

func resultStatus(res Result) int {
	if res.Duplicate {
		return http.StatusOK
	}
	return http.StatusCreated
}

// appendError maps a pipeline error to its HTTP shape. Store failures are
// logged here, once.
func appendError(err error, res Result) *ingestionError {
	switch {
	case errors.Is(err, ErrInvalidEvent):
		slog.Warn("[Ingestion] Event validation failed", "kind", res.Kind, "event_id", res.ID, "error", err)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    err.Error(),
		}
	case errors.Is(err, ErrForeignGuild):
		slog.Warn("[Ingestion] Event from foreign guild rejected", "kind", res.Kind, "event_id", res.ID, "error", err)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpForeignGuildError,
			message:    err.Error(),
		}
	}

	status, errType := httperr.StoreStatus(err)
	slog.Error("[Ingestion] Failed to persist event", "kind", res.Kind, "event_id", res.ID, "error", err)
	return &ingestionError{
		statusCode: status,
		errorType:  errType,
		message:    err.Error(),
	}
}

func lookupError(err error, id int64) *ingestionError {
	status, errType := httperr.StoreStatus(err)
	if status != http.StatusNotFound {
		slog.Error("[Ingestion] Event lookup failed", "event_id", id, "error", err)
	}
	return &ingestionError{
		statusCode: status,
		errorType:  errType,
		message:    err.Error(),
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
