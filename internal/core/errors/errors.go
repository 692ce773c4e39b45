package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/bigsister-lab/bigsister/internal/core/storage"
)

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpValidationError       = "validation_failed"
	HttpForeignGuildError     = "foreign_guild"
	HttpNotFoundError         = "not_found"
	HttpInvalidWindowError    = "invalid_window"
	HttpMalformedQueryError   = "malformed_query"
	HttpEmptySelectionError   = "empty_selection"
	HttpStoreTimeoutError     = "store_timeout"
	HttpStoreUnavailableError = "store_unavailable"
	HttpRequestCanceledError  = "request_canceled"
)

// ErrorResponse is the error response body shared by every endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// StoreStatus maps a store error onto an HTTP status and error type.
// Anything outside the storage taxonomy is an internal error.
func StoreStatus(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, HttpNotFoundError
	case errors.Is(err, storage.ErrTimeout):
		return http.StatusGatewayTimeout, HttpStoreTimeoutError
	case errors.Is(err, storage.ErrUnavailable):
		return http.StatusServiceUnavailable, HttpStoreUnavailableError
	case errors.Is(err, context.Canceled):
		// The client is gone; the status is only seen in access logs.
		return 499, HttpRequestCanceledError
	default:
		return http.StatusInternalServerError, HttpInternalError
	}
}
