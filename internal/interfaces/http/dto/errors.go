package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed or unparseable requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	// Missing resources -> 404 Not Found
	"NOT_FOUND":      http.StatusNotFound,
	"ITEM_NOT_FOUND": http.StatusNotFound,

	// Conflicting state with another writer or resource -> 409 Conflict
	"ALREADY_EXISTS":         http.StatusConflict,
	"ITEM_IN_USE":            http.StatusConflict,
	"CONCURRENCY_CONFLICT":   http.StatusConflict,
	"DUPLICATE_BUNDLE_ITEM":  http.StatusConflict,
	"DUPLICATE_OPTION":       http.StatusConflict,
	"DUPLICATE_OPTION_VALUE": http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"GENERATION_LIMIT_EXCEEDED": http.StatusUnprocessableEntity,
	"INVALID_STATE":             http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":            http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":          http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest: http.StatusBadRequest,

	// Internal errors -> 500
	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes map to 400; anything unknown maps to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
