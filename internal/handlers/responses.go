package handlers

import (
	"net/http"

	"household-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors (4xx responses)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithMessage("..."))
//    - Malformed identifiers: SendError(c, errors.ValidationInvalidFormat)
//
// 2. SendQueryError - For store rejections whose message is surfaced
//    verbatim to the caller as a 400
//
// 3. SendSystemError - For unexpected internal errors (500 responses);
//    the detail stays in server logs, the client gets a generic message
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use the helpers instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendQueryError surfaces a store error message verbatim with a 400
// status, the contract the dashboard client was built against
func SendQueryError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewQueryError(err, traceID)
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with a generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
