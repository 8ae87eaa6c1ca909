package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the API error body. The wire contract is a single
// string: {"error": "<message>"}. The code and trace ID stay
// server-side (logs and the X-Trace-ID header) so the body keeps the
// shape the dashboard client expects.
type ErrorResponse struct {
	Message string `json:"error"`

	code    ErrorCode
	traceID string
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// NewErrorResponse creates an error response with the given error code
// and trace ID. Optional details can be set using functional options.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Message: GetErrorMessage(code),
		code:    code,
		traceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewQueryError surfaces a store error message verbatim. The dashboard
// renders these directly, so the text is user-facing.
func NewQueryError(err error, traceID string) *ErrorResponse {
	return &ErrorResponse{
		Message: err.Error(),
		code:    QueryFailed,
		traceID: traceID,
	}
}

// WrapSystemError wraps an internal error with a generic system error
// message. This prevents exposure of internal implementation details
// to clients; the internal error is returned for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Message: GetErrorMessage(SystemInternalError),
		code:    SystemInternalError,
		traceID: traceID,
	}
	return response, err
}

// Code returns the error code classified for this response
func (er *ErrorResponse) Code() ErrorCode {
	return er.code
}

// TraceID returns the request trace ID the response was built under
func (er *ErrorResponse) TraceID() string {
	return er.traceID
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - store rejections and malformed requests
	case QueryFailed, ValidationGeneral, ValidationRequiredField,
		ValidationInvalidFormat, ValidationInvalidDate:
		return http.StatusBadRequest

	// 404 Not Found
	case QueryNotFound:
		return http.StatusNotFound

	// 429 Too Many Requests
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(er.code)
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.code, er.Message, er.traceID)
}
