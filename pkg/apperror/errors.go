package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "Not authenticated as a restaurant", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Campaigns (CMP) ----

// ErrCampaignNotFound is returned both for missing campaigns and for
// campaigns owned by another restaurant.
func ErrCampaignNotFound() *AppError {
	return New("CMP_001", "Campaign not found", http.StatusNotFound)
}

func ErrCampaignNotCancellable() *AppError {
	return New("CMP_002", "Only scheduled or sending campaigns can be cancelled", http.StatusBadRequest)
}

func ErrCancellationInProgress() *AppError {
	return New("CMP_003", "Campaign cancellation already in progress", http.StatusBadRequest)
}

// ---- Provider webhooks (WHK) ----

func ErrMissingCallbackFields() *AppError {
	return New("WHK_001", "MessageSid and MessageStatus are required", http.StatusBadRequest)
}

func ErrInvalidCallbackSignature() *AppError {
	return New("WHK_002", "Invalid provider signature", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
