package indexer

import (
	"errors"
	"fmt"
	"time"
)

// ErrorTypeHTTP is the error code used when a failed response carries no
// recognizable error payload.
const ErrorTypeHTTP = "HttpError"

// Error is implemented by every error returned from a Client method.
type Error interface {
	error
	sdkError()
}

// IsSDKError reports whether err (or anything it wraps) originates from this SDK.
func IsSDKError(err error) bool {
	var sdkErr Error
	return errors.As(err, &sdkErr)
}

// ConfigurationError is returned by NewClient when the configuration is unusable.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "indexer: invalid configuration"
	}
	return "indexer: invalid configuration: " + e.Message
}

func (e *ConfigurationError) sdkError() {}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	Status    int
	ErrorType string
	Message   string
	Body      []byte
}

func (e *APIError) Error() string {
	if e == nil {
		return "indexer: request failed"
	}
	if e.ErrorType != "" {
		return fmt.Sprintf("indexer: %s (status=%d %s)", e.Message, e.Status, e.ErrorType)
	}
	return fmt.Sprintf("indexer: %s (status=%d)", e.Message, e.Status)
}

func (e *APIError) sdkError() {}

// Payload returns the error in its wire shape.
func (e *APIError) Payload() APIErrorPayload {
	return APIErrorPayload{
		Error:   e.ErrorType,
		Message: e.Message,
		Status:  e.Status,
	}
}

// TimeoutError is returned when the configured timeout elapses before the
// transport settles.
type TimeoutError struct {
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e == nil {
		return "indexer: request timed out"
	}
	return fmt.Sprintf("indexer: request timed out after %dms", e.Timeout.Milliseconds())
}

func (e *TimeoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func (e *TimeoutError) sdkError() {}

// NetworkError is returned for transport level failures such as refused
// connections, DNS failures or TLS errors.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return "indexer: network error"
	}
	return "indexer: network error: " + e.Message
}

func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func (e *NetworkError) sdkError() {}

func newNetworkError(message string, cause error) *NetworkError {
	if cause != nil && message == "" {
		message = cause.Error()
	}
	return &NetworkError{Message: message, Cause: cause}
}
