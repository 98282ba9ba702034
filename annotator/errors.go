package annotator

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoAPIKey is returned by New when no API key is configured.
var ErrNoAPIKey = errors.New("no API key configured")

// ServiceError is a non successful response from the text generation service.
type ServiceError struct {
	Status int    // HTTP status code
	Body   string // response message
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error %d: %s", e.Status, e.Body)
}

// TransportError is a failure to reach the text generation service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// classify converts a genai error into a *ServiceError or a *TransportError.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ServiceError{Status: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &ServiceError{Status: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return &TransportError{Err: err}
}

// Describe returns the human readable text stored as commentary when the
// annotation failed.
func Describe(err error) string {
	var serr *ServiceError
	var terr *TransportError
	switch {
	case errors.As(err, &serr):
		return fmt.Sprintf("Analyst unavailable (HTTP %d): %s", serr.Status, serr.Body)
	case errors.As(err, &terr):
		return fmt.Sprintf("Analyst unreachable: %v", terr.Err)
	default:
		return fmt.Sprintf("Analyst failed: %v", err)
	}
}
