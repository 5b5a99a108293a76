package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// APIError is a response from the backend that reached us but did not carry
// a successful envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend API error: status %d: %s", e.StatusCode, e.Message)
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError lists the form fields that failed client-side checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill in all required fields: " + strings.Join(e.Fields, ", ")
}

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindTimeout    ErrorKind = "timeout"
	KindServer     ErrorKind = "server"
	KindNoResponse ErrorKind = "no_response"
	KindOther      ErrorKind = "other"
)

// Classify sorts an error by its shape for user-facing reporting.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindServer
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return KindNoResponse
	}
	return KindOther
}

// UserMessage turns an error into the sentence shown to the shopper.
func UserMessage(err error) string {
	switch Classify(err) {
	case KindValidation:
		return "Please fill in all required fields."
	case KindTimeout:
		return "The request timed out. Please try again."
	case KindServer:
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return "Failed to send message. Please try again."
	case KindNoResponse:
		return "Unable to reach the server. Please check your connection and try again."
	}
	return "An unexpected error occurred. Please try again later."
}
