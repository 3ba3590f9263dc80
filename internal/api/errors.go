package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why a video listing failed
type ErrorKind string

const (
	KindConfiguration       ErrorKind = "configuration_error"
	KindUpstreamRequest     ErrorKind = "upstream_request_failed"
	KindUpstreamAPI         ErrorKind = "upstream_api_error"
	KindChannelNotFound     ErrorKind = "channel_not_found"
	KindUploadsUnresolvable ErrorKind = "uploads_collection_unresolvable"
	KindUnknown             ErrorKind = "unknown_failure"
)

// Messages exposed to callers that must not see failure details.
const (
	GenericErrorMessage       = "Failed to fetch YouTube videos"
	MissingAPIKeyErrorMessage = "YouTube API key not configured"
)

// ErrorMode selects how much failure detail reaches the caller
type ErrorMode int

const (
	ErrorModeGeneric ErrorMode = iota
	ErrorModeVerbose
)

// ErrorModeFor maps the verbose flag from configuration to an ErrorMode
func ErrorModeFor(verbose bool) ErrorMode {
	if verbose {
		return ErrorModeVerbose
	}
	return ErrorModeGeneric
}

// GatewayError is the typed failure returned by VideoGateway
type GatewayError struct {
	Kind ErrorKind
	// Op names the step that failed: "config", "channels" or "playlistItems".
	Op string
	// Status is the upstream HTTP status, 0 when no response was received.
	Status int
	// Detail is the human readable description of the failure.
	Detail string
	// Diagnostic holds the raw upstream payload, when one was captured.
	Diagnostic string
	Err        error
}

func (e *GatewayError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind carried by err, or KindUnknown
func KindOf(err error) ErrorKind {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return KindUnknown
}

// FormatErrorMessage is the policy for the message shown to callers.
// A missing key is always reported as such; other kinds only carry their
// detail in verbose mode.
func FormatErrorMessage(kind ErrorKind, detail string, mode ErrorMode) string {
	if kind == KindConfiguration {
		return MissingAPIKeyErrorMessage
	}
	if mode == ErrorModeVerbose && detail != "" {
		return detail
	}
	return GenericErrorMessage
}

// StatusForKind maps a failure kind to the HTTP status returned to callers
func StatusForKind(kind ErrorKind) int {
	switch kind {
	case KindConfiguration:
		return http.StatusServiceUnavailable
	case KindUpstreamRequest, KindUpstreamAPI, KindChannelNotFound, KindUploadsUnresolvable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
