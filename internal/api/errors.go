// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// ErrorKind classifies failures surfaced by the client.
type ErrorKind int

const (
	// KindNetwork indicates the request never produced an HTTP response
	// (dispatch failure, connection drop).
	KindNetwork ErrorKind = iota

	// KindHTTPStatus indicates a non-2xx response without a structured
	// error body; the message is synthesized from the status code.
	KindHTTPStatus

	// KindBackend indicates a non-2xx response whose body carried a
	// structured {"error": "..."} message.
	KindBackend

	// KindParse indicates a 2xx response whose body could not be decoded.
	KindParse

	// KindCancelled indicates the caller aborted the request. Never
	// presented to the user as a failure.
	KindCancelled

	// KindStreamProtocol indicates an SSE stream failed below the frame
	// level (transport drop mid-stream, unreadable event).
	KindStreamProtocol
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http-status"
	case KindBackend:
		return "backend-reported"
	case KindParse:
		return "parse"
	case KindCancelled:
		return "cancelled"
	case KindStreamProtocol:
		return "stream-protocol"
	default:
		return "unknown"
	}
}

// =============================================================================
// ERROR TYPE
// =============================================================================

// Error is the normalized failure type returned by every client operation.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status when applicable, 0 otherwise
	Message string
	Err     error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsCancelled reports whether err represents caller-initiated cancellation.
// Cancellation is distinguished from network failure and must never be
// rendered as an error in the UI.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindCancelled {
		return true
	}
	return errors.Is(err, context.Canceled)
}

// newStatusError builds the error for a non-2xx response. If the body
// carried a structured {"error": "..."} message that message is surfaced
// verbatim, otherwise a synthetic "HTTP <status>" message is used.
func newStatusError(status int, backendMsg string) *Error {
	if backendMsg != "" {
		return &Error{Kind: KindBackend, Status: status, Message: backendMsg}
	}
	return &Error{
		Kind:    KindHTTPStatus,
		Status:  status,
		Message: fmt.Sprintf("HTTP %d", status),
	}
}

// wrapTransportError maps transport-level failures, folding context
// cancellation into KindCancelled.
func wrapTransportError(err error) *Error {
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCancelled, Message: "request cancelled", Err: err}
	}
	return &Error{Kind: KindNetwork, Message: "request failed", Err: err}
}
