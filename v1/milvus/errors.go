package milvus

import (
	"errors"
	"fmt"
)

// Common milvus client errors
var (
	// ErrAlreadyConnected is returned when Connect is called while the client
	// already holds a usable connection.
	ErrAlreadyConnected = errors.New("milvus: client is already connected")

	// ErrPortOutOfRange is returned when the configured port is outside [0, 65535].
	ErrPortOutOfRange = errors.New("milvus: port is out of range")

	// ErrConnectFailed is returned when a connection could not be established.
	ErrConnectFailed = errors.New("milvus: connect failed")

	// ErrConnectTimeout is returned when the connection did not become ready
	// within the connect timeout.
	ErrConnectTimeout = errors.New("milvus: connect timed out")

	// ErrNotConnected is returned when an operation requires a ready
	// connection and the client does not hold one.
	ErrNotConnected = errors.New("milvus: client is not connected")

	// ErrShutdownTimeout is returned when the connection did not terminate
	// within the shutdown timeout during Disconnect.
	ErrShutdownTimeout = errors.New("milvus: shutdown timed out")

	// ErrRPC is returned when a call fails at the transport level.
	ErrRPC = errors.New("milvus: rpc error")
)

// Error is a status-coded operation error. Server side failures keep the code
// and reason exactly as returned by the service; transport failures carry
// StatusRPCError together with the underlying cause.
type Error struct {
	// Code classifies the failure.
	Code StatusCode

	// Reason is the human-readable description. For server side failures it
	// is the reason string from the response, verbatim.
	Reason string

	cause error
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("milvus: %s: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("milvus: %s", e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is maps coded errors onto the package sentinels, so
// errors.Is(err, ErrNotConnected) and errors.Is(err, ErrRPC) also match
// errors produced from status codes.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotConnected:
		return e.Code == StatusClientNotConnected
	case ErrRPC:
		return e.Code == StatusRPCError
	case ErrConnectFailed:
		return e.Code == StatusConnectFailed
	}
	return false
}

// newError builds a coded error with an optional underlying cause.
func newError(code StatusCode, reason string, cause error) *Error {
	return &Error{Code: code, Reason: reason, cause: cause}
}

// IsNotConnected checks if the error indicates the client held no ready connection.
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

// IsAlreadyConnected checks if the error indicates a duplicate Connect attempt.
func IsAlreadyConnected(err error) bool {
	return errors.Is(err, ErrAlreadyConnected)
}

// IsRPCError checks if the error indicates a transport level failure.
func IsRPCError(err error) bool {
	return errors.Is(err, ErrRPC)
}

// StatusCodeOf extracts the status code carried by an error. A nil error maps
// to StatusSuccess; errors without a recognizable code map to StatusUnknown.
func StatusCodeOf(err error) StatusCode {
	if err == nil {
		return StatusSuccess
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	switch {
	case errors.Is(err, ErrNotConnected):
		return StatusClientNotConnected
	case errors.Is(err, ErrRPC):
		return StatusRPCError
	case errors.Is(err, ErrConnectFailed), errors.Is(err, ErrConnectTimeout):
		return StatusConnectFailed
	}

	return StatusUnknown
}
