package pymote

import (
	"errors"
	"fmt"
)

// Sentinel errors for the console bridge client.
var (
	// ErrNotConnected indicates an operation was attempted without a connection.
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected indicates Connect was called while already connected.
	ErrAlreadyConnected = errors.New("already connected")
)

// ConnectionError represents a transport-level failure: the connection
// could not be established, the command timed out, or the peer closed the
// connection mid-exchange. When a ConnectionError is returned the command
// did not reliably execute.
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("connection error: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a new connection error.
func NewConnectionError(message string, cause error) error {
	return &ConnectionError{Message: message, Cause: cause}
}

// CommandError represents a protocol or application-level failure: the
// response could not be decoded, or the server explicitly reported that
// the command failed.
type CommandError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("command error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("command error: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// NewCommandError creates a new command error.
func NewCommandError(message string, cause error) error {
	return &CommandError{Message: message, Cause: cause}
}
