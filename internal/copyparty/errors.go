// ABOUTME: Typed error taxonomy for the copyparty client.
// ABOUTME: Validation, connectivity, auth, remote, and not-text failures.

package copyparty

import (
	"fmt"
)

// ValidationError reports bad caller input, detected before any
// network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConnectivityError wraps DNS, dial, and transport-timeout failures.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach %s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// AuthError reports a 401/403 from the server.
type AuthError struct {
	Status int
	Msg    string
}

func (e *AuthError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("authentication rejected (HTTP %d)", e.Status)
	}
	return fmt.Sprintf("authentication rejected (HTTP %d): %s", e.Status, e.Msg)
}

// RemoteError reports any other non-2xx status, carrying the server's
// status code and message body.
type RemoteError struct {
	Status int
	Msg    string
}

func (e *RemoteError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("server returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Msg)
}

// NotTextError reports that a file's content is not valid UTF-8 and
// cannot be returned as text.
type NotTextError struct {
	Path string
}

func (e *NotTextError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text; download it with base64 encoding instead", e.Path)
}
