package errors

import (
	"errors"
	"fmt"
)

// ErrCredentialsMissing is returned when the processor client id or secret is
// absent from configuration.
var ErrCredentialsMissing = errors.New("client id and client secret must be configured")

// ErrSessionAbandoned marks a wallet session that was cancelled by the user.
// It is terminal but not a failure.
var ErrSessionAbandoned = errors.New("wallet session abandoned by user")

// UpstreamAuthError is returned when the token exchange with the processor
// fails. The caller decides whether to retry; this package never does.
type UpstreamAuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamAuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("token exchange failed: status %d: %s", e.Status, e.Body)
}

func (e *UpstreamAuthError) Unwrap() error {
	return e.Err
}

// UpstreamOrderError carries the raw status and body of a failed processor
// REST call so diagnostics pass through untouched.
type UpstreamOrderError struct {
	Status int
	Body   string
}

func (e *UpstreamOrderError) Error() string {
	return fmt.Sprintf("order call failed: status %d: %s", e.Status, e.Body)
}

// ValidationFailedError is returned when merchant validation is rejected by
// the wallet backend. The session must be aborted by the caller.
type ValidationFailedError struct {
	Err error
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("merchant validation failed: %v", e.Err)
}

func (e *ValidationFailedError) Unwrap() error {
	return e.Err
}
