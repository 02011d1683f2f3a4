package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/gmc-client/models"
)

var (
	// ErrAuthRejected matches a 403 on login, registration or MFA
	// submission. The returned error also unwraps to a [models.ErrorResult].
	ErrAuthRejected = errors.New("credentials rejected")
	// ErrRequestFailed matches any other non-2xx response of a typed call.
	// The returned error is a [*RequestFailedError].
	ErrRequestFailed = errors.New("request failed")
	// ErrMalformedRecord is returned by [LiveStream.Recv] for a message that
	// is not a JSON record. The stream stays usable.
	ErrMalformedRecord = errors.New("malformed live record")
	// ErrMissingToken is returned when login, registration or MFA submission
	// succeeds but the response carries no session token.
	ErrMissingToken = errors.New("auth response carries no token")
)

// RequestFailedError carries the status of a failed call and, when the body
// was a JSON error object, the decoded server error.
type RequestFailedError struct {
	Status     int
	StatusText string
	Result     *models.ErrorResult
}

func (e *RequestFailedError) Error() string {
	if e.Result != nil && e.Result.Description != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.StatusText, e.Result.Description)
	}
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// Unwrap exposes [ErrRequestFailed] and the server error, if any.
func (e *RequestFailedError) Unwrap() []error {
	if e.Result == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, *e.Result}
}
