package service

import "errors"

var (
	// ErrNotLoggedIn is returned by calls that need the stored user id when
	// there is none.
	ErrNotLoggedIn = errors.New("not logged in")

	ErrLoginOnServer    = errors.New("error login on server")
	ErrRegisterOnServer = errors.New("error register on server")
	ErrMfaOnServer      = errors.New("error mfa on server")

	// ErrSaveSession is returned when the server accepted the credentials
	// but the session could not be persisted.
	ErrSaveSession = errors.New("error saving session")

	// ErrInvalidRegisterParams is returned before any network call when the
	// registration request fails validation.
	ErrInvalidRegisterParams = errors.New("invalid registration parameters")
	// ErrInvalidDevice is returned before any network call when a new device
	// has no name or an out-of-range location.
	ErrInvalidDevice = errors.New("invalid device parameters")
	// ErrUnknownPlatform is returned by ImportDevice for a platform the
	// server does not import from.
	ErrUnknownPlatform = errors.New("unknown import platform")
)
