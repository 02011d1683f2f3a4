// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/models"
)

// ClientAuthService owns the session lifecycle: it is the only component
// that writes the session and it announces every transition on the event
// bus.
type ClientAuthService interface {
	// Login authenticates with username and password. On success the session
	// is saved and a login event is published, also when the account still
	// requires an MFA code (LoginResult.Mfa is then true and the caller must
	// follow up with MfaSubmit). Bad credentials yield an error matching
	// [adapter.ErrAuthRejected]; nothing is saved in that case.
	Login(ctx context.Context, username, password string) (models.LoginResult, error)

	// Register creates an account and treats it as an implicit login.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)

	// MfaStartSetup begins enrollment and returns the otpauth URI.
	MfaStartSetup(ctx context.Context) (models.MfaStartSetupResponse, error)
	// MfaFinishSetup confirms enrollment with the first code.
	MfaFinishSetup(ctx context.Context, code int) (models.Confirmation, error)
	// MfaSubmit answers the challenge left by a login with Mfa set, saves
	// the fully authenticated session and publishes a login event.
	MfaSubmit(ctx context.Context, code int) (models.LoginResult, error)
	// MfaDisable turns MFA off for the account.
	MfaDisable(ctx context.Context, code int) (models.Confirmation, error)

	// Logoff publishes a logoff event and then clears the session. It is
	// safe to call when already logged off.
	Logoff(ctx context.Context) error

	// IsLoggedIn reports whether a token is currently stored.
	IsLoggedIn(ctx context.Context) bool
	// Session returns the stored session, if any.
	Session(ctx context.Context) (models.Session, bool, error)
}

// ClientUserService covers the account endpoints.
type ClientUserService interface {
	// FetchMe fetches the logged-in user. It fails with [ErrNotLoggedIn]
	// without any network call when no user id is stored.
	FetchMe(ctx context.Context) (models.User, error)
	FetchUser(ctx context.Context, id string) (models.User, error)
	// UpdateMe sends params as a sparse patch. Callers leave unchanged
	// fields nil.
	UpdateMe(ctx context.Context, params models.UserUpdateParams) (models.Confirmation, error)
	DeleteMe(ctx context.Context, password string) (models.Confirmation, error)
}

// ClientDeviceService covers device data, device management and the live
// stream.
type ClientDeviceService interface {
	FetchDevice(ctx context.Context, id string) (models.Device, error)
	// FetchDeviceStats returns nil, nil when the field has no samples in
	// the range.
	FetchDeviceStats(ctx context.Context, id, field string, r models.TimeRange) (*models.DeviceStats, error)
	FetchTimeline(ctx context.Context, id string, q models.TimelineQuery) ([]models.Record, error)
	FetchCalendar(ctx context.Context, id string) (models.DeviceCalendar, error)
	FetchMap(ctx context.Context, rect models.MapRect) ([]models.MapDevice, error)

	CreateDevice(ctx context.Context, name, model string, location models.Location) (models.Device, error)
	UpdateDevice(ctx context.Context, id string, params models.DeviceUpdateParams) (models.DeviceUpdate, error)
	DisableDevice(ctx context.Context, id string, remove bool) (models.Confirmation, error)
	ImportDevice(ctx context.Context, platform string, options map[string]any) (models.ImportStarted, error)

	// ExportURL returns the download URL of a timeline export.
	ExportURL(id, format string, r models.TimeRange) string
	// ExportTimeline downloads the export into w.
	ExportTimeline(ctx context.Context, id, format string, r models.TimeRange, w io.Writer) error

	// OpenLiveTimeline opens the live telemetry stream of one device.
	OpenLiveTimeline(ctx context.Context, id string) (adapter.LiveStream, error)
}

// ClientInstanceService covers instance metadata and captcha.
type ClientInstanceService interface {
	FetchInstanceInfo(ctx context.Context) (models.InstanceInfo, error)
	// FetchCaptcha returns a fresh captcha id.
	FetchCaptcha(ctx context.Context) (string, error)
	// FetchCaptchaImage writes the captcha media for id into w.
	FetchCaptchaImage(ctx context.Context, id string, w io.Writer) error
}
