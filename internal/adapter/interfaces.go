// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and a
// GMCServer instance.
//
// [ServerAdapter] is the single place that talks to the remote API. Every
// call reads the current token from a [TokenSource] and attaches it as the
// Authorization header when one is held. The HTTP side is built on resty and
// the live telemetry stream on gorilla/websocket.
//
// Status classification lives in errors_mapper.go: typed calls turn non-2xx
// responses into [ErrRequestFailed] or [ErrAuthRejected] so callers can use
// [errors.Is] and [errors.As]. [ServerAdapter.Do] is the raw escape hatch and
// never classifies.
package adapter

import (
	"context"
	"io"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gmc-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource yields the session token to attach to outbound requests. An
// empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// LiveStream is an open live telemetry connection for one device.
type LiveStream interface {
	// Recv blocks until the next record arrives. It returns io.EOF once the
	// stream has been closed by either side.
	Recv() (models.Record, error)
	// Close terminates the stream. It is safe to call more than once and
	// from any goroutine.
	Close() error
}

// ServerAdapter defines communication with the GMCServer API. Paths are
// relative to the configured API base path.
type ServerAdapter interface {
	// Do issues a raw request and returns the response whatever its status.
	// Caller-supplied headers are kept as is, including an explicit
	// Authorization header.
	Do(ctx context.Context, req models.Request) (*resty.Response, error)

	// Login posts credentials to POST /auth/login. A 403 is returned as
	// [ErrAuthRejected] carrying the server's [models.ErrorResult].
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	// Register posts to POST /auth/register with the same classification as
	// Login.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)

	// MfaStartSetup begins MFA enrollment (PUT /auth/mfa with an empty body).
	MfaStartSetup(ctx context.Context) (models.MfaStartSetupResponse, error)
	// MfaFinishSetup confirms enrollment with a code (PUT /auth/mfa).
	MfaFinishSetup(ctx context.Context, code models.MfaCode) (models.Confirmation, error)
	// MfaSubmit answers a pending MFA challenge (POST /auth/mfa).
	MfaSubmit(ctx context.Context, code models.MfaCode) (models.LoginResult, error)
	// MfaDisable turns MFA off (DELETE /auth/mfa).
	MfaDisable(ctx context.Context, code models.MfaCode) (models.Confirmation, error)

	// UpdateMe sends a sparse patch to PUT /user/me.
	UpdateMe(ctx context.Context, params models.UserUpdateParams) (models.Confirmation, error)
	// DeleteMe removes the account (DELETE /user/me).
	DeleteMe(ctx context.Context, req models.DeleteMeRequest) (models.Confirmation, error)
	// GetUser fetches GET /user/:id.
	GetUser(ctx context.Context, id string) (models.User, error)

	GetDevice(ctx context.Context, id string) (models.Device, error)
	// GetDeviceStats fetches GET /device/:id/stats/:field. A 204 yields a
	// nil result and a nil error.
	GetDeviceStats(ctx context.Context, id, field string, r models.TimeRange) (*models.DeviceStats, error)
	GetTimeline(ctx context.Context, id string, q models.TimelineQuery) ([]models.Record, error)
	GetCalendar(ctx context.Context, id string) (models.DeviceCalendar, error)
	GetMap(ctx context.Context, rect models.MapRect) ([]models.MapDevice, error)
	CreateDevice(ctx context.Context, req models.CreateDeviceRequest) (models.Device, error)
	UpdateDevice(ctx context.Context, id string, params models.DeviceUpdateParams) (models.DeviceUpdate, error)
	DisableDevice(ctx context.Context, id string, req models.DisableDeviceRequest) (models.Confirmation, error)
	ImportDevice(ctx context.Context, platform string, options map[string]any) (models.ImportStarted, error)

	// Export streams GET /device/:id/export/:format into w.
	Export(ctx context.Context, id, format string, r models.TimeRange, w io.Writer) error
	// ExportURL returns the absolute download URL Export fetches. start and
	// end are only included when both are set.
	ExportURL(id, format string, r models.TimeRange) string

	GetInstanceInfo(ctx context.Context) (models.InstanceInfo, error)
	GetCaptcha(ctx context.Context) (models.Captcha, error)
	// GetCaptchaImage copies the captcha media for id into w.
	GetCaptchaImage(ctx context.Context, id string, w io.Writer) error

	// OpenLiveTimeline opens one WebSocket to <apiBase>/device/:id/live.
	// Cancelling ctx closes the stream.
	OpenLiveTimeline(ctx context.Context, id string) (LiveStream, error)
}
