package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/events"
	"github.com/MKhiriev/gmc-client/internal/mock"
	"github.com/MKhiriev/gmc-client/internal/session"
	"github.com/MKhiriev/gmc-client/internal/store"
	"github.com/MKhiriev/gmc-client/models"
)

// newTestAuthSvc — хелпер для создания clientAuthService с моком адаптера,
// сессией в памяти и настоящей шиной событий
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *session.Manager, *events.Bus) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := session.NewManager(store.NewMemoryStore())
	bus := events.NewBus()

	svc := NewClientAuthService(mockAdapter, sessions, bus).(*clientAuthService)
	return svc, mockAdapter, sessions, bus
}

// recordEvents подписывается на шину и запоминает каждое событие вместе с
// состоянием сессии в момент доставки
type recordedEvent struct {
	kind     events.Kind
	loggedIn bool
}

func recordEvents(bus *events.Bus, sessions *session.Manager) *[]recordedEvent {
	var got []recordedEvent
	bus.Subscribe(func(e events.Event) {
		got = append(got, recordedEvent{kind: e.Kind, loggedIn: sessions.IsLoggedIn(context.Background())})
	})
	return &got
}

func forbidden() error {
	return errors.Join(adapter.ErrAuthRejected, models.ErrorResult{Status: 403, Description: "Forbidden"})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().
		Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"}).
		Return(models.LoginResult{Token: "t1", ID: "u1"}, nil)

	result, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t1", result.Token)

	s, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{UserID: "u1", Token: "t1"}, s)

	// событие приходит ровно одно, и сессия к этому моменту уже сохранена
	assert.Equal(t, []recordedEvent{{kind: events.Login, loggedIn: true}}, *got)
}

func TestClientAuthService_Login_MfaPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResult{Token: "partial", ID: "u1", Mfa: true}, nil)

	result, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.True(t, result.Mfa)

	s, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.MfaPending)
	assert.Len(t, *got, 1)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResult{}, forbidden())

	_, err := svc.Login(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrAuthRejected)

	// ничего не сохранено и событий нет
	assert.False(t, sessions.IsLoggedIn(ctx))
	assert.Empty(t, *got)
}

func TestClientAuthService_Login_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	// 200 с пустым телом адаптер превращает в ошибку
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResult{}, fmt.Errorf("login: %w", adapter.ErrMissingToken))

	result, err := svc.Login(ctx, "alice", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrMissingToken)
	assert.Empty(t, result.Token)

	_, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sessions.IsLoggedIn(ctx))
	assert.Empty(t, *got)
}

func TestClientAuthService_Login_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockKeyValueStore(ctrl)
	bus := events.NewBus()
	svc := NewClientAuthService(mockAdapter, session.NewManager(mockStore), bus)
	ctx := context.Background()

	published := 0
	bus.Subscribe(func(events.Event) { published++ })

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResult{Token: "t", ID: "u"}, nil)
	mockStore.EXPECT().Set(ctx, session.KeyUserID, "u").Return(errors.New("disk full"))

	_, err := svc.Login(ctx, "alice", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaveSession)
	assert.Zero(t, published)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	req := models.RegisterRequest{
		Username:      "alice",
		Email:         "alice@example.com",
		Password:      "secret",
		CaptchaID:     "c1",
		CaptchaAnswer: "42",
	}
	mockAdapter.EXPECT().Register(ctx, req).Return(models.LoginResult{Token: "t2", ID: "u2"}, nil)

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	id, ok, err := sessions.UserID(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u2", id)
	assert.Equal(t, []recordedEvent{{kind: events.Login, loggedIn: true}}, *got)
}

func TestClientAuthService_Register_InvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"short username", models.RegisterRequest{Username: "al", Email: "a@b.c", Password: "x"}},
		{"long username", models.RegisterRequest{Username: strings.Repeat("a", 33), Email: "a@b.c", Password: "x"}},
		{"bad email", models.RegisterRequest{Username: "alice", Email: "nope", Password: "x"}},
		{"no password", models.RegisterRequest{Username: "alice", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// адаптер не вызывается: мок упадёт при любом вызове
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidRegisterParams)
		})
	}
}

func TestClientAuthService_Register_UsernameBounds(t *testing.T) {
	for _, n := range []int{4, 32} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
			ctx := context.Background()
			req := models.RegisterRequest{Username: strings.Repeat("a", n), Email: "alice@example.com", Password: "pw"}

			mockAdapter.EXPECT().Register(ctx, req).Return(models.LoginResult{Token: "t", ID: "u1"}, nil)

			_, err := svc.Register(ctx, req)
			require.NoError(t, err)
		})
	}
}

func TestClientAuthService_Register_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.LoginResult{}, forbidden())

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrAuthRejected)
	assert.False(t, sessions.IsLoggedIn(ctx))
}

// ── MFA ──────────────────────────────────────────────────────────────────────

func TestClientAuthService_MfaSubmit_ReplacesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, models.Session{UserID: "u1", Token: "partial", MfaPending: true}))
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().MfaSubmit(ctx, models.MfaCode{Pass: 123456}).
		Return(models.LoginResult{Token: "full", ID: "u1"}, nil)

	_, err := svc.MfaSubmit(ctx, 123456)
	require.NoError(t, err)

	s, _, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: "u1", Token: "full"}, s)
	assert.Equal(t, []recordedEvent{{kind: events.Login, loggedIn: true}}, *got)
}

func TestClientAuthService_MfaSubmit_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, models.Session{UserID: "u1", Token: "partial", MfaPending: true}))
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().MfaSubmit(ctx, gomock.Any()).Return(models.LoginResult{}, forbidden())

	_, err := svc.MfaSubmit(ctx, 1)
	assert.ErrorIs(t, err, adapter.ErrAuthRejected)

	// частичная сессия остаётся как была
	s, _, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "partial", s.Token)
	assert.Empty(t, *got)
}

func TestClientAuthService_MfaSubmit_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, models.Session{UserID: "u1", Token: "partial", MfaPending: true}))
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().MfaSubmit(ctx, gomock.Any()).
		Return(models.LoginResult{}, fmt.Errorf("mfa submit: %w", adapter.ErrMissingToken))

	_, err := svc.MfaSubmit(ctx, 123456)
	assert.ErrorIs(t, err, adapter.ErrMissingToken)

	s, _, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: "u1", Token: "partial", MfaPending: true}, s)
	assert.Empty(t, *got)
}

func TestClientAuthService_MfaSetupAndDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().MfaStartSetup(ctx).Return(models.MfaStartSetupResponse{MfaURI: "otpauth://totp/x"}, nil)
	mockAdapter.EXPECT().MfaFinishSetup(ctx, models.MfaCode{Pass: 111111}).
		Return(models.Confirmation{"description": "MFA enabled"}, nil)
	mockAdapter.EXPECT().MfaDisable(ctx, models.MfaCode{Pass: 222222}).
		Return(nil, &adapter.RequestFailedError{Status: 400, StatusText: "Bad Request"})

	start, err := svc.MfaStartSetup(ctx)
	require.NoError(t, err)
	assert.Equal(t, "otpauth://totp/x", start.MfaURI)

	done, err := svc.MfaFinishSetup(ctx, 111111)
	require.NoError(t, err)
	assert.Equal(t, "MFA enabled", done.Description())

	_, err = svc.MfaDisable(ctx, 222222)
	assert.ErrorIs(t, err, ErrMfaOnServer)
	assert.ErrorIs(t, err, adapter.ErrRequestFailed)
	assert.NotErrorIs(t, err, adapter.ErrAuthRejected)
}

// ── Logoff ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, models.Session{UserID: "u1", Token: "t1"}))
	got := recordEvents(bus, sessions)

	require.True(t, svc.IsLoggedIn(ctx))
	require.NoError(t, svc.Logoff(ctx))

	assert.False(t, svc.IsLoggedIn(ctx))
	_, ok, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// подписчик logoff ещё видит сессию
	assert.Equal(t, []recordedEvent{{kind: events.Logoff, loggedIn: true}}, *got)
}

func TestClientAuthService_Logoff_WhenLoggedOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions, bus := newTestAuthSvc(t, ctrl)
	got := recordEvents(bus, sessions)

	require.NoError(t, svc.Logoff(context.Background()))
	require.NoError(t, svc.Logoff(context.Background()))
	assert.Len(t, *got, 2)
}

func TestClientAuthService_LoginLogoffCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, bus := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	got := recordEvents(bus, sessions)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResult{Token: "t", ID: "u"}, nil).Times(2)

	for range 2 {
		_, err := svc.Login(ctx, "alice", "pw")
		require.NoError(t, err)
		require.NoError(t, svc.Logoff(ctx))
	}

	kinds := make([]events.Kind, 0, len(*got))
	for _, e := range *got {
		kinds = append(kinds, e.kind)
	}
	assert.Equal(t, []events.Kind{events.Login, events.Logoff, events.Login, events.Logoff}, kinds)
}
