package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/events"
	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/internal/session"
	"github.com/MKhiriev/gmc-client/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions *session.Manager
	bus      *events.Bus
	validate *validator.Validate
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions *session.Manager, bus *events.Bus) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		bus:      bus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	result, err := a.adapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		log.Debug().Err(err).Str("func", "*clientAuthService.Login").Msg("login rejected")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if err = a.establish(ctx, result); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validate.Struct(req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidRegisterParams, err)
	}

	result, err := a.adapter.Register(ctx, req)
	if err != nil {
		log.Debug().Err(err).Str("func", "*clientAuthService.Register").Msg("registration rejected")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	if err = a.establish(ctx, result); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

func (a *clientAuthService) MfaStartSetup(ctx context.Context) (models.MfaStartSetupResponse, error) {
	resp, err := a.adapter.MfaStartSetup(ctx)
	if err != nil {
		return models.MfaStartSetupResponse{}, fmt.Errorf("%w: %w", ErrMfaOnServer, err)
	}
	return resp, nil
}

func (a *clientAuthService) MfaFinishSetup(ctx context.Context, code int) (models.Confirmation, error) {
	resp, err := a.adapter.MfaFinishSetup(ctx, models.MfaCode{Pass: code})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMfaOnServer, err)
	}
	return resp, nil
}

func (a *clientAuthService) MfaSubmit(ctx context.Context, code int) (models.LoginResult, error) {
	result, err := a.adapter.MfaSubmit(ctx, models.MfaCode{Pass: code})
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrMfaOnServer, err)
	}

	if err = a.establish(ctx, result); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

func (a *clientAuthService) MfaDisable(ctx context.Context, code int) (models.Confirmation, error) {
	resp, err := a.adapter.MfaDisable(ctx, models.MfaCode{Pass: code})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMfaOnServer, err)
	}
	return resp, nil
}

// establish saves the session and only then announces the login, so that
// subscribers already see IsLoggedIn() == true.
func (a *clientAuthService) establish(ctx context.Context, result models.LoginResult) error {
	if err := a.sessions.Save(ctx, result.Session()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientAuthService.establish").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSaveSession, err)
	}

	a.bus.Publish(events.Event{Kind: events.Login})
	return nil
}

func (a *clientAuthService) Logoff(ctx context.Context) error {
	a.bus.Publish(events.Event{Kind: events.Logoff})

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) IsLoggedIn(ctx context.Context) bool {
	return a.sessions.IsLoggedIn(ctx)
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, bool, error) {
	return a.sessions.Load(ctx)
}
