package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/session"
	"github.com/MKhiriev/gmc-client/models"
)

type clientUserService struct {
	adapter  adapter.ServerAdapter
	sessions *session.Manager
}

func NewClientUserService(serverAdapter adapter.ServerAdapter, sessions *session.Manager) ClientUserService {
	return &clientUserService{adapter: serverAdapter, sessions: sessions}
}

func (u *clientUserService) FetchMe(ctx context.Context) (models.User, error) {
	id, ok, err := u.sessions.UserID(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok || id == "" {
		return models.User{}, ErrNotLoggedIn
	}

	return u.FetchUser(ctx, id)
}

func (u *clientUserService) FetchUser(ctx context.Context, id string) (models.User, error) {
	user, err := u.adapter.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch user %s: %w", id, err)
	}
	return user, nil
}

func (u *clientUserService) UpdateMe(ctx context.Context, params models.UserUpdateParams) (models.Confirmation, error) {
	resp, err := u.adapter.UpdateMe(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("update me: %w", err)
	}
	return resp, nil
}

func (u *clientUserService) DeleteMe(ctx context.Context, password string) (models.Confirmation, error) {
	resp, err := u.adapter.DeleteMe(ctx, models.DeleteMeRequest{Password: password})
	if err != nil {
		return nil, fmt.Errorf("delete me: %w", err)
	}
	return resp, nil
}
