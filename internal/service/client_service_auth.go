package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions SessionService
	logger   *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions SessionService, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, sessions: sessions, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrRequiredFields
	}

	resp, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	a.adopt(ctx, resp)
	return resp.User, nil
}

func (a *clientAuthService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if form.Name == "" || form.Email == "" || form.Password == "" {
		return models.User{}, ErrRequiredFields
	}
	if form.Password != form.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}

	resp, err := a.adapter.Signup(ctx, models.SignupRequest{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("signup: %w", err)
	}

	a.adopt(ctx, resp)
	return resp.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

// adopt stores the new session. A persistence failure only costs durability,
// so the login still succeeds.
func (a *clientAuthService) adopt(ctx context.Context, resp models.AuthResponse) {
	if err := a.sessions.SetAuth(ctx, resp.User, resp.Token); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.adopt").Msg("session kept in memory only")
	}
}
