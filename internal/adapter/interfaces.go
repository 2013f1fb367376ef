// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single request path between the client and the
// professional-network REST API.
//
// Every request carries the bearer token read from a [TokenSource] at send
// time. A 401 from any endpoint invokes the unauthorized hook before the
// error reaches the caller, so the session is already cleared when a page
// sees [ErrUnauthorized]. Other statuses are mapped to the sentinel errors in
// errors.go and wrapped in [APIError] carrying the server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pro-network/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource yields the bearer token to attach to the next request. An
// empty string means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// ServerAdapter is the REST API consumed by the client.
type ServerAdapter interface {
	// Signup creates an account (POST /auth/signup).
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates with e-mail and password (POST /auth/login).
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Me verifies the current token and returns its user (GET /auth/me).
	Me(ctx context.Context) (models.User, error)

	// MyProfile returns the profile of the current user (GET /profile/me).
	MyProfile(ctx context.Context) (models.Profile, error)

	// AllProfiles returns the profile directory (GET /profile/all).
	AllProfiles(ctx context.Context) ([]models.Profile, error)

	// Profile returns one profile by id (GET /profile/:id).
	Profile(ctx context.Context, id string) (models.Profile, error)

	// UpdateProfile patches the current profile (PATCH /profile/me).
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	CreateExperience(ctx context.Context, exp models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, id string, exp models.Experience) (models.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	CreateEducation(ctx context.Context, edu models.Education) (models.Education, error)
	UpdateEducation(ctx context.Context, id string, edu models.Education) (models.Education, error)
	DeleteEducation(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}
