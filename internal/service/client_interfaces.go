// Package service holds the client-side business logic between the terminal
// pages and the REST adapter: session ownership and persistence, the auth
// bootstrap run on every protected page, and the profile, catalog and
// preference operations.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pro-network/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the session store and keeps its durable copy in sync.
// Every mutation is persisted before the call returns.
type SessionService interface {
	// SetAuth stores user and token. An empty token stores the cleared state.
	SetAuth(ctx context.Context, user models.User, token string) error

	// Logout clears the session and persists the cleared state.
	Logout(ctx context.Context) error

	// LogoutIfToken clears the session only while token is still the current
	// one. It reports whether the session was cleared.
	LogoutIfToken(ctx context.Context, token string) (bool, error)

	// AdoptUser attaches a verified user to token, but only while token is
	// still the current one. It reports whether the user was adopted.
	AdoptUser(ctx context.Context, user models.User, token string) (bool, error)

	// Hydrate restores the persisted record into the store and marks the
	// store hydrated, also when loading fails.
	Hydrate(ctx context.Context) error

	// Snapshot returns a copy of the current session.
	Snapshot() models.Session

	// Token returns the current bearer token. It makes SessionService an
	// adapter.TokenSource.
	Token() string

	// Hydrated is closed once Hydrate has finished.
	Hydrated() <-chan struct{}
}

// Navigator performs page navigation on behalf of services.
type Navigator interface {
	// RedirectToLogin leaves the current page for the login page.
	RedirectToLogin()
}

// ClientAuthService signs users in and out.
type ClientAuthService interface {
	// Login checks the required fields, authenticates and stores the session.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Signup checks the required fields and the password confirmation,
	// creates the account and stores the session.
	Signup(ctx context.Context, form models.SignupForm) (models.User, error)

	// Logout clears the session.
	Logout(ctx context.Context) error
}

// ClientProfileService reads and edits profiles.
type ClientProfileService interface {
	Me(ctx context.Context) (models.Profile, error)
	All(ctx context.Context) ([]models.Profile, error)
	ByID(ctx context.Context, id string) (models.Profile, error)
	Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
}

// ClientExperienceService manages work history entries of the current
// profile.
type ClientExperienceService interface {
	// Get finds an entry of the current profile by id.
	Get(ctx context.Context, id string) (models.Experience, error)
	Create(ctx context.Context, exp models.Experience) (models.Experience, error)
	Update(ctx context.Context, id string, exp models.Experience) (models.Experience, error)
	Delete(ctx context.Context, id string) error
}

// ClientEducationService manages education entries of the current profile.
type ClientEducationService interface {
	// Get finds an entry of the current profile by id.
	Get(ctx context.Context, id string) (models.Education, error)
	Create(ctx context.Context, edu models.Education) (models.Education, error)
	Update(ctx context.Context, id string, edu models.Education) (models.Education, error)
	Delete(ctx context.Context, id string) error
}

// ClientSkillService manages skills of the current profile.
type ClientSkillService interface {
	// Add trims name and rejects an empty one locally.
	Add(ctx context.Context, name string) (models.Skill, error)
	Remove(ctx context.Context, id string) error
}

// ClientCatalogService serves the static pages.
type ClientCatalogService interface {
	// Feed returns posts matching any of categories; an empty list means all.
	Feed(categories []string) []models.Post
	FeedCategories() []models.FeedCategory
	Recommended() []models.Person
	Communities() []models.Community
	Connections() []models.Person
	Jobs() []models.Job
	Conversations() []models.Conversation
	// SendMessage appends text to the conversation in memory.
	SendMessage(conversationID int, text string, at time.Time) (models.Message, error)
	Notifications() []models.Notification
	Salaries() []models.SalaryInsight
}

// ClientPreferenceService keeps the home feed categories.
type ClientPreferenceService interface {
	// FeedCategories returns the saved selection, empty when none was saved.
	FeedCategories(ctx context.Context) ([]string, error)
	// SaveFeedCategories rejects an empty selection.
	SaveFeedCategories(ctx context.Context, categories []string) error
}

// ClientSessionWatchdog ends a session whose token has expired.
type ClientSessionWatchdog interface {
	// Start checks the token every interval until ctx is cancelled or Stop
	// is called.
	Start(ctx context.Context, interval time.Duration)
	// Stop blocks until the background goroutine has exited.
	Stop()
}
