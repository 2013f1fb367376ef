package service

import (
	"context"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/catalog"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/store"
)

// ClientServices groups the services used by the terminal pages.
type ClientServices struct {
	Sessions    SessionService
	Auth        ClientAuthService
	Profiles    ClientProfileService
	Experiences ClientExperienceService
	Educations  ClientEducationService
	Skills      ClientSkillService
	Catalog     ClientCatalogService
	Preferences ClientPreferenceService
	Watchdog    ClientSessionWatchdog

	verifier  Verifier
	navigator Navigator
	logger    *logger.Logger
}

// NewClientServices wires the services around one session and one adapter.
func NewClientServices(
	sessions SessionService,
	serverAdapter adapter.ServerAdapter,
	storages *store.ClientStorages,
	content *catalog.Catalog,
	navigator Navigator,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		Sessions:    sessions,
		Auth:        NewClientAuthService(serverAdapter, sessions, log),
		Profiles:    NewClientProfileService(serverAdapter),
		Experiences: NewClientExperienceService(serverAdapter),
		Educations:  NewClientEducationService(serverAdapter),
		Skills:      NewClientSkillService(serverAdapter),
		Catalog:     NewClientCatalogService(content),
		Preferences: NewClientPreferenceService(storages.Preferences, log),
		Watchdog:    NewClientSessionWatchdog(sessions, navigator, log),
		verifier:    serverAdapter,
		navigator:   navigator,
		logger:      log,
	}
}

// NewBootstrap returns a fresh bootstrap for one page mount.
func (s *ClientServices) NewBootstrap(requireAuth bool) *AuthBootstrap {
	return NewAuthBootstrap(s.Sessions, s.verifier, s.navigator, requireAuth, s.logger)
}

// EndSession is the unauthorized hook of the HTTP client: it clears the
// session and leaves for the login page.
func EndSession(sessions SessionService, navigator Navigator, log *logger.Logger) func() {
	return func() {
		if err := sessions.Logout(context.Background()); err != nil {
			log.Err(err).Str("func", "EndSession").Msg("failed to persist cleared session")
		}
		navigator.RedirectToLogin()
	}
}
