package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/session"
	"github.com/MKhiriev/go-pro-network/internal/store"
	"github.com/MKhiriev/go-pro-network/models"
)

// SessionNamespace is the fixed key of the durable session record.
const SessionNamespace = "auth-storage"

type clientSessionService struct {
	store *session.Store
	repo  store.SessionRepository
	now   func() time.Time

	// mu keeps the persisted order equal to the in-memory order.
	mu sync.Mutex

	logger *logger.Logger
}

// NewClientSessionService wraps st so that every mutation is written to repo.
func NewClientSessionService(st *session.Store, repo store.SessionRepository, log *logger.Logger) SessionService {
	return &clientSessionService{store: st, repo: repo, now: time.Now, logger: log}
}

func (s *clientSessionService) SetAuth(ctx context.Context, user models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.SetAuth(&user, token)
	return s.persist(ctx)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Logout()
	return s.persist(ctx)
}

func (s *clientSessionService) LogoutIfToken(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.store.Token() != token {
		return false, nil
	}

	s.store.Logout()
	return true, s.persist(ctx)
}

func (s *clientSessionService) AdoptUser(ctx context.Context, user models.User, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.store.Token() != token {
		return false, nil
	}

	s.store.SetAuth(&user, token)
	return true, s.persist(ctx)
}

func (s *clientSessionService) Hydrate(ctx context.Context) error {
	defer s.store.MarkHydrated()

	log := s.logger.With().Str("func", "clientSessionService.Hydrate").Logger()

	record, err := s.repo.Load(ctx, SessionNamespace)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		log.Debug().Msg("no persisted session")
		return nil
	case errors.Is(err, store.ErrCorruptedSession):
		log.Warn().Err(err).Msg("persisted session is unreadable, dropping it")
		if delErr := s.repo.Delete(ctx, SessionNamespace); delErr != nil {
			log.Err(delErr).Msg("failed to drop unreadable session")
		}
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrHydrateSession, err)
	}

	sess := record.Session
	if !sess.HasToken() {
		return nil
	}

	if session.IsExpired(sess.Token, s.now()) {
		log.Info().Msg("persisted token has expired, starting anonymous")
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.persist(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a login that completed before hydration wins over the stored record
	if s.store.Revision() == 0 {
		s.store.Restore(sess)
	}

	log.Debug().Bool("verified", sess.User != nil).Msg("session restored")
	return nil
}

func (s *clientSessionService) Snapshot() models.Session {
	return s.store.Snapshot()
}

func (s *clientSessionService) Token() string {
	return s.store.Token()
}

func (s *clientSessionService) Hydrated() <-chan struct{} {
	return s.store.Hydrated()
}

// persist writes the current snapshot. Callers hold mu.
func (s *clientSessionService) persist(ctx context.Context) error {
	record := models.PersistedSession{
		Namespace: SessionNamespace,
		Session:   s.store.Snapshot(),
		UpdatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.persist").Msg("failed to persist session")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	return nil
}
