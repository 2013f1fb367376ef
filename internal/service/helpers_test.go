package service

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/mock"
	"github.com/MKhiriev/go-pro-network/internal/session"
	"github.com/MKhiriev/go-pro-network/models"
)

// newTestSessions returns a session service over a real store whose
// persistence accepts every write.
func newTestSessions(t *testing.T, ctrl *gomock.Controller) (SessionService, *session.Store) {
	t.Helper()

	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	st := session.NewStore()
	return NewClientSessionService(st, repo, logger.Nop()), st
}

// hydrated restores sess and marks the store hydrated.
func hydrated(st *session.Store, sess models.Session) {
	st.Restore(sess)
	st.MarkHydrated()
}

var (
	userAda = models.User{ID: "u1", Email: "ada@example.com", Profile: &models.Profile{ID: "p1", Name: "Ada"}}
	userBob = models.User{ID: "u2", Email: "bob@example.com"}
)
