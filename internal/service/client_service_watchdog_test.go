// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/mock"
	"github.com/MKhiriev/go-pro-network/models"
)

func TestClientSessionWatchdog_EndsExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions, st := newTestSessions(t, ctrl)
	hydrated(st, models.Session{User: &userAda, Token: jwtWithExpiry(t, time.Now().Add(-time.Minute))})

	redirected := make(chan struct{})
	nav := mock.NewMockNavigator(ctrl)
	nav.EXPECT().RedirectToLogin().Do(func() { close(redirected) }).Times(1)

	w := NewClientSessionWatchdog(sessions, nav, logger.Nop())
	w.Start(context.Background(), 5*time.Millisecond)
	defer w.Stop()

	select {
	case <-redirected:
	case <-time.After(time.Second):
		t.Fatal("expired session was not ended")
	}
	assert.Equal(t, models.Session{}, st.Snapshot())
}

func TestClientSessionWatchdog_KeepsLiveSession(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "live jwt", token: func(t *testing.T) string { return jwtWithExpiry(t, time.Now().Add(time.Hour)) }},
		{name: "opaque token", token: func(*testing.T) string { return "opaque" }},
		{name: "anonymous", token: func(*testing.T) string { return "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions, st := newTestSessions(t, ctrl)
			token := tt.token(t)
			hydrated(st, models.Session{Token: token})

			w := NewClientSessionWatchdog(sessions, mock.NewMockNavigator(ctrl), logger.Nop()).(*clientSessionWatchdog)
			w.check(context.Background())

			assert.Equal(t, token, st.Token())
		})
	}
}

func TestClientSessionWatchdog_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions, _ := newTestSessions(t, ctrl)
	w := NewClientSessionWatchdog(sessions, mock.NewMockNavigator(ctrl), logger.Nop())

	w.Stop()
	w.Start(context.Background(), 0)
	w.Start(context.Background(), time.Hour)
	w.Stop()
	w.Stop()
}
