package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/app"
)

func TestUserMessage(t *testing.T) {
	const fallback = "Something went wrong"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: ErrPasswordMismatch, want: app.MsgPasswordsDoNotMatch},
		{name: "wrapped validation", err: fmt.Errorf("form: %w", ErrEmptySkillName), want: app.MsgEnterSkillName},
		{
			name: "server message",
			err:  fmt.Errorf("auth.signup: %w", adapter.NewAPIError(http.StatusConflict, "Email already registered")),
			want: "Email already registered",
		},
		{
			name: "rejected login carries server message",
			err:  adapter.NewAPIError(http.StatusUnauthorized, "Invalid credentials"),
			want: "Invalid credentials",
		},
		{
			name: "bare 401",
			err:  adapter.NewAPIError(http.StatusUnauthorized, ""),
			want: app.MsgSessionExpired,
		},
		{name: "timeout", err: fmt.Errorf("profile.me: %w", context.DeadlineExceeded), want: app.MsgServerUnavailable},
		{name: "refused", err: errors.New("Get \"http://localhost:3000\": dial tcp 127.0.0.1:3000: connect: connection refused"), want: app.MsgServerUnavailable},
		{name: "500 without message", err: adapter.NewAPIError(http.StatusInternalServerError, ""), want: fallback},
		{name: "unknown", err: errors.New("boom"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, fallback))
		})
	}
}
