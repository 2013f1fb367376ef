// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/app"
)

var validationMessages = map[error]string{
	ErrRequiredFields:       app.MsgFillRequiredFields,
	ErrPasswordMismatch:     app.MsgPasswordsDoNotMatch,
	ErrEmptySkillName:       app.MsgEnterSkillName,
	ErrNoCategorySelected:   app.MsgSelectCategory,
	ErrEmptyMessage:         app.MsgEmptyMessage,
	ErrExperienceNotFound:   app.MsgExperienceNotFound,
	ErrEducationNotFound:    app.MsgEducationNotFound,
	ErrConversationNotFound: app.MsgConversationNotFound,
}

// UserMessage turns err into the notice shown to the user:
//   - a local validation error yields its fixed text;
//   - an API error carrying a "message" yields that message verbatim;
//   - an expired or rejected session yields the session-expired text;
//   - an unreachable server yields the network text;
//   - anything else yields fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	for sentinel, msg := range validationMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		if msg, ok := adapter.ServerMessage(err); ok {
			return msg
		}
		return app.MsgSessionExpired
	}

	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}

	if isServerUnavailable(err) {
		return app.MsgServerUnavailable
	}

	return fallback
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable")
}
