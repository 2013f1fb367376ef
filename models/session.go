// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client-held record of the current identity and its bearer
// credential. User is only meaningful when Token is non-empty.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// HasToken reports whether a bearer credential is held.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// IsAuthenticated reports whether both a verified user and a token are held.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// PersistedSession is the durable form of [Session] as stored in the local
// database under a fixed namespace.
type PersistedSession struct {
	Namespace string
	Session   Session
	UpdatedAt time.Time
}
