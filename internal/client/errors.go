package client

import "errors"

var (
	ErrNilSessions = errors.New("client: session service is nil")
	ErrNilUI       = errors.New("client: ui is nil")
)
