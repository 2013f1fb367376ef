package service

import "errors"

// Local validation errors, rejected before any request is sent.
var (
	ErrRequiredFields       = errors.New("required fields are missing")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptySkillName       = errors.New("skill name is empty")
	ErrNoCategorySelected   = errors.New("no feed category selected")
	ErrEmptyMessage         = errors.New("message is empty")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrExperienceNotFound   = errors.New("experience not found")
	ErrEducationNotFound    = errors.New("education not found")
)

// Session errors.
var (
	// ErrPersistSession wraps a failure to write the session record. The
	// in-memory session is already updated when it is returned.
	ErrPersistSession = errors.New("failed to persist session")

	// ErrHydrateSession wraps a failure to read the session record.
	ErrHydrateSession = errors.New("failed to restore session")
)
