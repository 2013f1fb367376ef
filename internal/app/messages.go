// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing notice texts shared by the service
// layer and the terminal pages.
//
// Failure texts are fallbacks: when the API answered with a "message" field
// that text is shown instead.
package app

// Success notices.
const (
	MsgLoggedIn          = "Logged in successfully!"
	MsgAccountCreated    = "Account created successfully!"
	MsgLoggedOut         = "Logged out"
	MsgProfileUpdated    = "Profile updated successfully!"
	MsgExperienceAdded   = "Experience added successfully!"
	MsgExperienceUpdated = "Experience updated successfully!"
	MsgExperienceDeleted = "Experience deleted successfully!"
	MsgEducationAdded    = "Education added successfully!"
	MsgEducationUpdated  = "Education updated successfully!"
	MsgEducationDeleted  = "Education deleted successfully!"
	MsgSkillAdded        = "Skill added successfully!"
	MsgSkillRemoved      = "Skill removed successfully!"
	MsgPreferencesSaved  = "Preferences saved!"
	MsgProfileIDCopied   = "Profile id copied to clipboard"
	MsgMessageSent       = "Message sent"
)

// Failure notices.
const (
	MsgLoginFailed            = "Login failed"
	MsgSignupFailed           = "Signup failed"
	MsgPasswordsDoNotMatch    = "Passwords do not match"
	MsgFillRequiredFields     = "Please fill in all required fields"
	MsgLoadProfileFailed      = "Failed to load profile"
	MsgLoadProfilesFailed     = "Failed to load profiles"
	MsgUpdateProfileFailed    = "Failed to update profile"
	MsgAddExperienceFailed    = "Failed to add experience"
	MsgUpdateExperienceFailed = "Failed to update experience"
	MsgDeleteExperienceFailed = "Failed to delete experience"
	MsgLoadExperienceFailed   = "Failed to load experience"
	MsgExperienceNotFound     = "Experience not found"
	MsgAddEducationFailed     = "Failed to add education"
	MsgUpdateEducationFailed  = "Failed to update education"
	MsgDeleteEducationFailed  = "Failed to delete education"
	MsgLoadEducationFailed    = "Failed to load education"
	MsgEducationNotFound      = "Education not found"
	MsgEnterSkillName         = "Please enter a skill name"
	MsgAddSkillFailed         = "Failed to add skill"
	MsgRemoveSkillFailed      = "Failed to remove skill"
	MsgSelectCategory         = "Please select at least one category"
	MsgSavePreferencesFailed  = "Failed to save preferences"
	MsgEmptyMessage           = "Message is empty"
	MsgConversationNotFound   = "Conversation not found"
	MsgClipboardFailed        = "Clipboard is not available"
	MsgSessionExpired         = "Your session has expired, please log in again"
	MsgServerUnavailable      = "Network is unavailable or the server is unreachable"
	MsgProfileNotFound        = "Profile not found"
)
