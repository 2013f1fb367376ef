// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, then runs the terminal UI next to the
// background workers until the user quits or the process is signalled.
package client
