// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator lets services leave for the login page. It exists before the
// Bubble Tea program does; a redirect requested before Bind is delivered on
// Bind.
type Navigator struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending bool
	current string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Bind routes redirects to send, typically (*tea.Program).Send. Bind(nil)
// detaches the navigator again.
func (n *Navigator) Bind(send func(tea.Msg)) {
	n.mu.Lock()
	n.send = send
	pending := n.pending && send != nil
	if pending {
		n.pending = false
	}
	n.mu.Unlock()

	if pending {
		// Send blocks until the program reads it
		go send(loginRedirect())
	}
}

// RedirectToLogin implements service.Navigator. It is a no-op while the
// login page is shown. It must not be called from the UI loop itself.
func (n *Navigator) RedirectToLogin() {
	n.mu.Lock()
	if n.current == PageLogin {
		n.mu.Unlock()
		return
	}
	send := n.send
	if send == nil {
		n.pending = true
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	send(loginRedirect())
}

func (n *Navigator) setCurrent(page string) {
	n.mu.Lock()
	n.current = page
	n.mu.Unlock()
}

func loginRedirect() NavigateTo {
	return NavigateTo{Page: PageLogin, Redirect: true}
}
