// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
)

// loginPage renders the e-mail and password inputs and dispatches an async
// login on enter. On success it navigates home with a notice.
type loginPage struct {
	m    mount
	form form

	submitting bool
	errMsg     string
}

func newLoginPage(m mount) page {
	return &loginPage{
		m: m,
		form: newForm(
			newField("Email", "you@example.com", 254),
			newPasswordField("Password"),
		),
	}
}

func (p *loginPage) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - authResultMsg: clears the submitting state; navigates home or shows the error.
//   - ctrl+n:        opens the signup page.
//   - tab/shift+tab: moves focus.
//   - enter:         dispatches the login.
//
// Other keys go to the focused input.
func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		p.submitting = false
		if result.err != nil {
			p.errMsg = service.UserMessage(result.err, app.MsgLoginFailed)
			return p, nil
		}
		return p, navigateWithNotice(PageHome, "", app.MsgLoggedIn)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.signup):
			return p, navigate(PageSignup, "")
		case key.Matches(keyMsg, keys.enter):
			if p.submitting {
				return p, nil
			}
			p.errMsg = ""
			p.submitting = true
			return p, p.cmdLogin(p.form.value(0), p.form.value(1))
		}
		if p.form.handleKey(keyMsg) {
			return p, nil
		}
	}

	return p, p.form.update(msg)
}

func (p *loginPage) View() string {
	var b strings.Builder
	b.WriteString(p.form.view())
	b.WriteString("\n")
	b.WriteString(statusLine("Log in", p.submitting, p.errMsg))
	b.WriteString("\nNo account yet? ctrl+n to sign up.")

	return renderPage("LOG IN", b.String(), "tab: next field │ enter: log in │ ctrl+n: sign up")
}

func (p *loginPage) capturesInput() bool { return true }

func (p *loginPage) cmdLogin(email, password string) tea.Cmd {
	auth := p.m.services.Auth
	return p.m.do(func(ctx context.Context) tea.Msg {
		_, err := auth.Login(ctx, email, password)
		return authResultMsg{err: err}
	})
}

type authResultMsg struct {
	err error
}
