package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

type signupPage struct {
	m    mount
	form form

	submitting bool
	errMsg     string
}

func newSignupPage(m mount) page {
	return &signupPage{
		m: m,
		form: newForm(
			newField("Full name", "Ada Lovelace", 100),
			newField("Email", "you@example.com", 254),
			newPasswordField("Password"),
			newPasswordField("Confirm password"),
		),
	}
}

func (p *signupPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *signupPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		p.submitting = false
		if result.err != nil {
			p.errMsg = service.UserMessage(result.err, app.MsgSignupFailed)
			return p, nil
		}
		return p, navigateWithNotice(PageHome, "", app.MsgAccountCreated)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return p, navigate(PageLogin, "")
		case key.Matches(keyMsg, keys.enter):
			if p.submitting {
				return p, nil
			}
			p.errMsg = ""
			p.submitting = true
			return p, p.cmdSignup(models.SignupForm{
				Name:            p.form.value(0),
				Email:           p.form.value(1),
				Password:        p.form.value(2),
				ConfirmPassword: p.form.value(3),
			})
		}
		if p.form.handleKey(keyMsg) {
			return p, nil
		}
	}

	return p, p.form.update(msg)
}

func (p *signupPage) View() string {
	var b strings.Builder
	b.WriteString(p.form.view())
	b.WriteString("\n")
	b.WriteString(statusLine("Sign up", p.submitting, p.errMsg))

	return renderPage("SIGN UP", b.String(), "esc: back to login │ tab: next field │ enter: create account")
}

func (p *signupPage) capturesInput() bool { return true }

func (p *signupPage) cmdSignup(f models.SignupForm) tea.Cmd {
	auth := p.m.services.Auth
	return p.m.do(func(ctx context.Context) tea.Msg {
		_, err := auth.Signup(ctx, f)
		return authResultMsg{err: err}
	})
}
