package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/service"
)

// protectedPage holds inner back until the session bootstrap is ready. While
// it is loading, including a pending redirect, nothing of inner is shown.
type protectedPage struct {
	m         mount
	bootstrap *service.AuthBootstrap
	inner     page

	state   service.BootstrapState
	ready   bool
	spinner spinner.Model
}

func newProtectedPage(m mount, bootstrap *service.AuthBootstrap, inner page) *protectedPage {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &protectedPage{m: m, bootstrap: bootstrap, inner: inner, state: bootstrap.State(), spinner: s}
}

func (p *protectedPage) Init() tea.Cmd {
	bootstrap := p.bootstrap
	return tea.Batch(p.spinner.Tick, p.m.do(func(ctx context.Context) tea.Msg {
		state, err := bootstrap.Run(ctx)
		return bootstrapDoneMsg{state: state, err: err}
	}))
}

func (p *protectedPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case bootstrapDoneMsg:
		if msg.err != nil {
			// unmounted while checking
			return p, nil
		}
		p.state = msg.state
		if msg.state.Phase == service.PhaseReady {
			p.ready = true
			return p, p.inner.Init()
		}
		return p, nil
	case spinner.TickMsg:
		if !p.ready {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	}

	if !p.ready {
		return p, nil
	}

	var cmd tea.Cmd
	p.inner, cmd = p.inner.Update(msg)
	return p, cmd
}

func (p *protectedPage) View() string {
	if !p.ready {
		return renderPage("PRONET", p.spinner.View()+" Loading...", "")
	}
	return p.inner.View()
}

func (p *protectedPage) capturesInput() bool {
	if !p.ready {
		return false
	}
	c, ok := p.inner.(inputCapturer)
	return ok && c.capturesInput()
}
