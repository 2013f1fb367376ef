package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// NavigateTo asks the root model to mount Page.
type NavigateTo struct {
	// Page is one of the Page* names.
	Page string
	// Param is the page argument, e.g. the entry id of an edit form.
	Param string
	// Notice is shown once the page is mounted.
	Notice *Notice
	// Redirect marks a forced visit of the login page; it is ignored while
	// the login page is already shown.
	Redirect bool
}

// Notice is a transient success or error toast.
type Notice struct {
	Text  string
	Error bool
}

// mountedMsg carries the result of an async call made by a mounted page.
type mountedMsg struct {
	gen uint64
	msg tea.Msg
}

type clearNoticeMsg struct {
	seq uint64
}

type loggedOutMsg struct {
	err error
}

type bootstrapDoneMsg struct {
	state service.BootstrapState
	err   error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type doneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

func navigate(page, param string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Param: param}
	}
}

func navigateWithNotice(page, param, text string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Param: param, Notice: &Notice{Text: text}}
	}
}

func notifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return Notice{Text: text, Error: true}
	}
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notice{Text: text}
	}
}
