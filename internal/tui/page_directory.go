package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type profilesLoadedMsg struct {
	profiles []models.Profile
	err      error
}

type directoryPage struct {
	m mount

	loading  bool
	errMsg   string
	profiles []models.Profile
	idx      int
}

func newDirectoryPage(m mount) page {
	return &directoryPage{m: m, loading: true}
}

func (p *directoryPage) Init() tea.Cmd {
	return p.cmdLoad()
}

func (p *directoryPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgLoadProfilesFailed)
			return p, nil
		}
		p.errMsg = ""
		p.profiles = msg.profiles
		p.idx = clamp(p.idx, len(p.profiles))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if p.idx > 0 {
				p.idx--
			}
		case key.Matches(msg, keys.down):
			if p.idx < len(p.profiles)-1 {
				p.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(p.profiles) > 0 {
				return p, navigate(PagePublicProfile, p.profiles[p.idx].ID)
			}
		case key.Matches(msg, keys.reload):
			p.loading = true
			return p, p.cmdLoad()
		}
	}
	return p, nil
}

func (p *directoryPage) View() string {
	if p.loading && len(p.profiles) == 0 {
		return renderPage("DIRECTORY", "Loading...", "")
	}
	if p.errMsg != "" {
		return renderPage("DIRECTORY", errorStyle.Render(p.errMsg), "r: retry")
	}
	if len(p.profiles) == 0 {
		return renderPage("DIRECTORY", "No profiles yet", "r: reload")
	}

	rows := make([][]string, 0, len(p.profiles))
	for _, profile := range p.profiles {
		rows = append(rows, []string{
			fitText(cleanText(profile.Name), 30),
			fitText(valueOrDash(profile.Headline), 40),
			fitText(valueOrDash(profile.Location), 24),
		})
	}
	return renderPage("DIRECTORY", renderTable([]string{"Name", "Headline", "Location"}, rows, p.idx),
		"enter: open profile │ r: reload")
}

func (p *directoryPage) cmdLoad() tea.Cmd {
	profiles := p.m.services.Profiles
	return p.m.do(func(ctx context.Context) tea.Msg {
		all, err := profiles.All(ctx)
		return profilesLoadedMsg{profiles: all, err: err}
	})
}

// publicProfilePage shows a profile of the directory; m.param is its id.
type publicProfilePage struct {
	m mount

	loading bool
	errMsg  string
	profile models.Profile
}

func newPublicProfilePage(m mount) page {
	return &publicProfilePage{m: m, loading: true}
}

func (p *publicProfilePage) Init() tea.Cmd {
	profiles, id := p.m.services.Profiles, p.m.param
	return p.m.do(func(ctx context.Context) tea.Msg {
		profile, err := profiles.ByID(ctx, id)
		return profileLoadedMsg{profile: profile, err: err}
	})
}

func (p *publicProfilePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgProfileNotFound)
			return p, nil
		}
		p.profile = msg.profile

	case copiedMsg:
		if msg.err != nil {
			p.m.logger.Err(msg.err).Str("func", "publicProfilePage.Update").Msg("clipboard write failed")
			return p, notifyError(app.MsgClipboardFailed)
		}
		return p, notify(app.MsgProfileIDCopied)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, navigate(PageDirectory, "")
		case key.Matches(msg, keys.copy):
			if p.profile.ID == "" {
				return p, nil
			}
			id := p.profile.ID
			return p, func() tea.Msg {
				return copiedMsg{err: writeClipboard(id)}
			}
		}
	}
	return p, nil
}

func (p *publicProfilePage) View() string {
	if p.loading {
		return renderPage("PROFILE", "Loading...", "esc: back")
	}
	if p.errMsg != "" {
		return renderPage("PROFILE", errorStyle.Render(p.errMsg), "esc: back")
	}

	var b strings.Builder
	b.WriteString(renderProfileCard(p.profile))

	if entries := profileEntries(p.profile); len(entries) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Experience & education"))
		for _, e := range entries {
			b.WriteString("\n  ")
			b.WriteString(e.label)
		}
	}

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Skills"))
	b.WriteString("\n  ")
	b.WriteString(skillList(p.profile.Skills))

	return renderPage("PROFILE", b.String(), "c: copy id │ esc: back")
}
