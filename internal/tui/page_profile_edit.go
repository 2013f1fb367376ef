package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

const (
	profileFieldName = iota
	profileFieldHeadline
	profileFieldLocation
	profileFieldAbout
	profileFieldPhoto
)

// profileEditPage is prefilled from my profile. Every field is sent, so an
// emptied optional field is cleared on the server.
type profileEditPage struct {
	m    mount
	form form

	loading    bool
	submitting bool
	errMsg     string
}

func newProfileEditPage(m mount) page {
	return &profileEditPage{
		m:       m,
		loading: true,
		form: newForm(
			newField("Name", "Ada Lovelace", 100),
			newField("Headline", "Software Engineer", 120),
			newField("Location", "London, UK", 100),
			newField("About", "A few words about you", 1000),
			newField("Photo URL", "https://...", 500),
		),
	}
}

func (p *profileEditPage) Init() tea.Cmd {
	profiles := p.m.services.Profiles
	return p.m.do(func(ctx context.Context) tea.Msg {
		profile, err := profiles.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	})
}

func (p *profileEditPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgLoadProfileFailed)
			return p, nil
		}
		p.form.setValue(profileFieldName, msg.profile.Name)
		p.form.setValue(profileFieldHeadline, models.StringValue(msg.profile.Headline))
		p.form.setValue(profileFieldLocation, models.StringValue(msg.profile.Location))
		p.form.setValue(profileFieldAbout, models.StringValue(msg.profile.About))
		p.form.setValue(profileFieldPhoto, models.StringValue(msg.profile.PhotoURL))
		return p, nil

	case doneMsg:
		p.submitting = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgUpdateProfileFailed)
			return p, nil
		}
		return p, navigateWithNotice(PageProfile, "", app.MsgProfileUpdated)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, navigate(PageProfile, "")
		case key.Matches(msg, keys.enter):
			if p.submitting || p.loading {
				return p, nil
			}
			p.errMsg = ""
			p.submitting = true
			return p, p.cmdSave(p.update())
		}
		if p.form.handleKey(msg) {
			return p, nil
		}
	}

	return p, p.form.update(msg)
}

func (p *profileEditPage) View() string {
	if p.loading {
		return renderPage("EDIT PROFILE", "Loading...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(p.form.view())
	b.WriteString("\n")
	b.WriteString(statusLine("Save", p.submitting, p.errMsg))

	return renderPage("EDIT PROFILE", b.String(), "esc: cancel │ tab: next field │ enter: save")
}

func (p *profileEditPage) capturesInput() bool { return true }

func (p *profileEditPage) update() models.ProfileUpdate {
	value := func(i int) *string {
		v := p.form.trimmed(i)
		return &v
	}
	return models.ProfileUpdate{
		Name:     value(profileFieldName),
		Headline: value(profileFieldHeadline),
		Location: value(profileFieldLocation),
		About:    value(profileFieldAbout),
		PhotoURL: value(profileFieldPhoto),
	}
}

func (p *profileEditPage) cmdSave(update models.ProfileUpdate) tea.Cmd {
	profiles := p.m.services.Profiles
	return p.m.do(func(ctx context.Context) tea.Msg {
		_, err := profiles.Update(ctx, update)
		return doneMsg{err: err}
	})
}
