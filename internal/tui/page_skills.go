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

type skillChangedMsg struct {
	added bool
	err   error
}

// skillsPage lists the skills of my profile. "a" focuses the input; while it
// is focused the page captures keys.
type skillsPage struct {
	m mount

	loading bool
	errMsg  string
	skills  []models.Skill
	idx     int

	input   textinput.Model
	editing bool
	busy    bool
}

func newSkillsPage(m mount) page {
	in := textinput.New()
	in.Placeholder = "e.g. Go"
	in.CharLimit = 60
	in.Width = 30
	return &skillsPage{m: m, loading: true, input: in}
}

func (p *skillsPage) Init() tea.Cmd {
	return p.cmdLoad()
}

func (p *skillsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgLoadProfileFailed)
			return p, nil
		}
		p.errMsg = ""
		p.skills = msg.profile.Skills
		p.idx = clamp(p.idx, len(p.skills))
		return p, nil

	case skillChangedMsg:
		p.busy = false
		if msg.err != nil {
			fallback := app.MsgRemoveSkillFailed
			if msg.added {
				fallback = app.MsgAddSkillFailed
			}
			return p, notifyError(service.UserMessage(msg.err, fallback))
		}
		text := app.MsgSkillRemoved
		if msg.added {
			text = app.MsgSkillAdded
			p.input.Reset()
		}
		return p, tea.Batch(notify(text), p.cmdLoad())

	case tea.KeyMsg:
		if p.editing {
			return p.updateInput(msg)
		}
		return p.updateList(msg)
	}

	if p.editing {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *skillsPage) updateInput(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		p.editing = false
		p.input.Blur()
		return p, nil
	case key.Matches(msg, keys.enter):
		if p.busy {
			return p, nil
		}
		p.busy = true
		return p, p.cmdAdd(p.input.Value())
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *skillsPage) updateList(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return p, navigate(PageProfile, "")
	case key.Matches(msg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(msg, keys.down):
		if p.idx < len(p.skills)-1 {
			p.idx++
		}
	case key.Matches(msg, keys.add):
		p.editing = true
		return p, p.input.Focus()
	case key.Matches(msg, keys.delete):
		if len(p.skills) == 0 || p.busy {
			return p, nil
		}
		p.busy = true
		return p, p.cmdRemove(p.skills[p.idx].ID)
	case key.Matches(msg, keys.reload):
		p.loading = true
		return p, p.cmdLoad()
	}
	return p, nil
}

func (p *skillsPage) View() string {
	if p.loading && len(p.skills) == 0 {
		return renderPage("SKILLS", "Loading...", "esc: back")
	}

	var b strings.Builder
	if p.errMsg != "" {
		b.WriteString(errorStyle.Render(p.errMsg))
		b.WriteString("\n\n")
	}
	if len(p.skills) == 0 {
		b.WriteString("No skills yet\n")
	}
	for i, s := range p.skills {
		b.WriteString(cursor(!p.editing && i == p.idx))
		b.WriteString(cleanText(s.Name))
		b.WriteString("\n")
	}

	b.WriteString("\nNew skill: [")
	b.WriteString(p.input.View())
	b.WriteString("]")

	if p.editing {
		return renderPage("SKILLS", b.String(), "enter: add │ esc: done")
	}
	return renderPage("SKILLS", b.String(), "a: add │ d: remove │ r: reload │ esc: back")
}

func (p *skillsPage) capturesInput() bool { return p.editing }

func (p *skillsPage) cmdLoad() tea.Cmd {
	profiles := p.m.services.Profiles
	return p.m.do(func(ctx context.Context) tea.Msg {
		profile, err := profiles.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	})
}

func (p *skillsPage) cmdAdd(name string) tea.Cmd {
	skills := p.m.services.Skills
	return p.m.do(func(ctx context.Context) tea.Msg {
		_, err := skills.Add(ctx, name)
		return skillChangedMsg{added: true, err: err}
	})
}

func (p *skillsPage) cmdRemove(id string) tea.Cmd {
	skills := p.m.services.Skills
	return p.m.do(func(ctx context.Context) tea.Msg {
		return skillChangedMsg{err: skills.Remove(ctx, id)}
	})
}
