package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

type entryKind int

const (
	entryExperience entryKind = iota
	entryEducation
)

// entryRef is a selectable history entry of the profile page.
type entryRef struct {
	kind  entryKind
	id    string
	label string
}

type entryDeletedMsg struct {
	kind entryKind
	err  error
}

type profilePage struct {
	m mount

	loading bool
	errMsg  string
	profile models.Profile
	entries []entryRef
	idx     int

	confirming *entryRef
	deleting   bool
}

func newProfilePage(m mount) page {
	return &profilePage{m: m, loading: true}
}

func (p *profilePage) Init() tea.Cmd {
	return p.cmdLoad()
}

func (p *profilePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgLoadProfileFailed)
			return p, nil
		}
		p.errMsg = ""
		p.profile = msg.profile
		p.entries = profileEntries(msg.profile)
		p.idx = clamp(p.idx, len(p.entries))
		return p, nil

	case entryDeletedMsg:
		p.deleting = false
		if msg.err != nil {
			fallback := app.MsgDeleteExperienceFailed
			if msg.kind == entryEducation {
				fallback = app.MsgDeleteEducationFailed
			}
			return p, notifyError(service.UserMessage(msg.err, fallback))
		}
		text := app.MsgExperienceDeleted
		if msg.kind == entryEducation {
			text = app.MsgEducationDeleted
		}
		p.loading = true
		return p, tea.Batch(notify(text), p.cmdLoad())

	case tea.KeyMsg:
		if p.confirming != nil {
			return p.updateConfirm(msg)
		}
		return p.updateKeys(msg)
	}
	return p, nil
}

func (p *profilePage) updateKeys(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(msg, keys.down):
		if p.idx < len(p.entries)-1 {
			p.idx++
		}
	case key.Matches(msg, keys.edit):
		return p, navigate(PageProfileEdit, "")
	case key.Matches(msg, keys.addExperience):
		return p, navigate(PageExperienceForm, "")
	case key.Matches(msg, keys.addEducation):
		return p, navigate(PageEducationForm, "")
	case key.Matches(msg, keys.skills):
		return p, navigate(PageSkills, "")
	case key.Matches(msg, keys.reload):
		p.loading = true
		return p, p.cmdLoad()
	case key.Matches(msg, keys.enter):
		if entry, ok := p.selected(); ok {
			if entry.kind == entryEducation {
				return p, navigate(PageEducationForm, entry.id)
			}
			return p, navigate(PageExperienceForm, entry.id)
		}
	case key.Matches(msg, keys.delete):
		if entry, ok := p.selected(); ok && !p.deleting {
			p.confirming = &entry
		}
	}
	return p, nil
}

func (p *profilePage) updateConfirm(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		entry := *p.confirming
		p.confirming = nil
		p.deleting = true
		return p, p.cmdDelete(entry)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		p.confirming = nil
	}
	return p, nil
}

func (p *profilePage) View() string {
	if p.loading && p.profile.ID == "" {
		return renderPage("PROFILE", "Loading...", "")
	}
	if p.errMsg != "" && p.profile.ID == "" {
		return renderPage("PROFILE", errorStyle.Render(p.errMsg), "r: retry")
	}

	var b strings.Builder
	b.WriteString(renderProfileCard(p.profile))

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Experience & education"))
	b.WriteString("\n")
	if len(p.entries) == 0 {
		b.WriteString("  Nothing added yet\n")
	}
	for i, e := range p.entries {
		b.WriteString(cursor(i == p.idx))
		b.WriteString(e.label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Skills"))
	b.WriteString("\n  ")
	b.WriteString(skillList(p.profile.Skills))

	if p.confirming != nil {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render("Delete \"" + p.confirming.label + "\"?\n\ny yes    n no"))
	}

	return renderPage("PROFILE", b.String(),
		"e: edit │ a: add experience │ b: add education │ s: skills │ enter: edit entry │ d: delete entry │ r: reload")
}

func (p *profilePage) selected() (entryRef, bool) {
	if len(p.entries) == 0 || p.idx < 0 || p.idx >= len(p.entries) {
		return entryRef{}, false
	}
	return p.entries[p.idx], true
}

func (p *profilePage) cmdLoad() tea.Cmd {
	profiles := p.m.services.Profiles
	return p.m.do(func(ctx context.Context) tea.Msg {
		profile, err := profiles.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	})
}

func (p *profilePage) cmdDelete(entry entryRef) tea.Cmd {
	experiences := p.m.services.Experiences
	educations := p.m.services.Educations
	return p.m.do(func(ctx context.Context) tea.Msg {
		var err error
		if entry.kind == entryEducation {
			err = educations.Delete(ctx, entry.id)
		} else {
			err = experiences.Delete(ctx, entry.id)
		}
		return entryDeletedMsg{kind: entry.kind, err: err}
	})
}

func profileEntries(profile models.Profile) []entryRef {
	entries := make([]entryRef, 0, len(profile.Experiences)+len(profile.Educations))
	for _, exp := range profile.Experiences {
		entries = append(entries, entryRef{
			kind:  entryExperience,
			id:    exp.ID,
			label: fmt.Sprintf("[work] %s at %s (%s)", cleanText(exp.Title), cleanText(exp.Company), period(exp.StartDate, exp.EndDate, exp.Current)),
		})
	}
	for _, edu := range profile.Educations {
		entries = append(entries, entryRef{
			kind:  entryEducation,
			id:    edu.ID,
			label: fmt.Sprintf("[study] %s, %s (%s)", cleanText(edu.Degree), cleanText(edu.School), period(edu.StartDate, edu.EndDate, edu.Current)),
		})
	}
	return entries
}

// renderProfileCard is shared by the own and the public profile pages.
func renderProfileCard(profile models.Profile) string {
	rows := [][]string{
		{"Name", cleanText(profile.Name)},
		{"Headline", valueOrDash(profile.Headline)},
		{"Location", valueOrDash(profile.Location)},
		{"Photo", valueOrDash(profile.PhotoURL)},
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"Field", "Value"}, rows, -1))
	if about := valueOrDash(profile.About); about != "-" {
		b.WriteString("\n\n")
		b.WriteString(about)
	}
	return b.String()
}

func period(start string, end *string, current bool) string {
	to := "present"
	if !current {
		to = models.DateOnly(models.StringValue(end))
		if to == "" {
			to = "-"
		}
	}
	return models.DateOnly(start) + " – " + to
}

func skillList(skills []models.Skill) string {
	if len(skills) == 0 {
		return "-"
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, cleanText(s.Name))
	}
	return strings.Join(names, " · ")
}
