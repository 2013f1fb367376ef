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

// historyEntry is the form view of an experience or education entry. Org is
// the company or the school, Role the title or the degree.
type historyEntry struct {
	Role        string
	Org         string
	Extra       string
	StartDate   string
	EndDate     string
	Current     bool
	Description string
}

// historyKind binds the shared form to one entry type.
type historyKind struct {
	title      string
	labels     [3]string
	load       func(ctx context.Context, s *service.ClientServices, id string) (historyEntry, error)
	save       func(ctx context.Context, s *service.ClientServices, id string, e historyEntry) error
	added      string
	updated    string
	addFail    string
	updateFail string
	loadFail   string
}

type historyLoadedMsg struct {
	entry historyEntry
	err   error
}

const (
	historyFieldRole = iota
	historyFieldOrg
	historyFieldExtra
	historyFieldStart
	historyFieldEnd
	historyFieldDescription
)

// historyFormPage creates an entry when mounted without a param and edits
// the entry with that id otherwise.
type historyFormPage struct {
	m    mount
	kind historyKind
	form form

	current    bool
	loading    bool
	submitting bool
	errMsg     string
}

func newHistoryFormPage(m mount, kind historyKind) *historyFormPage {
	return &historyFormPage{
		m:       m,
		kind:    kind,
		loading: m.param != "",
		form: newForm(
			newField(kind.labels[0], "", 120),
			newField(kind.labels[1], "", 120),
			newField(kind.labels[2], "", 120),
			newField("Start date", "YYYY-MM-DD", 10),
			newField("End date", "YYYY-MM-DD", 10),
			newField("Description", "", 1000),
		),
	}
}

func newExperienceFormPage(m mount) page {
	return newHistoryFormPage(m, experienceKind)
}

func newEducationFormPage(m mount) page {
	return newHistoryFormPage(m, educationKind)
}

func (p *historyFormPage) Init() tea.Cmd {
	if p.m.param == "" {
		return nil
	}
	services, id, load := p.m.services, p.m.param, p.kind.load
	return p.m.do(func(ctx context.Context) tea.Msg {
		entry, err := load(ctx, services, id)
		return historyLoadedMsg{entry: entry, err: err}
	})
}

func (p *historyFormPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, p.kind.loadFail)
			return p, nil
		}
		p.fill(msg.entry)
		return p, nil

	case doneMsg:
		p.submitting = false
		if msg.err != nil {
			fallback := p.kind.addFail
			if p.editing() {
				fallback = p.kind.updateFail
			}
			p.errMsg = service.UserMessage(msg.err, fallback)
			return p, nil
		}
		text := p.kind.added
		if p.editing() {
			text = p.kind.updated
		}
		return p, navigateWithNotice(PageProfile, "", text)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, navigate(PageProfile, "")
		case key.Matches(msg, keys.current):
			p.current = !p.current
			return p, nil
		case key.Matches(msg, keys.enter):
			if p.submitting || p.loading {
				return p, nil
			}
			p.errMsg = ""
			p.submitting = true
			return p, p.cmdSave(p.entry())
		}
		if p.form.handleKey(msg) {
			return p, nil
		}
	}

	return p, p.form.update(msg)
}

func (p *historyFormPage) View() string {
	title := "ADD " + p.kind.title
	if p.editing() {
		title = "EDIT " + p.kind.title
	}
	if p.loading {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	b.WriteString(p.form.view())
	b.WriteString("\n\n  ")
	b.WriteString(checkbox(p.current))
	b.WriteString(" I currently work or study here")
	if p.current {
		b.WriteString(helpStyle.Render(" (end date is ignored)"))
	}
	b.WriteString("\n")
	b.WriteString(statusLine("Save", p.submitting, p.errMsg))

	return renderPage(title, b.String(), "esc: cancel │ tab: next field │ ctrl+t: toggle current │ enter: save")
}

func (p *historyFormPage) capturesInput() bool { return true }

func (p *historyFormPage) editing() bool {
	return p.m.param != ""
}

func (p *historyFormPage) fill(e historyEntry) {
	p.form.setValue(historyFieldRole, e.Role)
	p.form.setValue(historyFieldOrg, e.Org)
	p.form.setValue(historyFieldExtra, e.Extra)
	p.form.setValue(historyFieldStart, models.DateOnly(e.StartDate))
	p.form.setValue(historyFieldEnd, models.DateOnly(e.EndDate))
	p.form.setValue(historyFieldDescription, e.Description)
	p.current = e.Current
}

func (p *historyFormPage) entry() historyEntry {
	return historyEntry{
		Role:        p.form.value(historyFieldRole),
		Org:         p.form.value(historyFieldOrg),
		Extra:       p.form.trimmed(historyFieldExtra),
		StartDate:   p.form.value(historyFieldStart),
		EndDate:     p.form.value(historyFieldEnd),
		Current:     p.current,
		Description: p.form.trimmed(historyFieldDescription),
	}
}

func (p *historyFormPage) cmdSave(e historyEntry) tea.Cmd {
	services, id, save := p.m.services, p.m.param, p.kind.save
	return p.m.do(func(ctx context.Context) tea.Msg {
		return doneMsg{err: save(ctx, services, id, e)}
	})
}

var experienceKind = historyKind{
	title:  "EXPERIENCE",
	labels: [3]string{"Title", "Company", "Location"},
	load: func(ctx context.Context, s *service.ClientServices, id string) (historyEntry, error) {
		exp, err := s.Experiences.Get(ctx, id)
		if err != nil {
			return historyEntry{}, err
		}
		return historyEntry{
			Role:        exp.Title,
			Org:         exp.Company,
			Extra:       models.StringValue(exp.Location),
			StartDate:   exp.StartDate,
			EndDate:     models.StringValue(exp.EndDate),
			Current:     exp.Current,
			Description: models.StringValue(exp.Description),
		}, nil
	},
	save: func(ctx context.Context, s *service.ClientServices, id string, e historyEntry) error {
		exp := models.Experience{
			Title:       e.Role,
			Company:     e.Org,
			Location:    models.StringPtr(e.Extra),
			StartDate:   e.StartDate,
			EndDate:     models.StringPtr(e.EndDate),
			Current:     e.Current,
			Description: models.StringPtr(e.Description),
		}
		var err error
		if id == "" {
			_, err = s.Experiences.Create(ctx, exp)
		} else {
			_, err = s.Experiences.Update(ctx, id, exp)
		}
		return err
	},
	added:      app.MsgExperienceAdded,
	updated:    app.MsgExperienceUpdated,
	addFail:    app.MsgAddExperienceFailed,
	updateFail: app.MsgUpdateExperienceFailed,
	loadFail:   app.MsgLoadExperienceFailed,
}

var educationKind = historyKind{
	title:  "EDUCATION",
	labels: [3]string{"Degree", "School", "Field of study"},
	load: func(ctx context.Context, s *service.ClientServices, id string) (historyEntry, error) {
		edu, err := s.Educations.Get(ctx, id)
		if err != nil {
			return historyEntry{}, err
		}
		return historyEntry{
			Role:        edu.Degree,
			Org:         edu.School,
			Extra:       models.StringValue(edu.Field),
			StartDate:   edu.StartDate,
			EndDate:     models.StringValue(edu.EndDate),
			Current:     edu.Current,
			Description: models.StringValue(edu.Description),
		}, nil
	},
	save: func(ctx context.Context, s *service.ClientServices, id string, e historyEntry) error {
		edu := models.Education{
			School:      e.Org,
			Degree:      e.Role,
			Field:       models.StringPtr(e.Extra),
			StartDate:   e.StartDate,
			EndDate:     models.StringPtr(e.EndDate),
			Current:     e.Current,
			Description: models.StringPtr(e.Description),
		}
		var err error
		if id == "" {
			_, err = s.Educations.Create(ctx, edu)
		} else {
			_, err = s.Educations.Update(ctx, id, edu)
		}
		return err
	},
	added:      app.MsgEducationAdded,
	updated:    app.MsgEducationUpdated,
	addFail:    app.MsgAddEducationFailed,
	updateFail: app.MsgUpdateEducationFailed,
	loadFail:   app.MsgLoadEducationFailed,
}
