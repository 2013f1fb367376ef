package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// allCategoriesID is the pseudo row that selects or clears every category.
const allCategoriesID = "all"

type categoriesLoadedMsg struct {
	categories []string
	err        error
}

type feedPreferencesPage struct {
	m mount

	categories []models.FeedCategory
	selected   []string
	idx        int

	loading bool
	saving  bool
	errMsg  string
}

func newFeedPreferencesPage(m mount) page {
	return &feedPreferencesPage{
		m:          m,
		categories: m.services.Catalog.FeedCategories(),
		loading:    true,
	}
}

func (p *feedPreferencesPage) Init() tea.Cmd {
	prefs := p.m.services.Preferences
	return p.m.do(func(ctx context.Context) tea.Msg {
		categories, err := prefs.FeedCategories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	})
}

func (p *feedPreferencesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.m.logger.Err(msg.err).Str("func", "feedPreferencesPage.Update").Msg("failed to load feed categories")
		}
		p.selected = msg.categories

	case doneMsg:
		p.saving = false
		if msg.err != nil {
			p.errMsg = service.UserMessage(msg.err, app.MsgSavePreferencesFailed)
			return p, nil
		}
		return p, navigateWithNotice(PageHome, "", app.MsgPreferencesSaved)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, navigate(PageHome, "")
		case key.Matches(msg, keys.up):
			if p.idx > 0 {
				p.idx--
			}
		case key.Matches(msg, keys.down):
			if p.idx < len(p.categories) {
				p.idx++
			}
		case key.Matches(msg, keys.toggle):
			p.errMsg = ""
			p.selected = service.ToggleCategory(p.selected, p.rowID(p.idx), allCategoriesID, p.allIDs())
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.save):
			if p.saving || p.loading {
				return p, nil
			}
			p.errMsg = ""
			p.saving = true
			return p, p.cmdSave(slices.Clone(p.selected))
		}
	}
	return p, nil
}

func (p *feedPreferencesPage) View() string {
	if p.loading {
		return renderPage("FEED PREFERENCES", "Loading...", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Choose the topics shown in your home feed:\n\n")
	for i := 0; i <= len(p.categories); i++ {
		b.WriteString(cursor(i == p.idx))
		b.WriteString(checkbox(p.isOn(i)))
		b.WriteString(" ")
		if i == 0 {
			b.WriteString("All categories")
		} else {
			b.WriteString(p.categories[i-1].Label)
		}
		b.WriteString("\n")
	}
	b.WriteString(statusLine("Save", p.saving, p.errMsg))

	return renderPage("FEED PREFERENCES", b.String(), "space: toggle │ enter: save │ esc: back")
}

// rowID maps a row to its category id; row 0 is the "all" row.
func (p *feedPreferencesPage) rowID(row int) string {
	if row == 0 {
		return allCategoriesID
	}
	return p.categories[row-1].ID
}

func (p *feedPreferencesPage) allIDs() []string {
	ids := make([]string, 0, len(p.categories))
	for _, c := range p.categories {
		ids = append(ids, c.ID)
	}
	return ids
}

func (p *feedPreferencesPage) isOn(row int) bool {
	if row == 0 {
		return len(p.categories) > 0 && len(p.selected) == len(p.categories)
	}
	return slices.Contains(p.selected, p.categories[row-1].ID)
}

func (p *feedPreferencesPage) cmdSave(categories []string) tea.Cmd {
	prefs := p.m.services.Preferences
	return p.m.do(func(ctx context.Context) tea.Msg {
		return doneMsg{err: prefs.SaveFeedCategories(ctx, categories)}
	})
}
