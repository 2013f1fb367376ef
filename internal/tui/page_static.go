package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tablePage renders one catalog list as a scrollable table.
type tablePage struct {
	title   string
	headers []string
	rows    [][]string
	empty   string
	idx     int
}

func (p *tablePage) Init() tea.Cmd { return nil }

func (p *tablePage) Update(msg tea.Msg) (page, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.up):
			if p.idx > 0 {
				p.idx--
			}
		case key.Matches(msg, keys.down):
			if p.idx < len(p.rows)-1 {
				p.idx++
			}
		}
	}
	return p, nil
}

func (p *tablePage) View() string {
	if len(p.rows) == 0 {
		return renderPage(p.title, p.empty, "")
	}
	return renderPage(p.title, renderTable(p.headers, p.rows, p.idx), "↑/↓: move")
}

func newNetworkPage(m mount) page {
	people := m.services.Catalog.Connections()
	rows := make([][]string, 0, len(people))
	for _, person := range people {
		rows = append(rows, []string{
			person.Name,
			fitText(person.Headline, 40),
			fmt.Sprintf("%d mutual", person.Mutual),
		})
	}
	return &tablePage{
		title:   "MY NETWORK",
		headers: []string{"Name", "Headline", "Mutual"},
		rows:    rows,
		empty:   "No connections yet",
	}
}

func newJobsPage(m mount) page {
	jobs := m.services.Catalog.Jobs()
	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, []string{
			fitText(job.Title, 32),
			job.Company,
			job.Location,
			job.Salary,
			job.Type,
			job.Posted,
		})
	}
	return &tablePage{
		title:   "JOBS",
		headers: []string{"Title", "Company", "Location", "Salary", "Type", "Posted"},
		rows:    rows,
		empty:   "No jobs posted",
	}
}

func newNotificationsPage(m mount) page {
	notifications := m.services.Catalog.Notifications()
	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		mark := " "
		if n.Unread {
			mark = "●"
		}
		rows = append(rows, []string{mark, n.Actor + " " + n.Action, n.Time})
	}
	return &tablePage{
		title:   "NOTIFICATIONS",
		headers: []string{" ", "Activity", "When"},
		rows:    rows,
		empty:   "You're all caught up",
	}
}

func newSalariesPage(m mount) page {
	insights := m.services.Catalog.Salaries()
	rows := make([][]string, 0, len(insights))
	for _, s := range insights {
		rows = append(rows, []string{
			s.Role,
			s.Location,
			dollars(s.Min),
			dollars(s.Avg),
			dollars(s.Max),
			s.Trend,
		})
	}
	return &tablePage{
		title:   "SALARY INSIGHTS",
		headers: []string{"Role", "Location", "Min", "Average", "Max", "Trend"},
		rows:    rows,
		empty:   "No salary data",
	}
}
