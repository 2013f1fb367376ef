package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// messagesPage lists conversations; enter opens a thread with a focused
// composer.
type messagesPage struct {
	m mount

	conversations []models.Conversation
	idx           int

	open     bool
	composer textinput.Model
	now      func() time.Time
}

func newMessagesPage(m mount) page {
	in := textinput.New()
	in.Placeholder = "Write a message..."
	in.CharLimit = 500
	in.Width = 50
	return &messagesPage{
		m:             m,
		conversations: m.services.Catalog.Conversations(),
		composer:      in,
		now:           time.Now,
	}
}

func (p *messagesPage) Init() tea.Cmd { return nil }

func (p *messagesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.open {
			var cmd tea.Cmd
			p.composer, cmd = p.composer.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	if p.open {
		return p.updateThread(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if p.idx < len(p.conversations)-1 {
			p.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(p.conversations) == 0 {
			return p, nil
		}
		p.open = true
		return p, p.composer.Focus()
	}
	return p, nil
}

func (p *messagesPage) updateThread(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		p.open = false
		p.composer.Blur()
		return p, nil
	case key.Matches(msg, keys.enter):
		id := p.conversations[p.idx].ID
		if _, err := p.m.services.Catalog.SendMessage(id, p.composer.Value(), p.now()); err != nil {
			return p, notifyError(service.UserMessage(err, app.MsgEmptyMessage))
		}
		p.composer.Reset()
		p.conversations = p.m.services.Catalog.Conversations()
		return p, notify(app.MsgMessageSent)
	}

	var cmd tea.Cmd
	p.composer, cmd = p.composer.Update(msg)
	return p, cmd
}

func (p *messagesPage) View() string {
	if len(p.conversations) == 0 {
		return renderPage("MESSAGES", "No conversations", "")
	}
	if p.open {
		return p.threadView()
	}

	rows := make([][]string, 0, len(p.conversations))
	for _, c := range p.conversations {
		unread := ""
		if c.Unread > 0 {
			unread = fmt.Sprintf("(%d)", c.Unread)
		}
		rows = append(rows, []string{c.Name, fitText(c.LastMessage, 40), c.Time, unread})
	}
	return renderPage("MESSAGES", renderTable([]string{"From", "Last message", "When", "New"}, rows, p.idx),
		"enter: open")
}

func (p *messagesPage) threadView() string {
	conv := p.conversations[p.idx]

	var b strings.Builder
	for _, msg := range conv.Messages {
		line := fmt.Sprintf("[%s] %s: %s", msg.Time, msg.Sender, msg.Text)
		if msg.Mine {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n> ")
	b.WriteString(p.composer.View())

	return renderPage(strings.ToUpper(conv.Name), b.String(), "enter: send │ esc: back")
}

func (p *messagesPage) capturesInput() bool { return p.open }
