package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

const feedPreviewWidth = 72

type homeLoadedMsg struct {
	profile    models.Profile
	profileErr error
	categories []string
}

// homePage shows my profile card next to the feed. The feed renders from the
// catalog right away and is narrowed once the saved categories are read.
type homePage struct {
	m mount

	loading    bool
	profile    *models.Profile
	profileErr string
	categories []string
	posts      []models.Post
	idx        int
}

func newHomePage(m mount) page {
	return &homePage{m: m, loading: true}
}

func (p *homePage) Init() tea.Cmd {
	p.posts = p.m.services.Catalog.Feed(nil)
	return p.cmdLoad()
}

func (p *homePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		p.loading = false
		if msg.profileErr != nil {
			p.profile = nil
			p.profileErr = service.UserMessage(msg.profileErr, app.MsgLoadProfileFailed)
		} else {
			p.profile = &msg.profile
			p.profileErr = ""
		}
		p.categories = msg.categories
		p.posts = p.m.services.Catalog.Feed(p.categories)
		p.idx = clamp(p.idx, len(p.posts))
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if p.idx > 0 {
				p.idx--
			}
		case key.Matches(msg, keys.down):
			if p.idx < len(p.posts)-1 {
				p.idx++
			}
		case key.Matches(msg, keys.edit):
			return p, navigate(PageProfileEdit, "")
		case key.Matches(msg, keys.reload):
			p.loading = true
			return p, p.cmdLoad()
		}
	}
	return p, nil
}

func (p *homePage) View() string {
	var b strings.Builder

	name := "there"
	if u := p.m.services.Sessions.Snapshot().User; u != nil {
		name = u.DisplayName()
	}
	b.WriteString(titleStyle.Render("Welcome back, " + cleanText(name) + "!"))
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString("Loading profile...\n")
	case p.profileErr != "":
		b.WriteString(errorStyle.Render(p.profileErr))
		b.WriteString("\n")
	case p.profile != nil:
		b.WriteString(cleanText(p.profile.Name))
		b.WriteString(" · ")
		b.WriteString(valueOrDash(p.profile.Headline))
		b.WriteString(" · ")
		b.WriteString(valueOrDash(p.profile.Location))
		b.WriteString(fmt.Sprintf("\n%d experience · %d education · %d skills\n",
			len(p.profile.Experiences), len(p.profile.Educations), len(p.profile.Skills)))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Feed"))
	if len(p.categories) > 0 {
		b.WriteString(helpStyle.Render(" (" + strings.Join(p.categories, ", ") + ")"))
	}
	b.WriteString("\n")

	if len(p.posts) == 0 {
		b.WriteString("No posts in the selected categories\n")
	}
	for i, post := range p.posts {
		line := fmt.Sprintf("%s%s %s · %s", cursor(i == p.idx), post.Author, post.Headline, post.Posted)
		if i == p.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n    ")
		b.WriteString(fitText(cleanText(post.Content), feedPreviewWidth))
		b.WriteString(fmt.Sprintf("\n    ♥ %d  ✎ %d\n", post.Likes, post.Comments))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("People you may know"))
	b.WriteString("\n")
	for _, person := range p.m.services.Catalog.Recommended() {
		b.WriteString("  " + person.Name + " · " + person.Headline + "\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Communities"))
	b.WriteString("\n")
	for _, c := range p.m.services.Catalog.Communities() {
		b.WriteString("  " + c.Name + " · " + c.Members + " members\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "↑/↓: browse feed │ e: edit profile │ r: reload")
}

// cmdLoad reads my profile and the saved feed categories in parallel. A
// failed preference read leaves the feed unfiltered.
func (p *homePage) cmdLoad() tea.Cmd {
	profiles := p.m.services.Profiles
	prefs := p.m.services.Preferences
	log := p.m.logger

	return p.m.do(func(ctx context.Context) tea.Msg {
		var out homeLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			profile, err := profiles.Me(gctx)
			out.profile = profile
			return err
		})
		g.Go(func() error {
			categories, err := prefs.FeedCategories(gctx)
			if err != nil {
				log.Warn().Err(err).Str("func", "homePage.cmdLoad").Msg("feed preferences unavailable")
				return nil
			}
			out.categories = categories
			return nil
		})

		out.profileErr = g.Wait()
		return out
	})
}
