package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

const noticeTTL = 3 * time.Second

// RootModel is the TUI router:
// 1) keeps the mounted page and its generation
// 2) handles global hotkeys and the navigation bar
// 3) handles NavigateTo, Notice and logout messages
// 4) drops async results of unmounted pages and delegates the rest
type RootModel struct {
	parent    context.Context
	services  *service.ClientServices
	navigator *Navigator
	bootstrap func() *service.AuthBootstrap
	start     string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	name    string
	current page
	gen     uint64
	cancel  context.CancelFunc

	notice    *Notice
	noticeSeq uint64

	showBuildInfo bool
}

// NewRootModel returns a router that mounts startPage on Init. Page
// contexts derive from ctx.
func NewRootModel(
	ctx context.Context,
	services *service.ClientServices,
	navigator *Navigator,
	startPage string,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *RootModel {
	return &RootModel{
		parent:    ctx,
		services:  services,
		navigator: navigator,
		bootstrap: func() *service.AuthBootstrap { return services.NewBootstrap(true) },
		start:     startPage,
		buildInfo: buildInfo,
		logger:    log,
	}
}

func (r *RootModel) Init() tea.Cmd {
	return r.navigate(NavigateTo{Page: r.start})
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.unmount()
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if !r.capturesInput() {
			if cmd, ok := r.hotkey(msg); ok {
				return r, cmd
			}
		}

	case NavigateTo:
		if msg.Redirect && r.name == PageLogin {
			return r, nil
		}
		return r, r.navigate(msg)

	case Notice:
		return r, r.showNotice(msg)

	case clearNoticeMsg:
		if msg.seq == r.noticeSeq {
			r.notice = nil
		}
		return r, nil

	case loggedOutMsg:
		if msg.err != nil {
			r.logger.Err(msg.err).Str("func", "RootModel.Update").Msg("logout was not persisted")
		}
		return r, r.navigate(NavigateTo{Page: PageLogin, Notice: &Notice{Text: app.MsgLoggedOut}})

	case mountedMsg:
		if msg.gen != r.gen {
			r.logger.Debug().Uint64("gen", msg.gen).Uint64("current", r.gen).Msg("dropping result of unmounted page")
			return r, nil
		}
		return r.forward(msg.msg)
	}

	return r.forward(msg)
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("PRONET", "", ""))
	}

	var b strings.Builder
	if r.notice != nil {
		if r.notice.Error {
			b.WriteString(errorStyle.Render("✗ " + r.notice.Text))
		} else {
			b.WriteString(successStyle.Render("✓ " + r.notice.Text))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(r.current.View())

	if r.inApp() && !r.capturesInput() {
		b.WriteString("\n  ")
		b.WriteString(helpStyle.Render(navBar()))
	}

	return appStyle.Render(b.String())
}

// Page returns the name of the mounted page.
func (r *RootModel) Page() string {
	return r.name
}

func (r *RootModel) navigate(nav NavigateTo) tea.Cmd {
	spec, ok := pageSpecs[nav.Page]
	if !ok {
		r.logger.Warn().Str("page", nav.Page).Msg("navigation to unknown page")
		return nil
	}

	r.unmount()

	ctx, cancel := context.WithCancel(r.parent)
	r.gen++
	r.cancel = cancel

	m := mount{
		ctx:      ctx,
		gen:      r.gen,
		param:    nav.Param,
		services: r.services,
		logger:   r.logger,
	}

	p := spec.build(m)
	if spec.protected {
		p = newProtectedPage(m, r.bootstrap(), p)
	}

	r.name = nav.Page
	r.current = p
	r.showBuildInfo = false
	r.navigator.setCurrent(nav.Page)

	r.logger.Debug().Str("page", nav.Page).Uint64("gen", r.gen).Msg("page mounted")

	cmds := []tea.Cmd{p.Init()}
	if nav.Notice != nil {
		cmds = append(cmds, r.showNotice(*nav.Notice))
	}
	return tea.Batch(cmds...)
}

func (r *RootModel) unmount() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *RootModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r *RootModel) showNotice(n Notice) tea.Cmd {
	r.noticeSeq++
	r.notice = &n
	seq := r.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (r *RootModel) hotkey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		r.unmount()
		return tea.Quit, true
	case key.Matches(msg, keys.version):
		r.showBuildInfo = true
		return nil, true
	}

	if !r.inApp() {
		return nil, false
	}

	if key.Matches(msg, keys.logout) {
		auth, ctx := r.services.Auth, r.parent
		return func() tea.Msg {
			return loggedOutMsg{err: auth.Logout(ctx)}
		}, true
	}

	for _, nk := range navKeys {
		if msg.String() == nk.key {
			return navigate(nk.page, ""), true
		}
	}
	return nil, false
}

func (r *RootModel) capturesInput() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.capturesInput()
}

// inApp reports whether a protected page is mounted.
func (r *RootModel) inApp() bool {
	return pageSpecs[r.name].protected
}

func navBar() string {
	parts := make([]string, 0, len(navKeys)+3)
	for _, nk := range navKeys {
		parts = append(parts, nk.key+": "+nk.label)
	}
	parts = append(parts, "x: logout", "v: version", "q: quit")
	return strings.Join(parts, " │ ")
}
