package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/mock"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// testDeps holds the service mocks behind a ClientServices.
type testDeps struct {
	sessions    *mock.MockSessionService
	auth        *mock.MockClientAuthService
	profiles    *mock.MockClientProfileService
	experiences *mock.MockClientExperienceService
	educations  *mock.MockClientEducationService
	skills      *mock.MockClientSkillService
	catalog     *mock.MockClientCatalogService
	prefs       *mock.MockClientPreferenceService

	services *service.ClientServices
}

func newTestDeps(t *testing.T, ctrl *gomock.Controller) *testDeps {
	t.Helper()

	d := &testDeps{
		sessions:    mock.NewMockSessionService(ctrl),
		auth:        mock.NewMockClientAuthService(ctrl),
		profiles:    mock.NewMockClientProfileService(ctrl),
		experiences: mock.NewMockClientExperienceService(ctrl),
		educations:  mock.NewMockClientEducationService(ctrl),
		skills:      mock.NewMockClientSkillService(ctrl),
		catalog:     mock.NewMockClientCatalogService(ctrl),
		prefs:       mock.NewMockClientPreferenceService(ctrl),
	}
	d.sessions.EXPECT().Snapshot().Return(models.Session{}).AnyTimes()

	d.services = &service.ClientServices{
		Sessions:    d.sessions,
		Auth:        d.auth,
		Profiles:    d.profiles,
		Experiences: d.experiences,
		Educations:  d.educations,
		Skills:      d.skills,
		Catalog:     d.catalog,
		Preferences: d.prefs,
	}
	return d
}

func testMount(services *service.ClientServices, param string) mount {
	return mount{
		ctx:      context.Background(),
		gen:      1,
		param:    param,
		services: services,
		logger:   logger.Nop(),
	}
}

// drain runs cmd and flattens batches. Commands that do not answer quickly,
// such as ticks, are skipped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-out:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(t, c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// result runs a page command made with mount.do and returns its payload.
func result(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	mounted, ok := cmd().(mountedMsg)
	require.True(t, ok, "expected a mounted result")
	return mounted.msg
}

// navigation finds the NavigateTo produced by cmd.
func navigation(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	for _, msg := range drain(t, cmd) {
		if nav, ok := msg.(NavigateTo); ok {
			return nav
		}
	}
	t.Fatal("no navigation")
	return NavigateTo{}
}

// notice finds the Notice produced by cmd.
func notice(t *testing.T, cmd tea.Cmd) Notice {
	t.Helper()
	for _, msg := range drain(t, cmd) {
		if n, ok := msg.(Notice); ok {
			return n
		}
	}
	t.Fatal("no notice")
	return Notice{}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

// typeInto sends s to p one rune at a time.
func typeInto(p page, s string) page {
	for _, r := range s {
		p, _ = p.Update(runes(string(r)))
	}
	return p
}
