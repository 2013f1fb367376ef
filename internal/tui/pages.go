package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/service"
)

// Page names accepted by [NavigateTo].
const (
	PageLogin           = "login"
	PageSignup          = "signup"
	PageHome            = "home"
	PageProfile         = "profile"
	PageProfileEdit     = "profile-edit"
	PageExperienceForm  = "experience-form"
	PageEducationForm   = "education-form"
	PageSkills          = "skills"
	PageNetwork         = "network"
	PagePublicProfile   = "public-profile"
	PageDirectory       = "directory"
	PageJobs            = "jobs"
	PageMessages        = "messages"
	PageNotifications   = "notifications"
	PageFeedPreferences = "feed-preferences"
	PageSalaries        = "salaries"
)

// page is a mounted screen. Unlike tea.Model it returns itself as page so
// the router keeps the concrete type.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View() string
}

// inputCapturer is implemented by pages whose keys go to text inputs. The
// router skips its single-letter hotkeys for them.
type inputCapturer interface {
	capturesInput() bool
}

// mount is what a page gets from the router when it is mounted.
type mount struct {
	ctx      context.Context
	gen      uint64
	param    string
	services *service.ClientServices
	logger   *logger.Logger
}

// do runs fn off the UI loop with the mount context. Its result reaches the
// page only while this mount is still current.
func (m mount) do(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	ctx, gen := m.ctx, m.gen
	return func() tea.Msg {
		return mountedMsg{gen: gen, msg: fn(ctx)}
	}
}

type pageSpec struct {
	build     func(m mount) page
	protected bool
}

var pageSpecs = map[string]pageSpec{
	PageLogin:           {build: newLoginPage},
	PageSignup:          {build: newSignupPage},
	PageHome:            {build: newHomePage, protected: true},
	PageProfile:         {build: newProfilePage, protected: true},
	PageProfileEdit:     {build: newProfileEditPage, protected: true},
	PageExperienceForm:  {build: newExperienceFormPage, protected: true},
	PageEducationForm:   {build: newEducationFormPage, protected: true},
	PageSkills:          {build: newSkillsPage, protected: true},
	PageNetwork:         {build: newNetworkPage, protected: true},
	PagePublicProfile:   {build: newPublicProfilePage, protected: true},
	PageDirectory:       {build: newDirectoryPage, protected: true},
	PageJobs:            {build: newJobsPage, protected: true},
	PageMessages:        {build: newMessagesPage, protected: true},
	PageNotifications:   {build: newNotificationsPage, protected: true},
	PageFeedPreferences: {build: newFeedPreferencesPage, protected: true},
	PageSalaries:        {build: newSalariesPage, protected: true},
}
