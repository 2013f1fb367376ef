package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pro-network/internal/app"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/models"
)

// ── Login ───────────────────────────────────────────────────────────────────

func TestLoginPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.auth.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(models.User{ID: "u1"}, nil)

	p := newLoginPage(testMount(d.services, ""))
	p = typeInto(p, "ada@example.com")
	p, _ = p.Update(keyTab)
	p = typeInto(p, "secret")

	p, cmd := p.Update(keyEnter)
	assert.Contains(t, p.View(), "[Log in...]")

	_, cmd = p.Update(result(t, cmd))
	nav := navigation(t, cmd)
	assert.Equal(t, PageHome, nav.Page)
	require.NotNil(t, nav.Notice)
	assert.Equal(t, app.MsgLoggedIn, nav.Notice.Text)
}

func TestLoginPage_ShowsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "missing fields", err: service.ErrRequiredFields, want: app.MsgFillRequiredFields},
		{name: "unknown failure", err: errors.New("boom"), want: app.MsgLoginFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := newTestDeps(t, ctrl)

			p := newLoginPage(testMount(d.services, ""))
			p, cmd := p.Update(authResultMsg{err: tt.err})

			assert.Nil(t, cmd)
			assert.Contains(t, p.View(), "Error: "+tt.want)
		})
	}
}

func TestLoginPage_OpensSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newLoginPage(testMount(d.services, ""))
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, PageSignup, navigation(t, cmd).Page)
}

// ── Profile edit ────────────────────────────────────────────────────────────

func TestProfileEditPage_SendsEveryField(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.profiles.EXPECT().Me(gomock.Any()).Return(models.Profile{
		ID:       "p1",
		Name:     "Ada",
		Headline: models.StringPtr("Engineer"),
		About:    models.StringPtr("Old about"),
	}, nil)
	d.profiles.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.ProfileUpdate) (models.Profile, error) {
			require.NotNil(t, u.Name)
			assert.Equal(t, "Ada", *u.Name)
			require.NotNil(t, u.Headline)
			assert.Equal(t, "Engineer", *u.Headline)
			require.NotNil(t, u.About)
			assert.Empty(t, *u.About, "cleared field is sent empty")
			require.NotNil(t, u.PhotoURL)
			return models.Profile{ID: "p1"}, nil
		},
	)

	p := newProfileEditPage(testMount(d.services, ""))
	p, _ = p.Update(result(t, p.Init()))

	form := &p.(*profileEditPage).form
	assert.Equal(t, "Engineer", form.value(profileFieldHeadline))
	form.setValue(profileFieldAbout, "   ")

	p, cmd := p.Update(keyEnter)
	_, cmd = p.Update(result(t, cmd))

	nav := navigation(t, cmd)
	assert.Equal(t, PageProfile, nav.Page)
	assert.Equal(t, app.MsgProfileUpdated, nav.Notice.Text)
}

func TestProfileEditPage_UpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newProfileEditPage(testMount(d.services, ""))
	p, _ = p.Update(profileLoadedMsg{profile: models.Profile{ID: "p1", Name: "Ada"}})
	p, _ = p.Update(doneMsg{err: errors.New("boom")})

	assert.Contains(t, p.View(), app.MsgUpdateProfileFailed)
}

// ── Experience and education ────────────────────────────────────────────────

func TestExperienceForm_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.experiences.EXPECT().Create(gomock.Any(), models.Experience{
		Title:     "Engineer",
		Company:   "Acme",
		StartDate: "2020-01-01",
		Current:   true,
	}).Return(models.Experience{ID: "e1"}, nil)

	p := newExperienceFormPage(testMount(d.services, ""))
	assert.Nil(t, p.Init())

	form := &p.(*historyFormPage).form
	form.setValue(historyFieldRole, "Engineer")
	form.setValue(historyFieldOrg, "Acme")
	form.setValue(historyFieldStart, "2020-01-01")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Contains(t, p.View(), "ADD EXPERIENCE")
	assert.Contains(t, p.View(), "[x]")

	p, cmd := p.Update(keyEnter)
	_, cmd = p.Update(result(t, cmd))

	nav := navigation(t, cmd)
	assert.Equal(t, PageProfile, nav.Page)
	assert.Equal(t, app.MsgExperienceAdded, nav.Notice.Text)
}

func TestExperienceForm_CreateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newExperienceFormPage(testMount(d.services, ""))
	p, _ = p.Update(doneMsg{err: errors.New("boom")})

	assert.Contains(t, p.View(), app.MsgAddExperienceFailed)
}

func TestEducationForm_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.educations.EXPECT().Get(gomock.Any(), "ed1").Return(models.Education{
		ID:        "ed1",
		School:    "MIT",
		Degree:    "BSc",
		Field:     models.StringPtr("CS"),
		StartDate: "2016-09-01T00:00:00Z",
		EndDate:   models.StringPtr("2020-06-01T00:00:00Z"),
	}, nil)
	d.educations.EXPECT().Update(gomock.Any(), "ed1", models.Education{
		School:    "MIT",
		Degree:    "BSc",
		Field:     models.StringPtr("CS"),
		StartDate: "2016-09-01",
		EndDate:   models.StringPtr("2020-06-01"),
	}).Return(models.Education{ID: "ed1"}, nil)

	p := newEducationFormPage(testMount(d.services, "ed1"))
	assert.Contains(t, p.View(), "Loading...")

	p, _ = p.Update(result(t, p.Init()))
	assert.Contains(t, p.View(), "EDIT EDUCATION")
	assert.Equal(t, "MIT", p.(*historyFormPage).form.value(historyFieldOrg))

	p, cmd := p.Update(keyEnter)
	_, cmd = p.Update(result(t, cmd))

	assert.Equal(t, app.MsgEducationUpdated, navigation(t, cmd).Notice.Text)
}

func TestEducationForm_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.educations.EXPECT().Get(gomock.Any(), "gone").Return(models.Education{}, service.ErrEducationNotFound)

	p := newEducationFormPage(testMount(d.services, "gone"))
	p, _ = p.Update(result(t, p.Init()))

	assert.Contains(t, p.View(), app.MsgEducationNotFound)
}

// ── Skills ──────────────────────────────────────────────────────────────────

func TestSkillsPage_AddAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.profiles.EXPECT().Me(gomock.Any()).Return(models.Profile{ID: "p1"}, nil).AnyTimes()
	d.skills.EXPECT().Add(gomock.Any(), "Rust").Return(models.Skill{ID: "s2", Name: "Rust"}, nil)
	d.skills.EXPECT().Remove(gomock.Any(), "s1").Return(nil)

	p := newSkillsPage(testMount(d.services, ""))
	p, _ = p.Update(profileLoadedMsg{profile: models.Profile{Skills: []models.Skill{{ID: "s1", Name: "Go"}}}})
	sp := p.(*skillsPage)
	assert.False(t, sp.capturesInput())

	p, _ = p.Update(runes("a"))
	assert.True(t, sp.capturesInput())
	p = typeInto(p, "Rust")

	p, cmd := p.Update(keyEnter)
	p, cmd = p.Update(result(t, cmd))
	assert.Equal(t, Notice{Text: app.MsgSkillAdded}, notice(t, cmd))
	assert.Empty(t, sp.input.Value())

	p, _ = p.Update(keyEsc)
	assert.False(t, sp.capturesInput())

	p, cmd = p.Update(runes("d"))
	_, cmd = p.Update(result(t, cmd))
	assert.Equal(t, Notice{Text: app.MsgSkillRemoved}, notice(t, cmd))
}

func TestSkillsPage_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newSkillsPage(testMount(d.services, ""))
	_, cmd := p.Update(skillChangedMsg{added: true, err: service.ErrEmptySkillName})

	assert.Equal(t, Notice{Text: app.MsgEnterSkillName, Error: true}, notice(t, cmd))
}

// ── Directory ───────────────────────────────────────────────────────────────

func TestDirectoryPage_OpensProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.profiles.EXPECT().All(gomock.Any()).Return([]models.Profile{
		{ID: "p1", Name: "Ada"},
		{ID: "p2", Name: "Bob", Headline: models.StringPtr("<b>Designer</b>")},
	}, nil)

	p := newDirectoryPage(testMount(d.services, ""))
	p, _ = p.Update(result(t, p.Init()))

	view := p.View()
	assert.Contains(t, view, "Designer")
	assert.NotContains(t, view, "<b>")

	p, _ = p.Update(keyDown)
	_, cmd := p.Update(keyEnter)

	nav := navigation(t, cmd)
	assert.Equal(t, PagePublicProfile, nav.Page)
	assert.Equal(t, "p2", nav.Param)
}

func TestDirectoryPage_LoadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newDirectoryPage(testMount(d.services, ""))
	p, _ = p.Update(profilesLoadedMsg{err: errors.New("boom")})

	assert.Contains(t, p.View(), app.MsgLoadProfilesFailed)
}

func TestPublicProfilePage_CopyID(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.profiles.EXPECT().ByID(gomock.Any(), "p2").Return(models.Profile{ID: "p2", Name: "Bob"}, nil)

	p := newPublicProfilePage(testMount(d.services, "p2"))
	p, _ = p.Update(result(t, p.Init()))
	assert.Contains(t, p.View(), "Bob")

	p, cmd := p.Update(runes("c"))
	require.NotNil(t, cmd)
	_, cmd = p.Update(cmd())

	assert.Equal(t, "p2", copied)
	assert.Equal(t, Notice{Text: app.MsgProfileIDCopied}, notice(t, cmd))
}

func TestPublicProfilePage_ClipboardUnavailable(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(string) error { return errors.New("no xclip") }

	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newPublicProfilePage(testMount(d.services, "p2"))
	p, _ = p.Update(profileLoadedMsg{profile: models.Profile{ID: "p2"}})
	p, cmd := p.Update(runes("c"))
	_, cmd = p.Update(cmd())

	assert.Equal(t, Notice{Text: app.MsgClipboardFailed, Error: true}, notice(t, cmd))
}

func TestPublicProfilePage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	p := newPublicProfilePage(testMount(d.services, "nope"))
	p, _ = p.Update(profileLoadedMsg{err: errors.New("boom")})

	assert.Contains(t, p.View(), app.MsgProfileNotFound)

	_, cmd := p.Update(keyEsc)
	assert.Equal(t, PageDirectory, navigation(t, cmd).Page)
}

// ── Messages ────────────────────────────────────────────────────────────────

func TestMessagesPage_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	at := time.Date(2026, 3, 1, 14, 5, 0, 0, time.UTC)
	conversations := []models.Conversation{{
		ID:       7,
		Name:     "Grace",
		Messages: []models.Message{{ID: 1, Sender: "Grace", Text: "Hi there", Time: "9:00 AM"}},
	}}
	d.catalog.EXPECT().Conversations().Return(conversations).Times(2)
	d.catalog.EXPECT().SendMessage(7, "hello", at).Return(models.Message{ID: 2, Text: "hello", Mine: true}, nil)

	p := newMessagesPage(testMount(d.services, ""))
	mp := p.(*messagesPage)
	mp.now = func() time.Time { return at }

	p, _ = p.Update(keyEnter)
	assert.True(t, mp.capturesInput())
	assert.Contains(t, p.View(), "Hi there")

	p = typeInto(p, "hello")
	p, cmd := p.Update(keyEnter)

	assert.Equal(t, Notice{Text: app.MsgMessageSent}, notice(t, cmd))
	assert.Empty(t, mp.composer.Value())

	p.Update(keyEsc)
	assert.False(t, mp.capturesInput())
}

func TestMessagesPage_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().Conversations().Return([]models.Conversation{{ID: 7, Name: "Grace"}})
	d.catalog.EXPECT().SendMessage(7, "", gomock.Any()).Return(models.Message{}, service.ErrEmptyMessage)

	p := newMessagesPage(testMount(d.services, ""))
	p, _ = p.Update(keyEnter)
	_, cmd := p.Update(keyEnter)

	assert.Equal(t, Notice{Text: app.MsgEmptyMessage, Error: true}, notice(t, cmd))
}

// ── Feed preferences ────────────────────────────────────────────────────────

func TestFeedPreferencesPage_ToggleAndSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().FeedCategories().Return([]models.FeedCategory{
		{ID: "tech", Label: "Technology"},
		{ID: "design", Label: "Design"},
	})
	d.prefs.EXPECT().FeedCategories(gomock.Any()).Return([]string{"design"}, nil)
	d.prefs.EXPECT().SaveFeedCategories(gomock.Any(), []string{"tech"}).Return(nil)

	p := newFeedPreferencesPage(testMount(d.services, ""))
	p, _ = p.Update(result(t, p.Init()))
	fp := p.(*feedPreferencesPage)
	assert.False(t, fp.isOn(0))
	assert.True(t, fp.isOn(2))

	p, _ = p.Update(keySpace)
	assert.Equal(t, []string{"tech", "design"}, fp.selected, "all selects every category")
	assert.True(t, fp.isOn(0))

	p, _ = p.Update(keySpace)
	assert.Empty(t, fp.selected, "all again clears")

	p, _ = p.Update(keyDown)
	p, _ = p.Update(keySpace)
	assert.Equal(t, []string{"tech"}, fp.selected)

	p, cmd := p.Update(keyEnter)
	_, cmd = p.Update(result(t, cmd))

	nav := navigation(t, cmd)
	assert.Equal(t, PageHome, nav.Page)
	assert.Equal(t, app.MsgPreferencesSaved, nav.Notice.Text)
}

func TestFeedPreferencesPage_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().FeedCategories().Return([]models.FeedCategory{{ID: "tech", Label: "Technology"}})

	p := newFeedPreferencesPage(testMount(d.services, ""))
	p, _ = p.Update(categoriesLoadedMsg{})
	p, _ = p.Update(doneMsg{err: service.ErrNoCategorySelected})

	assert.Contains(t, p.View(), app.MsgSelectCategory)
}

// ── Home and static pages ───────────────────────────────────────────────────

func TestHomePage_FiltersFeedBySavedCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	all := []models.Post{
		{ID: 1, Author: "Ada", Headline: "Compilers", Content: "On <b>Go</b>", Tags: []string{"tech"}},
		{ID: 2, Author: "Bob", Headline: "Colors", Tags: []string{"design"}},
	}
	d.catalog.EXPECT().Feed(gomock.Nil()).Return(all)
	d.catalog.EXPECT().Feed([]string{"tech"}).Return(all[:1])
	d.catalog.EXPECT().Recommended().Return(nil).AnyTimes()
	d.catalog.EXPECT().Communities().Return(nil).AnyTimes()
	d.profiles.EXPECT().Me(gomock.Any()).Return(models.Profile{ID: "p1", Name: "Ada"}, nil)
	d.prefs.EXPECT().FeedCategories(gomock.Any()).Return([]string{"tech"}, nil)

	p := newHomePage(testMount(d.services, ""))
	cmd := p.Init()
	assert.Contains(t, p.View(), "Colors")

	p, _ = p.Update(result(t, cmd))

	view := p.View()
	assert.Contains(t, view, "Compilers")
	assert.Contains(t, view, "On Go")
	assert.NotContains(t, view, "Colors")
}

func TestHomePage_PreferencesFailureKeepsFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)

	d.catalog.EXPECT().Feed(gomock.Nil()).Return([]models.Post{{ID: 1, Headline: "Compilers"}}).Times(2)
	d.catalog.EXPECT().Recommended().Return(nil).AnyTimes()
	d.catalog.EXPECT().Communities().Return(nil).AnyTimes()
	d.profiles.EXPECT().Me(gomock.Any()).Return(models.Profile{ID: "p1", Name: "Ada"}, nil)
	d.prefs.EXPECT().FeedCategories(gomock.Any()).Return(nil, errors.New("db closed"))

	p := newHomePage(testMount(d.services, ""))
	p, _ = p.Update(result(t, p.Init()))

	assert.Contains(t, p.View(), "Compilers")
}

func TestSalariesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().Salaries().Return([]models.SalaryInsight{
		{Role: "Engineer", Location: "Remote", Min: 90000, Avg: 120000, Max: 160000, Trend: "+4%"},
	})

	view := newSalariesPage(testMount(d.services, "")).View()

	assert.Contains(t, view, "SALARY INSIGHTS")
	assert.Contains(t, view, "$120,000")
	assert.Contains(t, view, "$160,000")
}

func TestNotificationsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().Notifications().Return([]models.Notification{
		{ID: 1, Actor: "Grace", Action: "viewed your profile", Time: "2h", Unread: true},
	})

	view := newNotificationsPage(testMount(d.services, "")).View()

	assert.Contains(t, view, "Grace viewed your profile")
	assert.Contains(t, view, "●")
}

func TestJobsPage_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestDeps(t, ctrl)
	d.catalog.EXPECT().Jobs().Return(nil)

	assert.Contains(t, newJobsPage(testMount(d.services, "")).View(), "No jobs posted")
}
