package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/mock"
	"github.com/MKhiriev/go-pro-network/models"
)

var profileAda = models.Profile{
	ID:   "p1",
	Name: "Ada",
	Experiences: []models.Experience{
		{ID: "x1", Title: "Engineer", Company: "Acme", StartDate: "2020-01-01", Current: true},
	},
	Educations: []models.Education{
		{ID: "e1", School: "MIT", Degree: "BSc", StartDate: "2014-09-01", EndDate: models.StringPtr("2018-06-01")},
	},
}

func TestClientProfileService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientProfileService(api)
	ctx := context.Background()

	api.EXPECT().MyProfile(ctx).Return(profileAda, nil)
	api.EXPECT().AllProfiles(ctx).Return([]models.Profile{profileAda}, nil)
	api.EXPECT().Profile(ctx, "p1").Return(profileAda, nil)

	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", me.Name)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byID, err := svc.ByID(ctx, " p1 ")
	require.NoError(t, err)
	assert.Equal(t, "p1", byID.ID)

	_, err = svc.ByID(ctx, "  ")
	assert.ErrorIs(t, err, ErrRequiredFields)
}

func TestClientProfileService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientProfileService(api)

	update := models.ProfileUpdate{Headline: models.StringPtr("Engineer")}
	api.EXPECT().UpdateProfile(gomock.Any(), update).Return(profileAda, nil)

	_, err := svc.Update(context.Background(), update)
	require.NoError(t, err)

	blank := "   "
	_, err = svc.Update(context.Background(), models.ProfileUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrRequiredFields)
}

func TestClientExperienceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientExperienceService(api)

	api.EXPECT().MyProfile(gomock.Any()).Return(profileAda, nil).Times(2)

	exp, err := svc.Get(context.Background(), "x1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", exp.Company)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestClientExperienceService_CreateNormalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientExperienceService(api)

	api.EXPECT().CreateExperience(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, exp models.Experience) (models.Experience, error) {
			assert.Equal(t, "Engineer", exp.Title)
			assert.Equal(t, "Acme", exp.Company)
			assert.Nil(t, exp.EndDate, "current position carries no end date")
			exp.ID = "x2"
			return exp, nil
		})

	created, err := svc.Create(context.Background(), models.Experience{
		Title:     " Engineer ",
		Company:   "Acme ",
		StartDate: "2021-01-01",
		EndDate:   models.StringPtr("2022-01-01"),
		Current:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "x2", created.ID)

	_, err = svc.Create(context.Background(), models.Experience{Title: "Engineer"})
	assert.ErrorIs(t, err, ErrRequiredFields)
}

func TestClientExperienceService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientExperienceService(api)

	api.EXPECT().UpdateExperience(gomock.Any(), "x1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, exp models.Experience) (models.Experience, error) {
			assert.Empty(t, exp.ID, "the id travels in the path only")
			assert.Equal(t, "2023-01-01", models.StringValue(exp.EndDate))
			exp.ID = id
			return exp, nil
		})
	api.EXPECT().DeleteExperience(gomock.Any(), "x1").Return(adapter.NewAPIError(http.StatusNotFound, "Experience not found"))

	_, err := svc.Update(context.Background(), "x1", models.Experience{
		ID: "x1", Title: "Engineer", Company: "Acme", StartDate: "2020-01-01", EndDate: models.StringPtr(" 2023-01-01 "),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "x1")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientEducationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientEducationService(api)
	ctx := context.Background()

	api.EXPECT().MyProfile(ctx).Return(profileAda, nil).Times(2)
	api.EXPECT().CreateEducation(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, edu models.Education) (models.Education, error) {
			assert.Nil(t, edu.EndDate, "a blank end date is omitted")
			return edu, nil
		})
	api.EXPECT().UpdateEducation(ctx, "e1", gomock.Any()).Return(profileAda.Educations[0], nil)
	api.EXPECT().DeleteEducation(ctx, "e1").Return(nil)

	edu, err := svc.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "MIT", edu.School)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrEducationNotFound)

	_, err = svc.Create(ctx, models.Education{School: "MIT", Degree: "MSc", StartDate: "2019-09-01", EndDate: models.StringPtr("  ")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.Education{School: "MIT"})
	assert.ErrorIs(t, err, ErrRequiredFields)

	_, err = svc.Update(ctx, "e1", profileAda.Educations[0])
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "e1"))
}

func TestClientSkillService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSkillService(api)

	api.EXPECT().CreateSkill(gomock.Any(), models.Skill{Name: "Go"}).Return(models.Skill{ID: "s1", Name: "Go"}, nil)
	api.EXPECT().DeleteSkill(gomock.Any(), "s1").Return(nil)

	skill, err := svc.Add(context.Background(), "  Go ")
	require.NoError(t, err)
	assert.Equal(t, "s1", skill.ID)

	_, err = svc.Add(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptySkillName)

	require.NoError(t, svc.Remove(context.Background(), "s1"))
}
