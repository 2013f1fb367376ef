package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter}
}

func (p *clientProfileService) Me(ctx context.Context) (models.Profile, error) {
	return p.adapter.MyProfile(ctx)
}

func (p *clientProfileService) All(ctx context.Context) ([]models.Profile, error) {
	return p.adapter.AllProfiles(ctx)
}

func (p *clientProfileService) ByID(ctx context.Context, id string) (models.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Profile{}, ErrRequiredFields
	}
	return p.adapter.Profile(ctx, id)
}

// Update requires a non-empty name when the name is being changed.
func (p *clientProfileService) Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return models.Profile{}, ErrRequiredFields
	}
	return p.adapter.UpdateProfile(ctx, update)
}

type clientExperienceService struct {
	adapter adapter.ServerAdapter
}

func NewClientExperienceService(serverAdapter adapter.ServerAdapter) ClientExperienceService {
	return &clientExperienceService{adapter: serverAdapter}
}

// Get looks the entry up in the current profile; the API has no
// single-entry read.
func (e *clientExperienceService) Get(ctx context.Context, id string) (models.Experience, error) {
	profile, err := e.adapter.MyProfile(ctx)
	if err != nil {
		return models.Experience{}, fmt.Errorf("load profile: %w", err)
	}
	for _, exp := range profile.Experiences {
		if exp.ID == id {
			return exp, nil
		}
	}
	return models.Experience{}, ErrExperienceNotFound
}

func (e *clientExperienceService) Create(ctx context.Context, exp models.Experience) (models.Experience, error) {
	exp, err := normalizeExperience(exp)
	if err != nil {
		return models.Experience{}, err
	}
	return e.adapter.CreateExperience(ctx, exp)
}

func (e *clientExperienceService) Update(ctx context.Context, id string, exp models.Experience) (models.Experience, error) {
	exp, err := normalizeExperience(exp)
	if err != nil {
		return models.Experience{}, err
	}
	exp.ID = ""
	return e.adapter.UpdateExperience(ctx, id, exp)
}

func (e *clientExperienceService) Delete(ctx context.Context, id string) error {
	return e.adapter.DeleteExperience(ctx, id)
}

func normalizeExperience(exp models.Experience) (models.Experience, error) {
	exp.Title = strings.TrimSpace(exp.Title)
	exp.Company = strings.TrimSpace(exp.Company)
	exp.StartDate = strings.TrimSpace(exp.StartDate)
	if exp.Title == "" || exp.Company == "" || exp.StartDate == "" {
		return exp, ErrRequiredFields
	}
	exp.EndDate = endDateFor(exp.Current, exp.EndDate)
	return exp, nil
}

type clientEducationService struct {
	adapter adapter.ServerAdapter
}

func NewClientEducationService(serverAdapter adapter.ServerAdapter) ClientEducationService {
	return &clientEducationService{adapter: serverAdapter}
}

func (e *clientEducationService) Get(ctx context.Context, id string) (models.Education, error) {
	profile, err := e.adapter.MyProfile(ctx)
	if err != nil {
		return models.Education{}, fmt.Errorf("load profile: %w", err)
	}
	for _, edu := range profile.Educations {
		if edu.ID == id {
			return edu, nil
		}
	}
	return models.Education{}, ErrEducationNotFound
}

func (e *clientEducationService) Create(ctx context.Context, edu models.Education) (models.Education, error) {
	edu, err := normalizeEducation(edu)
	if err != nil {
		return models.Education{}, err
	}
	return e.adapter.CreateEducation(ctx, edu)
}

func (e *clientEducationService) Update(ctx context.Context, id string, edu models.Education) (models.Education, error) {
	edu, err := normalizeEducation(edu)
	if err != nil {
		return models.Education{}, err
	}
	edu.ID = ""
	return e.adapter.UpdateEducation(ctx, id, edu)
}

func (e *clientEducationService) Delete(ctx context.Context, id string) error {
	return e.adapter.DeleteEducation(ctx, id)
}

func normalizeEducation(edu models.Education) (models.Education, error) {
	edu.School = strings.TrimSpace(edu.School)
	edu.Degree = strings.TrimSpace(edu.Degree)
	edu.StartDate = strings.TrimSpace(edu.StartDate)
	if edu.School == "" || edu.Degree == "" || edu.StartDate == "" {
		return edu, ErrRequiredFields
	}
	edu.EndDate = endDateFor(edu.Current, edu.EndDate)
	return edu, nil
}

// endDateFor drops the end date of a current position and blank input.
func endDateFor(current bool, end *string) *string {
	if current || end == nil {
		return nil
	}
	return models.StringPtr(strings.TrimSpace(*end))
}

type clientSkillService struct {
	adapter adapter.ServerAdapter
}

func NewClientSkillService(serverAdapter adapter.ServerAdapter) ClientSkillService {
	return &clientSkillService{adapter: serverAdapter}
}

func (s *clientSkillService) Add(ctx context.Context, name string) (models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Skill{}, ErrEmptySkillName
	}
	return s.adapter.CreateSkill(ctx, models.Skill{Name: name})
}

func (s *clientSkillService) Remove(ctx context.Context, id string) error {
	return s.adapter.DeleteSkill(ctx, id)
}
