package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/store"
)

// FeedPreferencesKey is the preference key of the selected feed categories.
const FeedPreferencesKey = "feedPreferences"

type clientPreferenceService struct {
	repo   store.PreferenceRepository
	logger *logger.Logger
}

func NewClientPreferenceService(repo store.PreferenceRepository, log *logger.Logger) ClientPreferenceService {
	return &clientPreferenceService{repo: repo, logger: log}
}

func (p *clientPreferenceService) FeedCategories(ctx context.Context) ([]string, error) {
	raw, err := p.repo.Load(ctx, FeedPreferencesKey)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load feed preferences: %w", err)
	}

	var categories []string
	if err = json.Unmarshal([]byte(raw), &categories); err != nil {
		// an unreadable value is treated as no preference
		p.logger.Warn().Err(err).Str("func", "clientPreferenceService.FeedCategories").Msg("bad feed preferences value")
		return nil, nil
	}
	return categories, nil
}

func (p *clientPreferenceService) SaveFeedCategories(ctx context.Context, categories []string) error {
	if len(categories) == 0 {
		return ErrNoCategorySelected
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encode feed preferences: %w", err)
	}
	if err = p.repo.Save(ctx, FeedPreferencesKey, string(raw)); err != nil {
		return fmt.Errorf("save feed preferences: %w", err)
	}
	return nil
}

// ToggleCategory applies one toggle of the feed preferences page. allID
// selects every category, or clears the selection when all of them are
// already selected; any other id flips its own membership. Order follows
// all.
func ToggleCategory(selected []string, id, allID string, all []string) []string {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}

	if id == allID {
		everything := true
		for _, c := range all {
			if !set[c] {
				everything = false
				break
			}
		}
		if everything {
			return nil
		}
		return append([]string(nil), all...)
	}

	set[id] = !set[id]
	out := make([]string, 0, len(all))
	for _, c := range all {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}
