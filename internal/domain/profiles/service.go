package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mood-village/server/internal/sanitize"
)

const defaultVisibility = "community"

var allowedVisibility = map[string]bool{
	"private":   true,
	"community": true,
	"public":    true,
}

type Service struct {
	repo             Repository
	source           string
	defaultCommunity string
	now              func() time.Time
}

func NewService(repo Repository, source, defaultCommunity string) *Service {
	return &Service{repo: repo, source: source, defaultCommunity: defaultCommunity, now: time.Now}
}

// Get returns the user's profile, or a default-initialized one when nothing
// has been stored yet. The default is not persisted until the first write.
func (s *Service) Get(ctx context.Context, userID string) (ProfileResult, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return ProfileResult{}, err
	}
	return ProfileResult{Source: s.source, Profile: profile}, nil
}

// Update applies partial identity fields (name, avatar URL) and persists the
// row, creating it on first write.
func (s *Service) Update(ctx context.Context, userID string, input UpdateInput) (ProfileResult, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return ProfileResult{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(sanitize.Text(*input.Name))
		if name == "" {
			return ProfileResult{}, ValidationError{Field: "name", Message: "must not be empty"}
		}
		profile.Name = name
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}

	return s.save(ctx, profile)
}

// UpdateSettings applies partial notification/appearance settings.
func (s *Service) UpdateSettings(ctx context.Context, userID string, input SettingsInput) (ProfileResult, error) {
	profile, err := s.load(ctx, userID)
	if err != nil {
		return ProfileResult{}, err
	}

	if input.NotificationEvents != nil {
		profile.NotificationEvents = *input.NotificationEvents
	}
	if input.NotificationVillage != nil {
		profile.NotificationVillage = *input.NotificationVillage
	}
	if input.NotificationPush != nil {
		profile.NotificationPush = *input.NotificationPush
	}
	if input.DarkMode != nil {
		profile.DarkMode = *input.DarkMode
	}
	if input.DataVisibility != nil {
		visibility := strings.ToLower(strings.TrimSpace(*input.DataVisibility))
		if !allowedVisibility[visibility] {
			return ProfileResult{}, ValidationError{Field: "dataVisibility", Message: "must be one of private, community, public"}
		}
		profile.DataVisibility = visibility
	}

	return s.save(ctx, profile)
}

// SetTrustedContact replaces the trusted contact pair. Both fields are
// required together so a half-filled contact can never be stored.
func (s *Service) SetTrustedContact(ctx context.Context, userID string, input TrustedContactInput) (ProfileResult, error) {
	name := strings.TrimSpace(sanitize.Text(input.Name))
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return ProfileResult{}, ValidationError{Field: "name", Message: "must not be empty"}
	}
	if phone == "" {
		return ProfileResult{}, ValidationError{Field: "phone", Message: "must not be empty"}
	}

	profile, err := s.load(ctx, userID)
	if err != nil {
		return ProfileResult{}, err
	}
	profile.TrustedContactName = name
	profile.TrustedContactPhone = phone

	return s.save(ctx, profile)
}

func (s *Service) load(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return s.defaultProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *Service) save(ctx context.Context, profile *Profile) (ProfileResult, error) {
	profile.UpdatedAt = s.now().UTC()
	if err := s.repo.UpsertProfile(ctx, *profile); err != nil {
		return ProfileResult{}, fmt.Errorf("upsert profile: %w", err)
	}
	return ProfileResult{Source: s.source, Profile: profile}, nil
}

func (s *Service) defaultProfile(userID string) *Profile {
	now := s.now().UTC()
	return &Profile{
		UserID:              userID,
		NotificationEvents:  true,
		NotificationVillage: true,
		NotificationPush:    false,
		DataVisibility:      defaultVisibility,
		CommunityID:         s.defaultCommunity,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
