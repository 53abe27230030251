package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

// ProfileService proxies dashboard profile operations to the collaborator
// and keeps the theme preference in the session store.
type ProfileService struct {
	profiles ports.ProfileStore
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileStore, sessions ports.SessionStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, sessions: sessions, logger: logger}
}

func (s *ProfileService) CreateProfile(ctx context.Context, identity domain.Identity, displayName, photoURL string) (*domain.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display_name", domain.ErrMissingRequiredField)
	}

	created, err := s.profiles.CreateProfile(ctx, &domain.Profile{
		Email:       identity.Email,
		DisplayName: displayName,
		PhotoURL:    strings.TrimSpace(photoURL),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", identity.Email).Msg("profile created")
	return created, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	return s.profiles.GetProfile(ctx, identity.Email)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, identity domain.Identity, patch ports.ProfilePatch) (*domain.Profile, error) {
	if patch.DisplayName != nil {
		trimmed := strings.TrimSpace(*patch.DisplayName)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: display_name", domain.ErrMissingRequiredField)
		}
		patch.DisplayName = &trimmed
	}
	return s.profiles.UpdateProfile(ctx, identity.Email, patch)
}

func (s *ProfileService) Theme(ctx context.Context, identity domain.Identity) (string, error) {
	return s.sessions.GetTheme(ctx, identity.Email)
}

func (s *ProfileService) SetTheme(ctx context.Context, identity domain.Identity, theme string) error {
	if !domain.ValidTheme(theme) {
		return domain.ErrInvalidTheme
	}
	return s.sessions.SetTheme(ctx, identity.Email, theme)
}
