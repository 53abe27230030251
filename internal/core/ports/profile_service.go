package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// ProfileService manages the dashboard profile and UI preferences for the
// authenticated user.
type ProfileService interface {
	CreateProfile(ctx context.Context, identity domain.Identity, displayName, photoURL string) (*domain.Profile, error)
	GetProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, patch ProfilePatch) (*domain.Profile, error)

	Theme(ctx context.Context, identity domain.Identity) (string, error)
	SetTheme(ctx context.Context, identity domain.Identity, theme string) error
}
