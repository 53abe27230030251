package ports

import (
	"context"

	"github.com/billpie/billpie/internal/core/domain"
)

// ProfilePatch carries partial profile updates; nil fields are left unchanged.
type ProfilePatch struct {
	DisplayName *string
	PhotoURL    *string
}

// ProfileStore persists user profiles on the catalog collaborator.
type ProfileStore interface {
	CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	GetProfile(ctx context.Context, email string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, email string, patch ProfilePatch) (*domain.Profile, error)
}
