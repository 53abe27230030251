package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

type stubProfiles struct {
	profiles map[string]*domain.Profile
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{profiles: make(map[string]*domain.Profile)}
}

func (s *stubProfiles) CreateProfile(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	clone := *p
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	s.profiles[p.Email] = &clone
	out := clone
	return &out, nil
}

func (s *stubProfiles) GetProfile(_ context.Context, email string) (*domain.Profile, error) {
	p, ok := s.profiles[email]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	out := *p
	return &out, nil
}

func (s *stubProfiles) UpdateProfile(_ context.Context, email string, patch ports.ProfilePatch) (*domain.Profile, error) {
	p, ok := s.profiles[email]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	p.UpdatedAt = time.Now()
	out := *p
	return &out, nil
}

func TestProfileService_CreateProfile(t *testing.T) {
	svc := NewProfileService(newStubProfiles(), newStubSessions(), zerolog.Nop())

	profile, err := svc.CreateProfile(context.Background(), alice(), "  Alice Rahman  ", "")
	if err != nil {
		t.Fatalf("CreateProfile returned error: %v", err)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("expected profile keyed by identity email, got %s", profile.Email)
	}
	if profile.DisplayName != "Alice Rahman" {
		t.Fatalf("expected trimmed display name, got %q", profile.DisplayName)
	}
}

func TestProfileService_CreateProfile_BlankName(t *testing.T) {
	svc := NewProfileService(newStubProfiles(), newStubSessions(), zerolog.Nop())

	if _, err := svc.CreateProfile(context.Background(), alice(), "   ", ""); !errors.Is(err, domain.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestProfileService_UpdateProfile(t *testing.T) {
	profiles := newStubProfiles()
	svc := NewProfileService(profiles, newStubSessions(), zerolog.Nop())

	if _, err := svc.CreateProfile(context.Background(), alice(), "Alice", ""); err != nil {
		t.Fatalf("CreateProfile returned error: %v", err)
	}

	name := "Alice R."
	updated, err := svc.UpdateProfile(context.Background(), alice(), ports.ProfilePatch{DisplayName: &name})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.DisplayName != "Alice R." {
		t.Fatalf("expected updated name, got %q", updated.DisplayName)
	}

	blank := "  "
	if _, err := svc.UpdateProfile(context.Background(), alice(), ports.ProfilePatch{DisplayName: &blank}); !errors.Is(err, domain.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField for blank patch, got %v", err)
	}
}

func TestProfileService_UpdateProfile_Missing(t *testing.T) {
	svc := NewProfileService(newStubProfiles(), newStubSessions(), zerolog.Nop())

	name := "Ghost"
	if _, err := svc.UpdateProfile(context.Background(), alice(), ports.ProfilePatch{DisplayName: &name}); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_Theme(t *testing.T) {
	sessions := newStubSessions()
	svc := NewProfileService(newStubProfiles(), sessions, zerolog.Nop())

	// Never set: the light default.
	theme, err := svc.Theme(context.Background(), alice())
	if err != nil {
		t.Fatalf("Theme returned error: %v", err)
	}
	if theme != domain.ThemeLight {
		t.Fatalf("expected default light theme, got %q", theme)
	}

	if err := svc.SetTheme(context.Background(), alice(), domain.ThemeDark); err != nil {
		t.Fatalf("SetTheme returned error: %v", err)
	}
	theme, err = svc.Theme(context.Background(), alice())
	if err != nil {
		t.Fatalf("Theme returned error: %v", err)
	}
	if theme != domain.ThemeDark {
		t.Fatalf("expected dark theme after set, got %q", theme)
	}

	if err := svc.SetTheme(context.Background(), alice(), "sepia"); !errors.Is(err, domain.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}
