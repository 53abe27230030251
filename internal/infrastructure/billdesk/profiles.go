package billdesk

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/billpie/billpie/internal/core/domain"
	"github.com/billpie/billpie/internal/core/ports"
)

// ProfileStore implements ports.ProfileStore against the collaborator's
// /users endpoints.
type ProfileStore struct {
	client *Client
}

func NewProfileStore(client *Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	payload := map[string]string{
		"email":       p.Email,
		"displayName": p.DisplayName,
		"photoURL":    p.PhotoURL,
	}
	var doc wireProfile
	if err := s.client.do(ctx, "create profile", http.MethodPost, "/users", payload, &doc); err != nil {
		return nil, err
	}
	profile := doc.toDomain()
	return &profile, nil
}

func (s *ProfileStore) GetProfile(ctx context.Context, email string) (*domain.Profile, error) {
	var doc wireProfile
	path := "/users/" + url.PathEscape(email)
	err := s.client.do(ctx, "get profile", http.MethodGet, path, nil, &doc)
	var collab *domain.CollaboratorError
	if errors.As(err, &collab) && collab.Status == http.StatusNotFound {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	profile := doc.toDomain()
	return &profile, nil
}

func (s *ProfileStore) UpdateProfile(ctx context.Context, email string, patch ports.ProfilePatch) (*domain.Profile, error) {
	payload := map[string]string{}
	if patch.DisplayName != nil {
		payload["displayName"] = *patch.DisplayName
	}
	if patch.PhotoURL != nil {
		payload["photoURL"] = *patch.PhotoURL
	}

	var doc wireProfile
	path := "/users/" + url.PathEscape(email)
	err := s.client.do(ctx, "update profile", http.MethodPatch, path, payload, &doc)
	var collab *domain.CollaboratorError
	if errors.As(err, &collab) && collab.Status == http.StatusNotFound {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	profile := doc.toDomain()
	return &profile, nil
}
