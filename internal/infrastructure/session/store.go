package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/billpie/billpie/internal/core/domain"
)

// pendingTTL bounds how long a stashed bill survives an abandoned sign-in.
const pendingTTL = 30 * time.Minute

// Store implements ports.SessionStore on Redis.
// Key formats: pending_bill:<session_key>, theme:<email>
type Store struct {
	client *redis.Client
}

// NewStore creates a Store wrapping the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// StashPendingBill saves the bill a signed-out user intended to pay so the
// flow can resume after sign-in. The entry expires after pendingTTL.
func (s *Store) StashPendingBill(ctx context.Context, sessionKey string, bill domain.Bill) error {
	payload, err := json.Marshal(bill)
	if err != nil {
		return fmt.Errorf("encode pending bill: %w", err)
	}
	return s.client.Set(ctx, s.pendingKey(sessionKey), payload, pendingTTL).Err()
}

// TakePendingBill returns and removes the stashed bill. Reading consumes the
// entry, mirroring a one-shot resume after sign-in.
func (s *Store) TakePendingBill(ctx context.Context, sessionKey string) (*domain.Bill, error) {
	payload, err := s.client.GetDel(ctx, s.pendingKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoPendingPayment
	}
	if err != nil {
		return nil, fmt.Errorf("pending bill fetch: %w", err)
	}

	var bill domain.Bill
	if err := json.Unmarshal([]byte(payload), &bill); err != nil {
		return nil, fmt.Errorf("decode pending bill: %w", err)
	}
	return &bill, nil
}

func (s *Store) SetTheme(ctx context.Context, email, theme string) error {
	return s.client.Set(ctx, s.themeKey(email), theme, 0).Err()
}

// GetTheme returns the stored preference, defaulting to the light theme for
// users who never set one.
func (s *Store) GetTheme(ctx context.Context, email string) (string, error) {
	theme, err := s.client.Get(ctx, s.themeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("theme fetch: %w", err)
	}
	return theme, nil
}

func (s *Store) pendingKey(sessionKey string) string {
	return fmt.Sprintf("pending_bill:%s", sessionKey)
}

func (s *Store) themeKey(email string) string {
	return fmt.Sprintf("theme:%s", email)
}
