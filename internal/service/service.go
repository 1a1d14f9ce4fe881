// Package service implements business logic and orchestration between the
// HTTP handlers and the activity registry.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/store"
)

// ActivityService orchestrates activity signup operations.
type ActivityService struct {
	activities *store.Store
}

// NewActivityService constructs an ActivityService with its registry.
func NewActivityService(activities *store.Store) *ActivityService {
	return &ActivityService{activities: activities}
}

// List returns a snapshot of the full activity catalog.
func (s *ActivityService) List(ctx context.Context) store.Snapshot {
	return s.activities.List()
}

// Signup registers email for the named activity and returns a confirmation
// message. Domain errors from the registry are surfaced directly so handlers
// can set the correct HTTP status.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("activity name is required")
	}
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	if err := s.activities.Signup(name, email); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) || errors.Is(err, store.ErrAlreadySignedUp) {
			return "", err
		}
		return "", fmt.Errorf("sign up for activity: %w", err)
	}
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a
// confirmation message.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("activity name is required")
	}
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	if err := s.activities.Unregister(name, email); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) || errors.Is(err, store.ErrNotSignedUp) {
			return "", err
		}
		return "", fmt.Errorf("unregister from activity: %w", err)
	}
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}
