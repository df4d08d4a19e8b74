package activity

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up for this activity")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
	ErrActivityFull     = errors.New("activity is full")
)

// Service handles activity business logic
type Service struct {
	store Store
}

// NewService creates a new activity service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Roster retrieves all activities in roster order
func (s *Service) Roster(ctx context.Context) (*Roster, error) {
	return s.store.List(ctx)
}

// SignUp registers email for the named activity and returns a confirmation
// message. Uniqueness and capacity are enforced here; email format is not
// validated beyond being non-empty (checked at the handler).
func (s *Service) SignUp(ctx context.Context, name, email string) (string, error) {
	a, err := s.store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return "", ErrAlreadySignedUp
	}
	if a.SpotsLeft() <= 0 {
		return "", ErrActivityFull
	}

	if err := s.store.AddParticipant(ctx, name, email); err != nil {
		return "", err
	}

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// CancelSignup removes email from the named activity and returns a
// confirmation message
func (s *Service) CancelSignup(ctx context.Context, name, email string) (string, error) {
	a, err := s.store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", ErrActivityNotFound
	}
	if !a.HasParticipant(email) {
		return "", ErrNotSignedUp
	}

	if err := s.store.RemoveParticipant(ctx, name, email); err != nil {
		return "", err
	}

	return fmt.Sprintf("Removed %s from %s", email, name), nil
}
